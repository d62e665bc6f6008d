package api

import (
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// HTTPHandler adapts the event router to net/http for local development.
// The request is converted into the same proxy-event shape the Lambda
// entrypoint receives, so both paths exercise identical routing.
func (rt *Router) HTTPHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, `{"message":"failed to read request body"}`, http.StatusBadRequest)
			return
		}

		query := make(map[string]string)
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				query[key] = values[0]
			}
		}

		event := events.APIGatewayProxyRequest{
			HTTPMethod:            r.Method,
			Path:                  r.URL.Path,
			QueryStringParameters: query,
			Body:                  string(body),
		}

		resp, _ := rt.Handle(r.Context(), event)

		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		w.WriteHeader(resp.StatusCode)
		if _, err := io.WriteString(w, resp.Body); err != nil {
			rt.logger.Error("Failed to write response", zap.Error(err))
		}
	})
}
