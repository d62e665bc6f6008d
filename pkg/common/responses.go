package common

import (
	"encoding/json"
	"net/http"

	apperrors "pantry-backend/pkg/errors"

	"github.com/aws/aws-lambda-go/events"
)

// corsHeaders are attached to every response. CORS is a fixed collaborator
// interface here, not a configurable surface.
var corsHeaders = map[string]string{
	"Content-Type":                 "application/json",
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET,POST,PUT,DELETE,OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type,Authorization",
}

// ErrorBody is the structured error payload: a human message and, where
// available, the underlying error text for diagnostics
type ErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func headers() map[string]string {
	h := make(map[string]string, len(corsHeaders))
	for k, v := range corsHeaders {
		h[k] = v
	}
	return h
}

// JSON builds a response with the given status and JSON-encoded body
func JSON(status int, v interface{}) events.APIGatewayProxyResponse {
	body, err := json.Marshal(v)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    headers(),
			Body:       `{"message":"failed to encode response"}`,
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers(),
		Body:       string(body),
	}
}

// Message builds a response whose body is just a message field
func Message(status int, message string) events.APIGatewayProxyResponse {
	return JSON(status, ErrorBody{Message: message})
}

// Error builds a response carrying a message plus the underlying error text
func Error(status int, message string, err error) events.APIGatewayProxyResponse {
	body := ErrorBody{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	return JSON(status, body)
}

// NoContent builds an empty-bodied success response (OPTIONS pre-flight)
func NoContent() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    headers(),
	}
}

// FromError maps an application error onto a response. Typed client errors
// (400/404) surface their own message; server-side failures get the
// caller's fallback message plus the cause for diagnostics. Untyped errors
// are treated as internal.
func FromError(err error, fallback string) events.APIGatewayProxyResponse {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		if appErr.HTTPStatus < http.StatusInternalServerError {
			return Message(appErr.HTTPStatus, appErr.Message)
		}
		return Error(appErr.HTTPStatus, fallback, appErr.Cause)
	}
	return Error(http.StatusInternalServerError, fallback, err)
}
