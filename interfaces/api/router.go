// Package api routes API Gateway events to the entity handlers. The
// request shape the router depends on is the proxy event itself: method,
// path, query parameters and raw body.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"pantry-backend/interfaces/api/handlers"
	"pantry-backend/pkg/common"
	"pantry-backend/pkg/utils"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// Router dispatches an incoming request to exactly one handler operation.
// It never touches the store itself and never lets a panic escape.
type Router struct {
	inventory   *handlers.InventoryHandler
	meals       *handlers.MealHandler
	purchases   *handlers.PurchaseHandler
	category    *handlers.CategoryHandler
	environment string
	logger      *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	inventory *handlers.InventoryHandler,
	meals *handlers.MealHandler,
	purchases *handlers.PurchaseHandler,
	category *handlers.CategoryHandler,
	environment string,
	logger *zap.Logger,
) *Router {
	return &Router{
		inventory:   inventory,
		meals:       meals,
		purchases:   purchases,
		category:    category,
		environment: environment,
		logger:      logger,
	}
}

// resourceOps bundles the five operations of an entity collection for
// method + trailing-identifier dispatch
type resourceOps struct {
	create func(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse
	list   func(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse
	get    func(ctx context.Context, req events.APIGatewayProxyRequest, id string) events.APIGatewayProxyResponse
	update func(ctx context.Context, req events.APIGatewayProxyRequest, id string) events.APIGatewayProxyResponse
	remove func(ctx context.Context, req events.APIGatewayProxyRequest, id string) events.APIGatewayProxyResponse
}

// Handle routes one event. Downstream panics are recovered here and
// converted into a structured 500; the error return is always nil so API
// Gateway renders our envelope instead of its own.
func (rt *Router) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			rt.logger.Error("Handler panicked",
				zap.String("method", req.HTTPMethod),
				zap.String("path", req.Path),
				zap.Any("panic", rec),
			)
			resp = common.Error(http.StatusInternalServerError, "internal server error", fmt.Errorf("%v", rec))
			err = nil
		}
	}()

	rt.logger.Info("Routing request",
		zap.String("method", req.HTTPMethod),
		zap.String("path", req.Path),
	)

	// Pre-flight short-circuits regardless of path
	if req.HTTPMethod == http.MethodOptions {
		return common.NoContent(), nil
	}

	segments := splitPath(req.Path)
	head := ""
	var rest []string
	if len(segments) > 0 {
		head = segments[0]
		rest = segments[1:]
	}

	switch head {
	case "", "health":
		if req.HTTPMethod == http.MethodGet && len(rest) == 0 {
			return rt.health(), nil
		}
	case "inventory":
		return rt.dispatchResource(ctx, req, rest, resourceOps{
			create: rt.inventory.Create,
			list:   rt.inventory.List,
			get:    rt.inventory.Get,
			update: rt.inventory.Update,
			remove: rt.inventory.Delete,
		}), nil
	case "meals":
		return rt.dispatchResource(ctx, req, rest, resourceOps{
			create: rt.meals.Create,
			list:   rt.meals.List,
			get:    rt.meals.Get,
			update: rt.meals.Update,
			remove: rt.meals.Delete,
		}), nil
	case "purchases":
		return rt.dispatchResource(ctx, req, rest, resourceOps{
			create: rt.purchases.Create,
			list:   rt.purchases.List,
			get:    rt.purchases.Get,
			update: rt.purchases.Update,
			remove: rt.purchases.Delete,
		}), nil
	case "food-category":
		if req.HTTPMethod == http.MethodGet && len(rest) == 0 {
			return rt.category.Classify(ctx, req), nil
		}
	}

	return rt.notFound(req), nil
}

// dispatchResource maps (method, trailing identifier) onto one of the five
// collection operations. Anything else is a structured 404.
func (rt *Router) dispatchResource(ctx context.Context, req events.APIGatewayProxyRequest, rest []string, ops resourceOps) events.APIGatewayProxyResponse {
	switch {
	case req.HTTPMethod == http.MethodPost && len(rest) == 0:
		return ops.create(ctx, req)
	case req.HTTPMethod == http.MethodGet && len(rest) == 0:
		return ops.list(ctx, req)
	case req.HTTPMethod == http.MethodGet && len(rest) == 1:
		return ops.get(ctx, req, rest[0])
	case req.HTTPMethod == http.MethodPut && len(rest) == 1:
		return ops.update(ctx, req, rest[0])
	case req.HTTPMethod == http.MethodDelete && len(rest) == 1:
		return ops.remove(ctx, req, rest[0])
	default:
		return rt.notFound(req)
	}
}

// health reports liveness
func (rt *Router) health() events.APIGatewayProxyResponse {
	return common.JSON(http.StatusOK, map[string]string{
		"status":      "ok",
		"timestamp":   utils.NowRFC3339(),
		"environment": rt.environment,
	})
}

// notFound names the unmatched method+path pair
func (rt *Router) notFound(req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	return common.Message(http.StatusNotFound,
		fmt.Sprintf("route not found: %s %s", req.HTTPMethod, req.Path))
}

// splitPath breaks a slash-separated path into its non-empty segments
func splitPath(path string) []string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}
