// Package handlers implements the per-entity request handlers. Every
// handler operation takes the raw API Gateway event plus any trailing path
// identifier the router extracted, and returns a complete response
// envelope.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"pantry-backend/application/ports"
	"pantry-backend/pkg/common"
	"pantry-backend/pkg/utils"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// ownerParam is the query parameter carrying the owner id. It stands in
// for a real auth layer; handlers never derive ownership from anywhere
// else.
const ownerParam = "userId"

// requireOwner extracts the owner id or returns a ready 400 response
func requireOwner(req events.APIGatewayProxyRequest) (string, *events.APIGatewayProxyResponse) {
	userID := req.QueryStringParameters[ownerParam]
	if userID == "" {
		resp := common.Message(http.StatusBadRequest, "userId query parameter is required")
		return "", &resp
	}
	return userID, nil
}

// parseBody decodes and tag-validates a JSON request body, returning a
// ready 400 response on failure
func parseBody(req events.APIGatewayProxyRequest, v interface{}) *events.APIGatewayProxyResponse {
	if req.Body == "" {
		resp := common.Message(http.StatusBadRequest, "request body is required")
		return &resp
	}
	if err := json.Unmarshal([]byte(req.Body), v); err != nil {
		resp := common.Message(http.StatusBadRequest, "invalid request body: "+err.Error())
		return &resp
	}
	if err := utils.ValidateStruct(v); err != nil {
		resp := common.Message(http.StatusBadRequest, err.Error())
		return &resp
	}
	return nil
}

// notifyChange publishes an entity-change notification when a publisher is
// configured. Failures are logged and swallowed; the originating request
// already succeeded.
func notifyChange(ctx context.Context, publisher ports.ChangePublisher, logger *zap.Logger, entityType, operation, userID, entityID string) {
	if publisher == nil {
		return
	}
	change := ports.EntityChange{
		EntityType: entityType,
		Operation:  operation,
		UserID:     userID,
		EntityID:   entityID,
		Timestamp:  utils.NowRFC3339(),
	}
	if err := publisher.PublishChange(ctx, change); err != nil {
		logger.Warn("Failed to publish change event",
			zap.String("entityType", entityType),
			zap.String("operation", operation),
			zap.String("entityID", entityID),
			zap.Error(err),
		)
	}
}
