package handlers

import (
	"context"
	"net/http"

	"pantry-backend/application/ports"
	"pantry-backend/pkg/common"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// CategoryHandler handles food-category classification requests
type CategoryHandler struct {
	classifier ports.FoodClassifier
	logger     *zap.Logger
}

// NewCategoryHandler creates a new category handler. The classifier is nil
// when no provider key is configured.
func NewCategoryHandler(classifier ports.FoodClassifier, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		classifier: classifier,
		logger:     logger,
	}
}

// classificationResponse pairs the queried name with its category
type classificationResponse struct {
	FoodName string `json:"foodName"`
	Category string `json:"category"`
}

// Classify handles GET /food-category?foodName=...
func (h *CategoryHandler) Classify(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	foodName := req.QueryStringParameters["foodName"]
	if foodName == "" {
		return common.Message(http.StatusBadRequest, "foodName query parameter is required")
	}

	if h.classifier == nil {
		return common.Message(http.StatusInternalServerError, "food classification is not configured")
	}

	category, err := h.classifier.Classify(ctx, foodName)
	if err != nil {
		h.logger.Error("Failed to classify food name",
			zap.String("foodName", foodName),
			zap.Error(err),
		)
		return common.FromError(err, "failed to classify food name")
	}

	return common.JSON(http.StatusOK, classificationResponse{
		FoodName: foodName,
		Category: string(category),
	})
}
