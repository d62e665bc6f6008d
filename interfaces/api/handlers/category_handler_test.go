package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"pantry-backend/domain/entities"
	apperrors "pantry-backend/pkg/errors"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func classifyRequest(foodName string) events.APIGatewayProxyRequest {
	params := map[string]string{}
	if foodName != "" {
		params["foodName"] = foodName
	}
	return events.APIGatewayProxyRequest{QueryStringParameters: params}
}

func TestCategoryClassify(t *testing.T) {
	classifier := new(mockFoodClassifier)
	handler := NewCategoryHandler(classifier, zap.NewNop())

	classifier.On("Classify", mock.Anything, "salmon").
		Return(entities.CategoryFish, nil)

	resp := handler.Classify(context.Background(), classifyRequest("salmon"))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		FoodName string `json:"foodName"`
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, "salmon", body.FoodName)
	assert.Equal(t, "Fish", body.Category)
}

func TestCategoryClassify_MissingName(t *testing.T) {
	handler := NewCategoryHandler(new(mockFoodClassifier), zap.NewNop())

	resp := handler.Classify(context.Background(), classifyRequest(""))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "foodName query parameter is required", decodeMessage(t, resp))
}

func TestCategoryClassify_NotConfigured(t *testing.T) {
	handler := NewCategoryHandler(nil, zap.NewNop())

	resp := handler.Classify(context.Background(), classifyRequest("salmon"))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "food classification is not configured", decodeMessage(t, resp))
}

func TestCategoryClassify_UpstreamFailure(t *testing.T) {
	classifier := new(mockFoodClassifier)
	handler := NewCategoryHandler(classifier, zap.NewNop())

	classifier.On("Classify", mock.Anything, "salmon").
		Return(entities.FoodCategory(""), apperrors.NewExternalError("anthropic", assert.AnError))

	resp := handler.Classify(context.Background(), classifyRequest("salmon"))

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}
