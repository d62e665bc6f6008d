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

func TestMealCreate(t *testing.T) {
	repo := new(mockMealRepository)
	handler := NewMealHandler(repo, nil, zap.NewNop())

	var stored *entities.MealRecord
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entities.MealRecord")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*entities.MealRecord)
		}).
		Return(nil)

	body := `{"recordDate":"2025-06-01","mealType":"breakfast","items":[{"name":"Toast","quantity":2}],"notes":"quick"}`
	resp := handler.Create(context.Background(), ownerRequest(body))

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, stored)
	assert.Equal(t, "user-1", stored.UserID)
	assert.NotEmpty(t, stored.RecordID)
	assert.Equal(t, "2025-06-01", stored.RecordDate)
	assert.Len(t, stored.Items, 1)
	assert.Equal(t, stored.CreatedAt, stored.UpdatedAt)
}

func TestMealCreate_InvalidBody(t *testing.T) {
	repo := new(mockMealRepository)
	handler := NewMealHandler(repo, nil, zap.NewNop())

	tests := []struct {
		name string
		body string
	}{
		{"empty items", `{"recordDate":"2025-06-01","mealType":"lunch","items":[]}`},
		{"item without name", `{"recordDate":"2025-06-01","mealType":"lunch","items":[{"quantity":1}]}`},
		{"missing meal type", `{"recordDate":"2025-06-01","items":[{"name":"Rice"}]}`},
		{"bad date format", `{"recordDate":"June 1st","mealType":"lunch","items":[{"name":"Rice"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := handler.Create(context.Background(), ownerRequest(tt.body))
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
	repo.AssertNotCalled(t, "Create")
}

func TestMealList_PassesDateRange(t *testing.T) {
	repo := new(mockMealRepository)
	handler := NewMealHandler(repo, nil, zap.NewNop())

	wantRange := entities.DateRange{Start: "2025-06-01", End: "2025-06-30"}
	repo.On("ListByUser", mock.Anything, "user-1", wantRange).
		Return([]entities.MealRecord{{RecordID: "m-1"}}, nil)

	resp := handler.List(context.Background(), events.APIGatewayProxyRequest{
		QueryStringParameters: map[string]string{
			"userId":    "user-1",
			"startDate": "2025-06-01",
			"endDate":   "2025-06-30",
		},
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	repo.AssertExpectations(t)
}

func TestMealList_NoFilter(t *testing.T) {
	repo := new(mockMealRepository)
	handler := NewMealHandler(repo, nil, zap.NewNop())

	repo.On("ListByUser", mock.Anything, "user-1", entities.DateRange{}).
		Return([]entities.MealRecord{}, nil)

	resp := handler.List(context.Background(), ownerRequest(""))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	repo.AssertExpectations(t)
}

func TestMealUpdate(t *testing.T) {
	repo := new(mockMealRepository)
	handler := NewMealHandler(repo, nil, zap.NewNop())

	updated := &entities.MealRecord{RecordID: "m-1", MealType: "dinner"}
	repo.On("UpdateIfExists", mock.Anything, "user-1", "m-1",
		entities.MealRecordUpdate{MealType: strPtr("dinner")}).
		Return(updated, nil)

	resp := handler.Update(context.Background(), ownerRequest(`{"mealType":"dinner"}`), "m-1")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var record entities.MealRecord
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &record))
	assert.Equal(t, "dinner", record.MealType)
}

func TestMealUpdate_RejectedBeforeStore(t *testing.T) {
	repo := new(mockMealRepository)
	handler := NewMealHandler(repo, nil, zap.NewNop())

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"empty items", `{"items":[]}`, "items must be a non-empty list"},
		{"item without name", `{"items":[{"quantity":1}]}`, "items entries require a name"},
		{"item with negative quantity", `{"items":[{"name":"Rice","quantity":-1}]}`, "items entries require a non-negative quantity"},
		{"empty record date", `{"recordDate":""}`, "recordDate must not be empty"},
		{"no updatable fields", `{"recordId":"someone-else"}`, "no valid fields provided"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := handler.Update(context.Background(), ownerRequest(tt.body), "m-1")
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.message, decodeMessage(t, resp))
		})
	}
	repo.AssertNotCalled(t, "UpdateIfExists")
}

func TestMealDelete(t *testing.T) {
	repo := new(mockMealRepository)
	handler := NewMealHandler(repo, nil, zap.NewNop())

	deleted := &entities.MealRecord{RecordID: "m-1", MealType: "lunch"}
	repo.On("DeleteIfExists", mock.Anything, "user-1", "m-1").Return(deleted, nil)

	resp := handler.Delete(context.Background(), ownerRequest(""), "m-1")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Message string              `json:"message"`
		Item    entities.MealRecord `json:"item"`
	}
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, "Meal record deleted", body.Message)
	assert.Equal(t, "m-1", body.Item.RecordID)
}

func TestMealDelete_NotFound(t *testing.T) {
	repo := new(mockMealRepository)
	handler := NewMealHandler(repo, nil, zap.NewNop())

	repo.On("DeleteIfExists", mock.Anything, "user-1", "missing").
		Return(nil, apperrors.NewNotFoundError("Meal record"))

	resp := handler.Delete(context.Background(), ownerRequest(""), "missing")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Meal record not found", decodeMessage(t, resp))
}
