package handlers

import (
	"context"
	"net/http"

	"pantry-backend/application/ports"
	"pantry-backend/domain/entities"
	"pantry-backend/pkg/common"
	"pantry-backend/pkg/utils"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MealHandler handles meal record requests
type MealHandler struct {
	repo      ports.MealRepository
	publisher ports.ChangePublisher
	logger    *zap.Logger
}

// NewMealHandler creates a new meal handler
func NewMealHandler(repo ports.MealRepository, publisher ports.ChangePublisher, logger *zap.Logger) *MealHandler {
	return &MealHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateMealRecordRequest is the request body for creating a meal record
type CreateMealRecordRequest struct {
	RecordDate string              `json:"recordDate" validate:"required,datetime=2006-01-02"`
	MealType   string              `json:"mealType" validate:"required"`
	Items      []entities.MealItem `json:"items" validate:"required,min=1,dive"`
	Notes      string              `json:"notes,omitempty"`
}

// Create handles POST /meals
func (h *MealHandler) Create(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	userID, resp := requireOwner(req)
	if resp != nil {
		return *resp
	}

	var payload CreateMealRecordRequest
	if resp := parseBody(req, &payload); resp != nil {
		return *resp
	}

	now := utils.NowRFC3339()
	record := &entities.MealRecord{
		UserID:     userID,
		RecordID:   uuid.New().String(),
		RecordDate: payload.RecordDate,
		MealType:   payload.MealType,
		Items:      payload.Items,
		Notes:      payload.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := h.repo.Create(ctx, record); err != nil {
		h.logger.Error("Failed to create meal record",
			zap.String("userID", userID),
			zap.Error(err),
		)
		return common.FromError(err, "failed to create meal record")
	}

	notifyChange(ctx, h.publisher, h.logger, "meal", "created", userID, record.RecordID)

	return common.JSON(http.StatusCreated, record)
}

// Get handles GET /meals/{id}
func (h *MealHandler) Get(ctx context.Context, req events.APIGatewayProxyRequest, recordID string) events.APIGatewayProxyResponse {
	userID, resp := requireOwner(req)
	if resp != nil {
		return *resp
	}

	record, err := h.repo.GetByID(ctx, userID, recordID)
	if err != nil {
		return common.FromError(err, "failed to retrieve meal record")
	}

	return common.JSON(http.StatusOK, record)
}

// List handles GET /meals with optional startDate/endDate query filters
func (h *MealHandler) List(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	userID, resp := requireOwner(req)
	if resp != nil {
		return *resp
	}

	dateRange := entities.DateRange{
		Start: req.QueryStringParameters["startDate"],
		End:   req.QueryStringParameters["endDate"],
	}

	records, err := h.repo.ListByUser(ctx, userID, dateRange)
	if err != nil {
		h.logger.Error("Failed to list meal records",
			zap.String("userID", userID),
			zap.Error(err),
		)
		return common.FromError(err, "failed to list meal records")
	}

	return common.JSON(http.StatusOK, records)
}

// Update handles PUT /meals/{id}
func (h *MealHandler) Update(ctx context.Context, req events.APIGatewayProxyRequest, recordID string) events.APIGatewayProxyResponse {
	userID, resp := requireOwner(req)
	if resp != nil {
		return *resp
	}

	var update entities.MealRecordUpdate
	if resp := parseBody(req, &update); resp != nil {
		return *resp
	}

	if err := update.Validate(); err != nil {
		return common.FromError(err, "invalid meal update")
	}
	if len(update.Delta()) == 0 {
		return common.Message(http.StatusBadRequest, "no valid fields provided")
	}

	record, err := h.repo.UpdateIfExists(ctx, userID, recordID, update)
	if err != nil {
		return common.FromError(err, "failed to update meal record")
	}

	notifyChange(ctx, h.publisher, h.logger, "meal", "updated", userID, recordID)

	return common.JSON(http.StatusOK, record)
}

// Delete handles DELETE /meals/{id}
func (h *MealHandler) Delete(ctx context.Context, req events.APIGatewayProxyRequest, recordID string) events.APIGatewayProxyResponse {
	userID, resp := requireOwner(req)
	if resp != nil {
		return *resp
	}

	record, err := h.repo.DeleteIfExists(ctx, userID, recordID)
	if err != nil {
		return common.FromError(err, "failed to delete meal record")
	}

	notifyChange(ctx, h.publisher, h.logger, "meal", "deleted", userID, recordID)

	return common.JSON(http.StatusOK, deleteResponse{
		Message: "Meal record deleted",
		Item:    record,
	})
}
