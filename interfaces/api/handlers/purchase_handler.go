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

// PurchaseHandler handles purchase record requests
type PurchaseHandler struct {
	repo      ports.PurchaseRepository
	publisher ports.ChangePublisher
	logger    *zap.Logger
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(repo ports.PurchaseRepository, publisher ports.ChangePublisher, logger *zap.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreatePurchaseRecordRequest is the request body for creating a purchase
// record
type CreatePurchaseRecordRequest struct {
	PurchaseDate string                  `json:"purchaseDate" validate:"required"`
	Items        []entities.PurchaseItem `json:"items" validate:"required,min=1,dive"`
	TotalAmount  *float64                `json:"totalAmount,omitempty" validate:"omitempty,gte=0"`
	Store        string                  `json:"store,omitempty"`
	Memo         string                  `json:"memo,omitempty"`
}

// Create handles POST /purchases
func (h *PurchaseHandler) Create(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	userID, resp := requireOwner(req)
	if resp != nil {
		return *resp
	}

	var payload CreatePurchaseRecordRequest
	if resp := parseBody(req, &payload); resp != nil {
		return *resp
	}

	now := utils.NowRFC3339()
	record := &entities.PurchaseRecord{
		UserID:       userID,
		PurchaseID:   uuid.New().String(),
		PurchaseDate: payload.PurchaseDate,
		Items:        payload.Items,
		TotalAmount:  payload.TotalAmount,
		Store:        payload.Store,
		Memo:         payload.Memo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.repo.Create(ctx, record); err != nil {
		h.logger.Error("Failed to create purchase record",
			zap.String("userID", userID),
			zap.Error(err),
		)
		return common.FromError(err, "failed to create purchase record")
	}

	notifyChange(ctx, h.publisher, h.logger, "purchase", "created", userID, record.PurchaseID)

	return common.JSON(http.StatusCreated, record)
}

// Get handles GET /purchases/{id}
func (h *PurchaseHandler) Get(ctx context.Context, req events.APIGatewayProxyRequest, purchaseID string) events.APIGatewayProxyResponse {
	userID, resp := requireOwner(req)
	if resp != nil {
		return *resp
	}

	record, err := h.repo.GetByID(ctx, userID, purchaseID)
	if err != nil {
		return common.FromError(err, "failed to retrieve purchase record")
	}

	return common.JSON(http.StatusOK, record)
}

// List handles GET /purchases
func (h *PurchaseHandler) List(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	userID, resp := requireOwner(req)
	if resp != nil {
		return *resp
	}

	records, err := h.repo.ListByUser(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to list purchase records",
			zap.String("userID", userID),
			zap.Error(err),
		)
		return common.FromError(err, "failed to list purchase records")
	}

	return common.JSON(http.StatusOK, records)
}

// Update handles PUT /purchases/{id}
func (h *PurchaseHandler) Update(ctx context.Context, req events.APIGatewayProxyRequest, purchaseID string) events.APIGatewayProxyResponse {
	userID, resp := requireOwner(req)
	if resp != nil {
		return *resp
	}

	var update entities.PurchaseRecordUpdate
	if resp := parseBody(req, &update); resp != nil {
		return *resp
	}

	if err := update.Validate(); err != nil {
		return common.FromError(err, "invalid purchase update")
	}
	if len(update.Delta()) == 0 {
		return common.Message(http.StatusBadRequest, "no valid fields provided")
	}

	record, err := h.repo.UpdateIfExists(ctx, userID, purchaseID, update)
	if err != nil {
		return common.FromError(err, "failed to update purchase record")
	}

	notifyChange(ctx, h.publisher, h.logger, "purchase", "updated", userID, purchaseID)

	return common.JSON(http.StatusOK, record)
}

// Delete handles DELETE /purchases/{id}
func (h *PurchaseHandler) Delete(ctx context.Context, req events.APIGatewayProxyRequest, purchaseID string) events.APIGatewayProxyResponse {
	userID, resp := requireOwner(req)
	if resp != nil {
		return *resp
	}

	record, err := h.repo.DeleteIfExists(ctx, userID, purchaseID)
	if err != nil {
		return common.FromError(err, "failed to delete purchase record")
	}

	notifyChange(ctx, h.publisher, h.logger, "purchase", "deleted", userID, purchaseID)

	return common.JSON(http.StatusOK, deleteResponse{
		Message: "Purchase record deleted",
		Item:    record,
	})
}
