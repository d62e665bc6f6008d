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

// InventoryHandler handles inventory item requests
type InventoryHandler struct {
	repo      ports.InventoryRepository
	publisher ports.ChangePublisher
	logger    *zap.Logger
}

// NewInventoryHandler creates a new inventory handler. The publisher may
// be nil when change notifications are disabled.
func NewInventoryHandler(repo ports.InventoryRepository, publisher ports.ChangePublisher, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateInventoryItemRequest is the request body for creating an item
type CreateInventoryItemRequest struct {
	Name            string   `json:"name" validate:"required"`
	Category        string   `json:"category" validate:"required"`
	Quantity        *float64 `json:"quantity" validate:"required,gte=0"`
	Unit            string   `json:"unit,omitempty"`
	StorageLocation string   `json:"storageLocation,omitempty"`
	Memo            string   `json:"memo,omitempty"`
}

// Create handles POST /inventory
func (h *InventoryHandler) Create(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	userID, resp := requireOwner(req)
	if resp != nil {
		return *resp
	}

	var payload CreateInventoryItemRequest
	if resp := parseBody(req, &payload); resp != nil {
		return *resp
	}

	now := utils.NowRFC3339()
	item := &entities.InventoryItem{
		UserID:          userID,
		ItemID:          uuid.New().String(),
		Name:            payload.Name,
		Category:        payload.Category,
		Quantity:        *payload.Quantity,
		Unit:            payload.Unit,
		StorageLocation: payload.StorageLocation,
		Memo:            payload.Memo,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := h.repo.Create(ctx, item); err != nil {
		h.logger.Error("Failed to create inventory item",
			zap.String("userID", userID),
			zap.Error(err),
		)
		return common.FromError(err, "failed to create inventory item")
	}

	notifyChange(ctx, h.publisher, h.logger, "inventory", "created", userID, item.ItemID)

	return common.JSON(http.StatusCreated, item)
}

// Get handles GET /inventory/{id}
func (h *InventoryHandler) Get(ctx context.Context, req events.APIGatewayProxyRequest, itemID string) events.APIGatewayProxyResponse {
	userID, resp := requireOwner(req)
	if resp != nil {
		return *resp
	}

	item, err := h.repo.GetByID(ctx, userID, itemID)
	if err != nil {
		return common.FromError(err, "failed to retrieve inventory item")
	}

	return common.JSON(http.StatusOK, item)
}

// List handles GET /inventory
func (h *InventoryHandler) List(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	userID, resp := requireOwner(req)
	if resp != nil {
		return *resp
	}

	items, err := h.repo.ListByUser(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to list inventory items",
			zap.String("userID", userID),
			zap.Error(err),
		)
		return common.FromError(err, "failed to list inventory items")
	}

	return common.JSON(http.StatusOK, items)
}

// Update handles PUT /inventory/{id}
func (h *InventoryHandler) Update(ctx context.Context, req events.APIGatewayProxyRequest, itemID string) events.APIGatewayProxyResponse {
	userID, resp := requireOwner(req)
	if resp != nil {
		return *resp
	}

	var update entities.InventoryItemUpdate
	if resp := parseBody(req, &update); resp != nil {
		return *resp
	}

	// Invalid type-constrained fields reject the whole update; nothing is
	// written to the store.
	if err := update.Validate(); err != nil {
		return common.FromError(err, "invalid inventory update")
	}
	if len(update.Delta()) == 0 {
		return common.Message(http.StatusBadRequest, "no valid fields provided")
	}

	item, err := h.repo.UpdateIfExists(ctx, userID, itemID, update)
	if err != nil {
		return common.FromError(err, "failed to update inventory item")
	}

	notifyChange(ctx, h.publisher, h.logger, "inventory", "updated", userID, itemID)

	return common.JSON(http.StatusOK, item)
}

// Delete handles DELETE /inventory/{id}
func (h *InventoryHandler) Delete(ctx context.Context, req events.APIGatewayProxyRequest, itemID string) events.APIGatewayProxyResponse {
	userID, resp := requireOwner(req)
	if resp != nil {
		return *resp
	}

	item, err := h.repo.DeleteIfExists(ctx, userID, itemID)
	if err != nil {
		return common.FromError(err, "failed to delete inventory item")
	}

	notifyChange(ctx, h.publisher, h.logger, "inventory", "deleted", userID, itemID)

	return common.JSON(http.StatusOK, deleteResponse{
		Message: "Inventory item deleted",
		Item:    item,
	})
}

// deleteResponse confirms a delete and carries the pre-delete snapshot
type deleteResponse struct {
	Message string      `json:"message"`
	Item    interface{} `json:"item"`
}
