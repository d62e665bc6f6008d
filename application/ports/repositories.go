// Package ports defines the interfaces between the request handlers and
// the infrastructure adapters behind them.
package ports

import (
	"context"

	"pantry-backend/domain/entities"
)

// InventoryRepository persists inventory items for a user.
//
// UpdateIfExists and DeleteIfExists are atomic conditional operations: the
// existence check and the mutation happen in a single store call, never as
// a read followed by a write. Both return a typed not-found error when the
// record does not exist.
type InventoryRepository interface {
	Create(ctx context.Context, item *entities.InventoryItem) error
	GetByID(ctx context.Context, userID, itemID string) (*entities.InventoryItem, error)
	ListByUser(ctx context.Context, userID string) ([]entities.InventoryItem, error)
	UpdateIfExists(ctx context.Context, userID, itemID string, update entities.InventoryItemUpdate) (*entities.InventoryItem, error)
	DeleteIfExists(ctx context.Context, userID, itemID string) (*entities.InventoryItem, error)
}

// MealRepository persists meal records for a user
type MealRepository interface {
	Create(ctx context.Context, record *entities.MealRecord) error
	GetByID(ctx context.Context, userID, recordID string) (*entities.MealRecord, error)
	ListByUser(ctx context.Context, userID string, dateRange entities.DateRange) ([]entities.MealRecord, error)
	UpdateIfExists(ctx context.Context, userID, recordID string, update entities.MealRecordUpdate) (*entities.MealRecord, error)
	DeleteIfExists(ctx context.Context, userID, recordID string) (*entities.MealRecord, error)
}

// PurchaseRepository persists purchase records for a user
type PurchaseRepository interface {
	Create(ctx context.Context, record *entities.PurchaseRecord) error
	GetByID(ctx context.Context, userID, purchaseID string) (*entities.PurchaseRecord, error)
	ListByUser(ctx context.Context, userID string) ([]entities.PurchaseRecord, error)
	UpdateIfExists(ctx context.Context, userID, purchaseID string, update entities.PurchaseRecordUpdate) (*entities.PurchaseRecord, error)
	DeleteIfExists(ctx context.Context, userID, purchaseID string) (*entities.PurchaseRecord, error)
}

// FoodClassifier maps a food name onto the fixed category enum via an
// external model call
type FoodClassifier interface {
	Classify(ctx context.Context, foodName string) (entities.FoodCategory, error)
}

// EntityChange describes a successful mutation for downstream consumers
type EntityChange struct {
	EntityType string `json:"entityType"`
	Operation  string `json:"operation"`
	UserID     string `json:"userId"`
	EntityID   string `json:"entityId"`
	Timestamp  string `json:"timestamp"`
}

// ChangePublisher fans out entity-change notifications. Publishing is
// best-effort; failures must not fail the originating request.
type ChangePublisher interface {
	PublishChange(ctx context.Context, change EntityChange) error
}
