package handlers

import (
	"context"

	"pantry-backend/application/ports"
	"pantry-backend/domain/entities"

	"github.com/stretchr/testify/mock"
)

type mockInventoryRepository struct {
	mock.Mock
}

func (m *mockInventoryRepository) Create(ctx context.Context, item *entities.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockInventoryRepository) GetByID(ctx context.Context, userID, itemID string) (*entities.InventoryItem, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.InventoryItem), args.Error(1)
}

func (m *mockInventoryRepository) ListByUser(ctx context.Context, userID string) ([]entities.InventoryItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.InventoryItem), args.Error(1)
}

func (m *mockInventoryRepository) UpdateIfExists(ctx context.Context, userID, itemID string, update entities.InventoryItemUpdate) (*entities.InventoryItem, error) {
	args := m.Called(ctx, userID, itemID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.InventoryItem), args.Error(1)
}

func (m *mockInventoryRepository) DeleteIfExists(ctx context.Context, userID, itemID string) (*entities.InventoryItem, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.InventoryItem), args.Error(1)
}

type mockMealRepository struct {
	mock.Mock
}

func (m *mockMealRepository) Create(ctx context.Context, record *entities.MealRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockMealRepository) GetByID(ctx context.Context, userID, recordID string) (*entities.MealRecord, error) {
	args := m.Called(ctx, userID, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MealRecord), args.Error(1)
}

func (m *mockMealRepository) ListByUser(ctx context.Context, userID string, dateRange entities.DateRange) ([]entities.MealRecord, error) {
	args := m.Called(ctx, userID, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.MealRecord), args.Error(1)
}

func (m *mockMealRepository) UpdateIfExists(ctx context.Context, userID, recordID string, update entities.MealRecordUpdate) (*entities.MealRecord, error) {
	args := m.Called(ctx, userID, recordID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MealRecord), args.Error(1)
}

func (m *mockMealRepository) DeleteIfExists(ctx context.Context, userID, recordID string) (*entities.MealRecord, error) {
	args := m.Called(ctx, userID, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MealRecord), args.Error(1)
}

type mockPurchaseRepository struct {
	mock.Mock
}

func (m *mockPurchaseRepository) Create(ctx context.Context, record *entities.PurchaseRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockPurchaseRepository) GetByID(ctx context.Context, userID, purchaseID string) (*entities.PurchaseRecord, error) {
	args := m.Called(ctx, userID, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PurchaseRecord), args.Error(1)
}

func (m *mockPurchaseRepository) ListByUser(ctx context.Context, userID string) ([]entities.PurchaseRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.PurchaseRecord), args.Error(1)
}

func (m *mockPurchaseRepository) UpdateIfExists(ctx context.Context, userID, purchaseID string, update entities.PurchaseRecordUpdate) (*entities.PurchaseRecord, error) {
	args := m.Called(ctx, userID, purchaseID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PurchaseRecord), args.Error(1)
}

func (m *mockPurchaseRepository) DeleteIfExists(ctx context.Context, userID, purchaseID string) (*entities.PurchaseRecord, error) {
	args := m.Called(ctx, userID, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PurchaseRecord), args.Error(1)
}

type mockFoodClassifier struct {
	mock.Mock
}

func (m *mockFoodClassifier) Classify(ctx context.Context, foodName string) (entities.FoodCategory, error) {
	args := m.Called(ctx, foodName)
	return args.Get(0).(entities.FoodCategory), args.Error(1)
}

type mockChangePublisher struct {
	mock.Mock
}

func (m *mockChangePublisher) PublishChange(ctx context.Context, change ports.EntityChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}
