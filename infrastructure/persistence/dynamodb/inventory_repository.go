package dynamodb

import (
	"context"
	"errors"

	"pantry-backend/application/ports"
	"pantry-backend/domain/entities"
	apperrors "pantry-backend/pkg/errors"
	"pantry-backend/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// InventoryRepository implements ports.InventoryRepository on DynamoDB
type InventoryRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.InventoryRepository {
	return &InventoryRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// inventoryItem is the DynamoDB item shape for an inventory item
type inventoryItem struct {
	PK              string  `dynamodbav:"PK"`
	SK              string  `dynamodbav:"SK"`
	EntityType      string  `dynamodbav:"EntityType"`
	UserID          string  `dynamodbav:"UserID"`
	ItemID          string  `dynamodbav:"ItemID"`
	Name            string  `dynamodbav:"Name"`
	Category        string  `dynamodbav:"Category"`
	Quantity        float64 `dynamodbav:"Quantity"`
	Unit            string  `dynamodbav:"Unit,omitempty"`
	StorageLocation string  `dynamodbav:"StorageLocation,omitempty"`
	Memo            string  `dynamodbav:"Memo,omitempty"`
	CreatedAt       string  `dynamodbav:"CreatedAt"`
	UpdatedAt       string  `dynamodbav:"UpdatedAt"`
}

func (i inventoryItem) toDomain() *entities.InventoryItem {
	return &entities.InventoryItem{
		UserID:          i.UserID,
		ItemID:          i.ItemID,
		Name:            i.Name,
		Category:        i.Category,
		Quantity:        i.Quantity,
		Unit:            i.Unit,
		StorageLocation: i.StorageLocation,
		Memo:            i.Memo,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}

func fromInventoryDomain(item *entities.InventoryItem) inventoryItem {
	return inventoryItem{
		PK:              buildUserPK(item.UserID),
		SK:              buildInventorySK(item.ItemID),
		EntityType:      "INVENTORY_ITEM",
		UserID:          item.UserID,
		ItemID:          item.ItemID,
		Name:            item.Name,
		Category:        item.Category,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		StorageLocation: item.StorageLocation,
		Memo:            item.Memo,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

// Create writes a new inventory item unconditionally. Identity is freshly
// generated by the caller, so no existence check is needed.
func (r *InventoryRepository) Create(ctx context.Context, item *entities.InventoryItem) error {
	av, err := attributevalue.MarshalMap(fromInventoryDomain(item))
	if err != nil {
		return apperrors.NewDatabaseError("marshal inventory item", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to put inventory item",
			zap.String("userID", item.UserID),
			zap.String("itemID", item.ItemID),
			zap.Error(err),
		)
		return apperrors.NewDatabaseError("create inventory item", err)
	}

	return nil
}

// GetByID does a point lookup by owner and item id
func (r *InventoryRepository) GetByID(ctx context.Context, userID, itemID string) (*entities.InventoryItem, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       itemKey(buildUserPK(userID), buildInventorySK(itemID)),
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		return nil, apperrors.NewDatabaseError("get inventory item", err)
	}
	if len(result.Item) == 0 {
		return nil, apperrors.NewNotFoundError("Inventory item")
	}

	var item inventoryItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, apperrors.NewDatabaseError("unmarshal inventory item", err)
	}

	return item.toDomain(), nil
}

// ListByUser returns every inventory item owned by the user
func (r *InventoryRepository) ListByUser(ctx context.Context, userID string) ([]entities.InventoryItem, error) {
	keyEx := expression.Key("PK").Equal(expression.Value(buildUserPK(userID))).
		And(expression.Key("SK").BeginsWith(inventorySKPrefix))

	expr, err := expression.NewBuilder().WithKeyCondition(keyEx).Build()
	if err != nil {
		return nil, apperrors.NewDatabaseError("build inventory query", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	result, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list inventory items", err)
	}

	items := make([]entities.InventoryItem, 0, len(result.Items))
	for _, raw := range result.Items {
		var item inventoryItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			r.logger.Warn("Failed to unmarshal inventory item", zap.Error(err))
			continue
		}
		items = append(items, *item.toDomain())
	}

	return items, nil
}

// UpdateIfExists applies a partial update conditioned on the item already
// existing. The condition and the mutation are one DynamoDB call.
func (r *InventoryRepository) UpdateIfExists(ctx context.Context, userID, itemID string, update entities.InventoryItemUpdate) (*entities.InventoryItem, error) {
	upd, err := buildUpdate(entities.InventoryUpdatableFields, update.Delta(), utils.NowRFC3339())
	if err != nil {
		if errors.Is(err, ErrNoUpdatableFields) {
			return nil, apperrors.NewValidationError("no valid fields provided")
		}
		return nil, apperrors.NewDatabaseError("build inventory update", err)
	}

	expr, err := expression.NewBuilder().
		WithUpdate(upd).
		WithCondition(existsCondition()).
		Build()
	if err != nil {
		return nil, apperrors.NewDatabaseError("build inventory update", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       itemKey(buildUserPK(userID), buildInventorySK(itemID)),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	}

	result, err := r.client.UpdateItem(ctx, input)
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return nil, apperrors.NewNotFoundError("Inventory item")
		}
		r.logger.Error("Failed to update inventory item",
			zap.String("userID", userID),
			zap.String("itemID", itemID),
			zap.Error(err),
		)
		return nil, apperrors.NewDatabaseError("update inventory item", err)
	}

	var item inventoryItem
	if err := attributevalue.UnmarshalMap(result.Attributes, &item); err != nil {
		return nil, apperrors.NewDatabaseError("unmarshal inventory item", err)
	}

	return item.toDomain(), nil
}

// DeleteIfExists removes the item conditioned on it existing and returns
// the pre-delete snapshot
func (r *InventoryRepository) DeleteIfExists(ctx context.Context, userID, itemID string) (*entities.InventoryItem, error) {
	expr, err := expression.NewBuilder().WithCondition(existsCondition()).Build()
	if err != nil {
		return nil, apperrors.NewDatabaseError("build inventory delete", err)
	}

	input := &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      itemKey(buildUserPK(userID), buildInventorySK(itemID)),
		ConditionExpression:      expr.Condition(),
		ExpressionAttributeNames: expr.Names(),
		ReturnValues:             types.ReturnValueAllOld,
	}

	result, err := r.client.DeleteItem(ctx, input)
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return nil, apperrors.NewNotFoundError("Inventory item")
		}
		return nil, apperrors.NewDatabaseError("delete inventory item", err)
	}

	var item inventoryItem
	if err := attributevalue.UnmarshalMap(result.Attributes, &item); err != nil {
		return nil, apperrors.NewDatabaseError("unmarshal inventory item", err)
	}

	return item.toDomain(), nil
}
