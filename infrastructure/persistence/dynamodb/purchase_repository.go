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

// PurchaseRepository implements ports.PurchaseRepository on DynamoDB
type PurchaseRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewPurchaseRepository creates a new PurchaseRepository
func NewPurchaseRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.PurchaseRepository {
	return &PurchaseRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// purchaseItem is the DynamoDB item shape for a purchase record
type purchaseItem struct {
	PK           string                  `dynamodbav:"PK"`
	SK           string                  `dynamodbav:"SK"`
	EntityType   string                  `dynamodbav:"EntityType"`
	UserID       string                  `dynamodbav:"UserID"`
	PurchaseID   string                  `dynamodbav:"PurchaseID"`
	PurchaseDate string                  `dynamodbav:"PurchaseDate"`
	Items        []entities.PurchaseItem `dynamodbav:"Items"`
	TotalAmount  *float64                `dynamodbav:"TotalAmount,omitempty"`
	Store        string                  `dynamodbav:"Store,omitempty"`
	Memo         string                  `dynamodbav:"Memo,omitempty"`
	CreatedAt    string                  `dynamodbav:"CreatedAt"`
	UpdatedAt    string                  `dynamodbav:"UpdatedAt"`
}

func (p purchaseItem) toDomain() *entities.PurchaseRecord {
	return &entities.PurchaseRecord{
		UserID:       p.UserID,
		PurchaseID:   p.PurchaseID,
		PurchaseDate: p.PurchaseDate,
		Items:        p.Items,
		TotalAmount:  p.TotalAmount,
		Store:        p.Store,
		Memo:         p.Memo,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func fromPurchaseDomain(record *entities.PurchaseRecord) purchaseItem {
	return purchaseItem{
		PK:           buildUserPK(record.UserID),
		SK:           buildPurchaseSK(record.PurchaseID),
		EntityType:   "PURCHASE_RECORD",
		UserID:       record.UserID,
		PurchaseID:   record.PurchaseID,
		PurchaseDate: record.PurchaseDate,
		Items:        record.Items,
		TotalAmount:  record.TotalAmount,
		Store:        record.Store,
		Memo:         record.Memo,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}

// Create writes a new purchase record unconditionally
func (r *PurchaseRepository) Create(ctx context.Context, record *entities.PurchaseRecord) error {
	av, err := attributevalue.MarshalMap(fromPurchaseDomain(record))
	if err != nil {
		return apperrors.NewDatabaseError("marshal purchase record", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to put purchase record",
			zap.String("userID", record.UserID),
			zap.String("purchaseID", record.PurchaseID),
			zap.Error(err),
		)
		return apperrors.NewDatabaseError("create purchase record", err)
	}

	return nil
}

// GetByID does a point lookup by owner and purchase id
func (r *PurchaseRepository) GetByID(ctx context.Context, userID, purchaseID string) (*entities.PurchaseRecord, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       itemKey(buildUserPK(userID), buildPurchaseSK(purchaseID)),
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		return nil, apperrors.NewDatabaseError("get purchase record", err)
	}
	if len(result.Item) == 0 {
		return nil, apperrors.NewNotFoundError("Purchase record")
	}

	var record purchaseItem
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return nil, apperrors.NewDatabaseError("unmarshal purchase record", err)
	}

	return record.toDomain(), nil
}

// ListByUser returns every purchase record owned by the user
func (r *PurchaseRepository) ListByUser(ctx context.Context, userID string) ([]entities.PurchaseRecord, error) {
	keyEx := expression.Key("PK").Equal(expression.Value(buildUserPK(userID))).
		And(expression.Key("SK").BeginsWith(purchaseSKPrefix))

	expr, err := expression.NewBuilder().WithKeyCondition(keyEx).Build()
	if err != nil {
		return nil, apperrors.NewDatabaseError("build purchase query", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	result, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list purchase records", err)
	}

	records := make([]entities.PurchaseRecord, 0, len(result.Items))
	for _, raw := range result.Items {
		var record purchaseItem
		if err := attributevalue.UnmarshalMap(raw, &record); err != nil {
			r.logger.Warn("Failed to unmarshal purchase record", zap.Error(err))
			continue
		}
		records = append(records, *record.toDomain())
	}

	return records, nil
}

// UpdateIfExists applies a partial update conditioned on the record
// already existing, as one DynamoDB call
func (r *PurchaseRepository) UpdateIfExists(ctx context.Context, userID, purchaseID string, update entities.PurchaseRecordUpdate) (*entities.PurchaseRecord, error) {
	upd, err := buildUpdate(entities.PurchaseUpdatableFields, update.Delta(), utils.NowRFC3339())
	if err != nil {
		if errors.Is(err, ErrNoUpdatableFields) {
			return nil, apperrors.NewValidationError("no valid fields provided")
		}
		return nil, apperrors.NewDatabaseError("build purchase update", err)
	}

	expr, err := expression.NewBuilder().
		WithUpdate(upd).
		WithCondition(existsCondition()).
		Build()
	if err != nil {
		return nil, apperrors.NewDatabaseError("build purchase update", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       itemKey(buildUserPK(userID), buildPurchaseSK(purchaseID)),
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
			return nil, apperrors.NewNotFoundError("Purchase record")
		}
		r.logger.Error("Failed to update purchase record",
			zap.String("userID", userID),
			zap.String("purchaseID", purchaseID),
			zap.Error(err),
		)
		return nil, apperrors.NewDatabaseError("update purchase record", err)
	}

	var record purchaseItem
	if err := attributevalue.UnmarshalMap(result.Attributes, &record); err != nil {
		return nil, apperrors.NewDatabaseError("unmarshal purchase record", err)
	}

	return record.toDomain(), nil
}

// DeleteIfExists removes the record conditioned on it existing and returns
// the pre-delete snapshot
func (r *PurchaseRepository) DeleteIfExists(ctx context.Context, userID, purchaseID string) (*entities.PurchaseRecord, error) {
	expr, err := expression.NewBuilder().WithCondition(existsCondition()).Build()
	if err != nil {
		return nil, apperrors.NewDatabaseError("build purchase delete", err)
	}

	input := &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      itemKey(buildUserPK(userID), buildPurchaseSK(purchaseID)),
		ConditionExpression:      expr.Condition(),
		ExpressionAttributeNames: expr.Names(),
		ReturnValues:             types.ReturnValueAllOld,
	}

	result, err := r.client.DeleteItem(ctx, input)
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return nil, apperrors.NewNotFoundError("Purchase record")
		}
		return nil, apperrors.NewDatabaseError("delete purchase record", err)
	}

	var record purchaseItem
	if err := attributevalue.UnmarshalMap(result.Attributes, &record); err != nil {
		return nil, apperrors.NewDatabaseError("unmarshal purchase record", err)
	}

	return record.toDomain(), nil
}
