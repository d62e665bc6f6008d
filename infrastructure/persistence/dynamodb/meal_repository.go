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

// MealRepository implements ports.MealRepository on DynamoDB
type MealRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewMealRepository creates a new MealRepository
func NewMealRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.MealRepository {
	return &MealRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// mealItem is the DynamoDB item shape for a meal record
type mealItem struct {
	PK         string              `dynamodbav:"PK"`
	SK         string              `dynamodbav:"SK"`
	EntityType string              `dynamodbav:"EntityType"`
	UserID     string              `dynamodbav:"UserID"`
	RecordID   string              `dynamodbav:"RecordID"`
	RecordDate string              `dynamodbav:"RecordDate"`
	MealType   string              `dynamodbav:"MealType"`
	Items      []entities.MealItem `dynamodbav:"Items"`
	Notes      string              `dynamodbav:"Notes,omitempty"`
	CreatedAt  string              `dynamodbav:"CreatedAt"`
	UpdatedAt  string              `dynamodbav:"UpdatedAt"`
}

func (m mealItem) toDomain() *entities.MealRecord {
	return &entities.MealRecord{
		UserID:     m.UserID,
		RecordID:   m.RecordID,
		RecordDate: m.RecordDate,
		MealType:   m.MealType,
		Items:      m.Items,
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromMealDomain(record *entities.MealRecord) mealItem {
	return mealItem{
		PK:         buildUserPK(record.UserID),
		SK:         buildMealSK(record.RecordID),
		EntityType: "MEAL_RECORD",
		UserID:     record.UserID,
		RecordID:   record.RecordID,
		RecordDate: record.RecordDate,
		MealType:   record.MealType,
		Items:      record.Items,
		Notes:      record.Notes,
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
}

// Create writes a new meal record unconditionally
func (r *MealRepository) Create(ctx context.Context, record *entities.MealRecord) error {
	av, err := attributevalue.MarshalMap(fromMealDomain(record))
	if err != nil {
		return apperrors.NewDatabaseError("marshal meal record", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to put meal record",
			zap.String("userID", record.UserID),
			zap.String("recordID", record.RecordID),
			zap.Error(err),
		)
		return apperrors.NewDatabaseError("create meal record", err)
	}

	return nil
}

// GetByID does a point lookup by owner and record id
func (r *MealRepository) GetByID(ctx context.Context, userID, recordID string) (*entities.MealRecord, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       itemKey(buildUserPK(userID), buildMealSK(recordID)),
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		return nil, apperrors.NewDatabaseError("get meal record", err)
	}
	if len(result.Item) == 0 {
		return nil, apperrors.NewNotFoundError("Meal record")
	}

	var record mealItem
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return nil, apperrors.NewDatabaseError("unmarshal meal record", err)
	}

	return record.toDomain(), nil
}

// recordDateFilter builds the inclusive RecordDate filter for a date range:
// both bounds become BETWEEN, a lone start becomes >=, a lone end becomes
// <=. The second return is false when no bound is set.
func recordDateFilter(dateRange entities.DateRange) (expression.ConditionBuilder, bool) {
	switch {
	case dateRange.IsZero():
		return expression.ConditionBuilder{}, false
	case dateRange.Start != "" && dateRange.End != "":
		return expression.Name("RecordDate").Between(
			expression.Value(dateRange.Start), expression.Value(dateRange.End)), true
	case dateRange.Start != "":
		return expression.Name("RecordDate").GreaterThanEqual(expression.Value(dateRange.Start)), true
	default:
		return expression.Name("RecordDate").LessThanEqual(expression.Value(dateRange.End)), true
	}
}

// ListByUser returns the user's meal records, optionally narrowed to an
// inclusive RecordDate range. ISO dates compare correctly as strings.
func (r *MealRepository) ListByUser(ctx context.Context, userID string, dateRange entities.DateRange) ([]entities.MealRecord, error) {
	keyEx := expression.Key("PK").Equal(expression.Value(buildUserPK(userID))).
		And(expression.Key("SK").BeginsWith(mealSKPrefix))

	builder := expression.NewBuilder().WithKeyCondition(keyEx)

	if filter, ok := recordDateFilter(dateRange); ok {
		builder = builder.WithFilter(filter)
	}

	expr, err := builder.Build()
	if err != nil {
		return nil, apperrors.NewDatabaseError("build meal query", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	result, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list meal records", err)
	}

	records := make([]entities.MealRecord, 0, len(result.Items))
	for _, raw := range result.Items {
		var record mealItem
		if err := attributevalue.UnmarshalMap(raw, &record); err != nil {
			r.logger.Warn("Failed to unmarshal meal record", zap.Error(err))
			continue
		}
		records = append(records, *record.toDomain())
	}

	return records, nil
}

// UpdateIfExists applies a partial update conditioned on the record
// already existing, as one DynamoDB call
func (r *MealRepository) UpdateIfExists(ctx context.Context, userID, recordID string, update entities.MealRecordUpdate) (*entities.MealRecord, error) {
	upd, err := buildUpdate(entities.MealUpdatableFields, update.Delta(), utils.NowRFC3339())
	if err != nil {
		if errors.Is(err, ErrNoUpdatableFields) {
			return nil, apperrors.NewValidationError("no valid fields provided")
		}
		return nil, apperrors.NewDatabaseError("build meal update", err)
	}

	expr, err := expression.NewBuilder().
		WithUpdate(upd).
		WithCondition(existsCondition()).
		Build()
	if err != nil {
		return nil, apperrors.NewDatabaseError("build meal update", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       itemKey(buildUserPK(userID), buildMealSK(recordID)),
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
			return nil, apperrors.NewNotFoundError("Meal record")
		}
		r.logger.Error("Failed to update meal record",
			zap.String("userID", userID),
			zap.String("recordID", recordID),
			zap.Error(err),
		)
		return nil, apperrors.NewDatabaseError("update meal record", err)
	}

	var record mealItem
	if err := attributevalue.UnmarshalMap(result.Attributes, &record); err != nil {
		return nil, apperrors.NewDatabaseError("unmarshal meal record", err)
	}

	return record.toDomain(), nil
}

// DeleteIfExists removes the record conditioned on it existing and returns
// the pre-delete snapshot
func (r *MealRepository) DeleteIfExists(ctx context.Context, userID, recordID string) (*entities.MealRecord, error) {
	expr, err := expression.NewBuilder().WithCondition(existsCondition()).Build()
	if err != nil {
		return nil, apperrors.NewDatabaseError("build meal delete", err)
	}

	input := &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      itemKey(buildUserPK(userID), buildMealSK(recordID)),
		ConditionExpression:      expr.Condition(),
		ExpressionAttributeNames: expr.Names(),
		ReturnValues:             types.ReturnValueAllOld,
	}

	result, err := r.client.DeleteItem(ctx, input)
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return nil, apperrors.NewNotFoundError("Meal record")
		}
		return nil, apperrors.NewDatabaseError("delete meal record", err)
	}

	var record mealItem
	if err := attributevalue.UnmarshalMap(result.Attributes, &record); err != nil {
		return nil, apperrors.NewDatabaseError("unmarshal meal record", err)
	}

	return record.toDomain(), nil
}
