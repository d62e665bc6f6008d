// Package di wires the application together. Providers follow constructor
// injection; there is no request-scoped or global state.
package di

import (
	"context"
	"fmt"

	"pantry-backend/application/ports"
	"pantry-backend/infrastructure/classification/anthropic"
	"pantry-backend/infrastructure/config"
	"pantry-backend/infrastructure/messaging/eventbridge"
	dynamopersist "pantry-backend/infrastructure/persistence/dynamodb"
	"pantry-backend/interfaces/api"
	"pantry-backend/interfaces/api/handlers"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	Router *api.Router

	InventoryRepo ports.InventoryRepository
	MealRepo      ports.MealRepository
	PurchaseRepo  ports.PurchaseRepository
	Publisher     ports.ChangePublisher
	Classifier    ports.FoodClassifier
}

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	awsCfg, err := ProvideAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	ddbClient := ProvideDynamoDBClient(awsCfg)

	inventoryRepo := dynamopersist.NewInventoryRepository(ddbClient, cfg.DynamoDBTable, logger)
	mealRepo := dynamopersist.NewMealRepository(ddbClient, cfg.DynamoDBTable, logger)
	purchaseRepo := dynamopersist.NewPurchaseRepository(ddbClient, cfg.DynamoDBTable, logger)

	publisher := ProvideChangePublisher(awsCfg, cfg, logger)
	classifier := ProvideClassifier(cfg, logger)

	router := api.NewRouter(
		handlers.NewInventoryHandler(inventoryRepo, publisher, logger),
		handlers.NewMealHandler(mealRepo, publisher, logger),
		handlers.NewPurchaseHandler(purchaseRepo, publisher, logger),
		handlers.NewCategoryHandler(classifier, logger),
		cfg.Environment,
		logger,
	)

	return &Container{
		Config:        cfg,
		Logger:        logger,
		Router:        router,
		InventoryRepo: inventoryRepo,
		MealRepo:      mealRepo,
		PurchaseRepo:  purchaseRepo,
		Publisher:     publisher,
		Classifier:    classifier,
	}, nil
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideChangePublisher creates the EventBridge publisher, or nil when no
// bus is configured
func ProvideChangePublisher(awsCfg aws.Config, cfg *config.Config, logger *zap.Logger) ports.ChangePublisher {
	if cfg.EventBusName == "" {
		return nil
	}
	return eventbridge.NewChangePublisher(awseventbridge.NewFromConfig(awsCfg), cfg.EventBusName, logger)
}

// ProvideClassifier creates the food classifier, or nil when no provider
// key is configured
func ProvideClassifier(cfg *config.Config, logger *zap.Logger) ports.FoodClassifier {
	if cfg.AnthropicAPIKey == "" {
		return nil
	}
	return anthropic.NewClassifier(cfg.AnthropicAPIKey, cfg.AnthropicModel, logger)
}
