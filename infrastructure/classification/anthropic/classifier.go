// Package anthropic classifies food names into the fixed category enum
// with a single text-generation call to the Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"pantry-backend/domain/entities"
	apperrors "pantry-backend/pkg/errors"

	anthropic "github.com/liushuangls/go-anthropic/v2"
	"go.uber.org/zap"
)

// Classifier implements ports.FoodClassifier using the Anthropic API
type Classifier struct {
	client *anthropic.Client
	model  anthropic.Model
	logger *zap.Logger
}

// NewClassifier creates a new Classifier. The API key must be non-empty.
func NewClassifier(apiKey, model string, logger *zap.Logger) *Classifier {
	return &Classifier{
		client: anthropic.NewClient(apiKey),
		model:  anthropic.Model(model),
		logger: logger,
	}
}

// buildPrompt asks for exactly one category name so the response needs no
// parsing beyond normalization
func buildPrompt(foodName string) string {
	names := make([]string, 0, len(entities.FoodCategories))
	for _, c := range entities.FoodCategories {
		names = append(names, string(c))
	}
	return fmt.Sprintf(
		"Classify the food %q into exactly one of the following categories: %s. "+
			"Respond with only the category name.",
		foodName, strings.Join(names, ", "),
	)
}

// Classify maps a food name onto the category enum. Unrecognized model
// output coerces to Other.
func (c *Classifier) Classify(ctx context.Context, foodName string) (entities.FoodCategory, error) {
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     c.model,
		MaxTokens: 16,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(buildPrompt(foodName)),
		},
	})
	if err != nil {
		c.logger.Error("Food classification call failed",
			zap.String("foodName", foodName),
			zap.Error(err),
		)
		return "", apperrors.NewExternalError("anthropic", err)
	}

	if len(resp.Content) == 0 {
		return "", apperrors.NewExternalError("anthropic", fmt.Errorf("empty response"))
	}

	category := entities.NormalizeCategory(resp.Content[0].GetText())

	c.logger.Debug("Classified food name",
		zap.String("foodName", foodName),
		zap.String("category", string(category)),
	)

	return category, nil
}
