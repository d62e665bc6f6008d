// Package eventbridge publishes entity-change notifications to an
// EventBridge bus. Publishing is best-effort: handlers log failures and
// keep going.
package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"

	"pantry-backend/application/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"
)

const eventSource = "pantry.api"

// ChangePublisher implements ports.ChangePublisher using AWS EventBridge
type ChangePublisher struct {
	client       *eventbridge.Client
	eventBusName string
	logger       *zap.Logger
}

// NewChangePublisher creates a new EventBridge change publisher
func NewChangePublisher(client *eventbridge.Client, eventBusName string, logger *zap.Logger) ports.ChangePublisher {
	return &ChangePublisher{
		client:       client,
		eventBusName: eventBusName,
		logger:       logger,
	}
}

// PublishChange sends a single entity-change notification
func (p *ChangePublisher) PublishChange(ctx context.Context, change ports.EntityChange) error {
	detail, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	entry := types.PutEventsRequestEntry{
		EventBusName: aws.String(p.eventBusName),
		Source:       aws.String(eventSource),
		DetailType:   aws.String(change.EntityType + "." + change.Operation),
		Detail:       aws.String(string(detail)),
	}

	result, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{entry},
	})
	if err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}

	if result.FailedEntryCount > 0 {
		for _, e := range result.Entries {
			if e.ErrorCode != nil {
				return fmt.Errorf("change event rejected: %s", aws.ToString(e.ErrorMessage))
			}
		}
	}

	p.logger.Debug("Published change event",
		zap.String("entityType", change.EntityType),
		zap.String("operation", change.Operation),
		zap.String("entityID", change.EntityID),
	)

	return nil
}
