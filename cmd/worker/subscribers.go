package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/itemcatalog/pkg/app"
	"github.com/ghuser/itemcatalog/pkg/events"
	"github.com/ghuser/itemcatalog/pkg/logger"
	"github.com/ghuser/itemcatalog/pkg/telemetry"
	itemdomain "github.com/ghuser/itemcatalog/services/item/domain"
	itemEvents "github.com/ghuser/itemcatalog/services/item/domain/events"
	"github.com/ghuser/itemcatalog/services/item/domain/models"
)

// itemService is the part of the item application service the worker drives.
type itemService interface {
	WarmCache(ctx context.Context, event itemEvents.ItemCreatedEvent) error
	RecordEngagement(ctx context.Context, event itemEvents.EngagementRecordedEvent) (models.Statistics, error)
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application, svc itemService) error {
	handlers := map[string]func(context.Context, *message.Message) error{
		itemEvents.TopicItemCreated:    handleItemCreated(svc, a.Logger),
		itemEvents.TopicItemEngagement: handleEngagement(svc, a.Logger),
	}

	topics := make([]string, 0, len(handlers))
	for topic, handler := range handlers {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}
		go drainErrors(ctx, a.Logger, topic, errCh)
		topics = append(topics, topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// drainErrors consumes subscriber errors so the channel never blocks.
// Errors reaching here exhausted their retries and are reported to Sentry.
func drainErrors(ctx context.Context, log logger.Logger, topic string, errCh <-chan error) {
	for err := range errCh {
		log.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
		telemetry.ReportError(ctx, err)
	}
}

// handleItemCreated returns a handler for item.created events.
// Warms the Redis read-model cache so subsequent GetByID calls are served from cache.
// Cache warming is best-effort: failures are logged and the message is acked.
func handleItemCreated(svc itemService, log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt itemEvents.ItemCreatedEvent
		if err := events.DecodeJSON(msg, &evt); err != nil {
			return err
		}

		if err := svc.WarmCache(ctx, evt); err != nil {
			log.WarnContext(ctx, "cache warm failed for item.created",
				"item_id", evt.ItemID, "error", err)
			return nil
		}
		log.DebugContext(ctx, "cache warmed", "item_id", evt.ItemID, "seller_id", evt.SellerID)
		return nil
	}
}

// handleEngagement returns a handler for item.engagement events.
// Handlers must be idempotent; EventBus retries up to 3× on failure.
// Events for unknown items or with invalid payloads are acked without retry.
func handleEngagement(svc itemService, log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt itemEvents.EngagementRecordedEvent
		if err := events.DecodeJSON(msg, &evt); err != nil {
			return err
		}

		stats, err := svc.RecordEngagement(ctx, evt)
		switch {
		case err == nil:
		case errors.Is(err, itemdomain.ErrItemNotFound), errors.Is(err, itemdomain.ErrInvalidInput):
			return events.Permanent(err)
		default:
			return err
		}

		log.InfoContext(ctx, "engagement applied",
			"item_id", evt.ItemID,
			"kind", evt.Kind,
			"delta", evt.Delta,
			"likes", stats.Likes,
			"view_count", stats.ViewCount,
			"contacts", stats.Contacts,
		)
		return nil
	}
}
