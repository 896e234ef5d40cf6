package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for the item bounded context.
const (
	// TopicItemCreated is published when an Item is created.
	TopicItemCreated = "item.created"

	// TopicItemEngagement carries like/view/contact events from the
	// engagement pipeline; the worker applies them to item statistics.
	TopicItemEngagement = "item.engagement"
)

// ItemCreatedEvent is published after a new Item is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated).
type ItemCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     string    `json:"item_id"`
	SellerID   int64     `json:"seller_id"`
	Name       string    `json:"name"`
	Price      int64     `json:"price"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EngagementRecordedEvent reports one counter adjustment for an item.
// Kind is one of "like", "view", "contact"; Delta may be negative.
type EngagementRecordedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     string    `json:"item_id"`
	Kind       string    `json:"kind"`
	Delta      int64     `json:"delta"`
	OccurredAt time.Time `json:"occurred_at"`
}
