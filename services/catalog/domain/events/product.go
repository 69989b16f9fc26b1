package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the catalog context.
const (
	TopicProductCreated  = "product.created"
	TopicCatalogReseeded = "catalog.reseeded"
)

// ProductCreatedEvent is published after a new product is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicProductCreated).
type ProductCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ProductID  uuid.UUID `json:"product_id"`
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	Images     []string  `json:"images"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CatalogReseededEvent is published after a bulk reseed settles, whether or
// not every entry succeeded.
type CatalogReseededEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	Wiped      int64     `json:"wiped"`    // products removed in the wipe phase
	Created    int       `json:"created"`  // entries created successfully
	Failed     int       `json:"failed"`   // entries that errored
	OccurredAt time.Time `json:"occurred_at"`
}
