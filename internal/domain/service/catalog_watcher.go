package service

import (
	"context"

	"github.com/google/uuid"
)

// CatalogEventKind describes a committed catalog change.
type CatalogEventKind string

const (
	CatalogEventUpsert CatalogEventKind = "upsert"
	CatalogEventDelete CatalogEventKind = "delete"
	// CatalogEventResync tells a subscriber that events were dropped and the
	// full catalog should be re-read.
	CatalogEventResync CatalogEventKind = "resync"
)

// CatalogEvent is delivered to catalog subscribers after a write commits.
type CatalogEvent struct {
	Kind   CatalogEventKind `json:"kind"`
	ItemID uuid.UUID        `json:"item_id"`
}

// CatalogSubscription is a live feed of catalog changes.
type CatalogSubscription interface {
	// Events is closed once the subscription is cancelled.
	Events() <-chan CatalogEvent
	// Cancel stops delivery. It is safe to call more than once.
	Cancel()
}

// CatalogWatcher subscribes to committed menu catalog changes. Cancelling ctx
// cancels the subscription.
type CatalogWatcher interface {
	Watch(ctx context.Context) (CatalogSubscription, error)
}
