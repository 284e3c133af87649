// Package realtime fans committed catalog changes out to in-process subscribers.
package realtime

import (
	"context"
	"log/slog"
	"sync"

	"cafe/internal/domain/service"
)

const defaultBufferSize = 32

// Hub implements service.CatalogWatcher. A subscriber that falls behind loses
// events and receives a single resync marker once it has room again.
type Hub struct {
	mu     sync.Mutex
	subs   map[*subscription]struct{}
	buffer int
	logger *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subs:   make(map[*subscription]struct{}),
		buffer: defaultBufferSize,
		logger: logger,
	}
}

// Watch registers a subscriber. The subscription ends when ctx is done or
// Cancel is called.
func (h *Hub) Watch(ctx context.Context) (service.CatalogSubscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sub := &subscription{
		hub:    h,
		events: make(chan service.CatalogEvent, h.buffer),
		done:   make(chan struct{}),
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			sub.Cancel()
		case <-sub.done:
		}
	}()

	return sub, nil
}

// Publish delivers event to every subscriber without blocking.
func (h *Hub) Publish(event service.CatalogEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs {
		if sub.lagging {
			if !sub.offer(service.CatalogEvent{Kind: service.CatalogEventResync}) {
				continue
			}
			sub.lagging = false
		}

		if !sub.offer(event) {
			sub.lagging = true
			h.logger.Debug("Catalog subscriber lagging, dropping event",
				slog.String("item_id", event.ItemID.String()),
			)
		}
	}
}

// Resync tells every subscriber to re-read the catalog, e.g. after the
// change feed reconnects and notifications may have been missed.
func (h *Hub) Resync() {
	h.Publish(service.CatalogEvent{Kind: service.CatalogEventResync})
}

// Subscribers returns the number of live subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs)
}

func (h *Hub) remove(sub *subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[sub]; ok {
		delete(h.subs, sub)
		close(sub.events)
	}
}

type subscription struct {
	hub     *Hub
	events  chan service.CatalogEvent
	done    chan struct{}
	once    sync.Once
	lagging bool // guarded by hub.mu
}

func (s *subscription) Events() <-chan service.CatalogEvent {
	return s.events
}

func (s *subscription) Cancel() {
	s.once.Do(func() {
		close(s.done)
		s.hub.remove(s)
	})
}

// offer must be called with hub.mu held.
func (s *subscription) offer(event service.CatalogEvent) bool {
	select {
	case s.events <- event:
		return true
	default:
		return false
	}
}
