// Package cartstore keeps point-of-sale carts in process memory.
package cartstore

import (
	"context"
	"log/slog"
	"sync"

	"cafe/config"
	"cafe/internal/domain/cart"
	"cafe/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// lruCartRepository stores one cart per staff member in a size-bounded LRU
// whose entries expire after the configured idle time. Updates are serialized
// per staff member only.
type lruCartRepository struct {
	carts  *expirable.LRU[uuid.UUID, *cart.Cart]
	logger *slog.Logger

	locksMu sync.Mutex
	locks   map[uuid.UUID]*staffLock
}

// staffLock is dropped from the map once nobody holds or waits for it.
type staffLock struct {
	mu   sync.Mutex
	refs int
}

// NewCartRepository creates the in-memory cart store.
func NewCartRepository(cfg *config.Config, logger *slog.Logger) repository.CartRepository {
	r := &lruCartRepository{
		logger: logger,
		locks:  make(map[uuid.UUID]*staffLock),
	}
	r.carts = expirable.NewLRU[uuid.UUID, *cart.Cart](cfg.Cart.Capacity, r.onEvict, cfg.Cart.IdleTTL)

	return r
}

// onEvict runs under the LRU's own lock for capacity evictions, idle expiry
// and explicit removal, so it must not call back into r.carts.
// Removal always stores an empty cart first, so only carts lost with lines
// in them are reported.
func (r *lruCartRepository) onEvict(staffID uuid.UUID, dropped *cart.Cart) {
	if dropped == nil || dropped.IsEmpty() {
		return
	}

	r.logger.Warn("Cart dropped from store",
		slog.String("staffID", staffID.String()),
		slog.Int("lines", dropped.Len()),
	)
}

func (r *lruCartRepository) lock(staffID uuid.UUID) (unlock func()) {
	r.locksMu.Lock()
	l, ok := r.locks[staffID]
	if !ok {
		l = &staffLock{}
		r.locks[staffID] = l
	}
	l.refs++
	r.locksMu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		r.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(r.locks, staffID)
		}
		r.locksMu.Unlock()
	}
}

func (r *lruCartRepository) Get(_ context.Context, staffID uuid.UUID) (*cart.Cart, error) {
	stored, ok := r.carts.Peek(staffID)
	if !ok {
		return cart.New(), nil
	}

	return stored.Clone(), nil
}

func (r *lruCartRepository) Update(_ context.Context, staffID uuid.UUID, fn func(c *cart.Cart) error) (*cart.Cart, error) {
	unlock := r.lock(staffID)
	defer unlock()

	working := cart.New()
	if stored, ok := r.carts.Get(staffID); ok {
		working = stored.Clone()
	}

	if err := fn(working); err != nil {
		return nil, err
	}

	if working.IsEmpty() {
		r.carts.Add(staffID, working)
		r.carts.Remove(staffID)

		return cart.New(), nil
	}

	r.carts.Add(staffID, working)

	return working.Clone(), nil
}
