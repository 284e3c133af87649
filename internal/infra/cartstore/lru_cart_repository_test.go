package cartstore

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"cafe/config"
	"cafe/internal/domain/cart"
	"cafe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(ttl time.Duration) *lruCartRepository {
	return newSizedRepo(8, ttl, io.Discard)
}

func newSizedRepo(capacity int, ttl time.Duration, logs io.Writer) *lruCartRepository {
	cfg := &config.Config{Cart: &config.CartConfig{Capacity: capacity, IdleTTL: ttl}}

	return NewCartRepository(cfg, slog.New(slog.NewTextHandler(logs, nil))).(*lruCartRepository)
}

func oneLine(c *cart.Cart) error {
	*c = *cart.FromLines([]cart.Line{{ItemID: uuid.New(), Quantity: 1}})

	return nil
}

func TestLRUCartRepository_UpdateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(time.Hour)
	staffID := uuid.New()
	item := &entity.MenuItem{ID: uuid.New(), Name: "Brownie", Price: 60, Stock: 2, Availability: entity.AvailabilityInStock}
	snapshot := cart.NewSnapshot([]*entity.MenuItem{item})

	empty, err := repo.Get(ctx, staffID)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	updated, err := repo.Update(ctx, staffID, func(c *cart.Cart) error {
		return c.AddLine(item.ID, snapshot)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Quantity(item.ID))

	// Mutating the returned copy must not touch the stored cart.
	updated.Clear()

	stored, err := repo.Get(ctx, staffID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Quantity(item.ID))
}

func TestLRUCartRepository_FailedUpdateKeepsCart(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(time.Hour)
	staffID := uuid.New()
	item := &entity.MenuItem{ID: uuid.New(), Name: "Cookie", Price: 25, Stock: 1, Availability: entity.AvailabilityInStock}
	snapshot := cart.NewSnapshot([]*entity.MenuItem{item})

	_, err := repo.Update(ctx, staffID, func(c *cart.Cart) error { return c.AddLine(item.ID, snapshot) })
	require.NoError(t, err)

	_, err = repo.Update(ctx, staffID, func(c *cart.Cart) error {
		c.Clear()

		return c.AddLine(item.ID, cart.Snapshot{})
	})
	assert.True(t, errors.Is(err, cart.ErrUnknownItem))

	stored, err := repo.Get(ctx, staffID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Quantity(item.ID))
}

func TestLRUCartRepository_EmptyCartIsDropped(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(time.Hour)
	staffID := uuid.New()

	_, err := repo.Update(ctx, staffID, func(c *cart.Cart) error {
		*c = *cart.FromLines([]cart.Line{{ItemID: uuid.New(), Quantity: 2}})

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.carts.Len())

	_, err = repo.Update(ctx, staffID, func(c *cart.Cart) error {
		c.Clear()

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, repo.carts.Len())
}

func TestLRUCartRepository_IdleCartsExpire(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(20 * time.Millisecond)
	staffID := uuid.New()

	_, err := repo.Update(ctx, staffID, func(c *cart.Cart) error {
		*c = *cart.FromLines([]cart.Line{{ItemID: uuid.New(), Quantity: 1}})

		return nil
	})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		c, _ := repo.Get(ctx, staffID)

		return c.IsEmpty()
	}, time.Second, 10*time.Millisecond)
}

func TestLRUCartRepository_StaffDoNotBlockEachOther(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(time.Hour)
	staffA, staffB := uuid.New(), uuid.New()

	entered := make(chan struct{})
	release := make(chan struct{})
	doneA := make(chan error, 1)
	go func() {
		_, err := repo.Update(ctx, staffA, func(c *cart.Cart) error {
			close(entered)
			<-release

			return oneLine(c)
		})
		doneA <- err
	}()
	<-entered

	doneB := make(chan error, 1)
	go func() {
		_, err := repo.Update(ctx, staffB, oneLine)
		doneB <- err
	}()

	select {
	case err := <-doneB:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("update for one staff member waited on another's")
	}

	close(release)
	require.NoError(t, <-doneA)
	assert.Equal(t, 2, repo.carts.Len())
}

func TestLRUCartRepository_SameStaffIsSerialized(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(time.Hour)
	staffID := uuid.New()
	itemID := uuid.New()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, staffID, func(c *cart.Cart) error {
				*c = *cart.FromLines([]cart.Line{{ItemID: itemID, Quantity: c.Quantity(itemID) + 1}})

				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := repo.Get(ctx, staffID)
	require.NoError(t, err)
	assert.Equal(t, 20, stored.Quantity(itemID))
	assert.Empty(t, repo.locks)
}

func TestLRUCartRepository_EvictionIsLogged(t *testing.T) {
	ctx := context.Background()
	var logs bytes.Buffer
	repo := newSizedRepo(1, time.Hour, &logs)
	first, second := uuid.New(), uuid.New()

	_, err := repo.Update(ctx, first, oneLine)
	require.NoError(t, err)
	_, err = repo.Update(ctx, first, func(c *cart.Cart) error {
		c.Clear()

		return nil
	})
	require.NoError(t, err)
	assert.Empty(t, logs.String(), "clearing a cart is not a loss")

	_, err = repo.Update(ctx, first, oneLine)
	require.NoError(t, err)
	_, err = repo.Update(ctx, second, oneLine)
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "Cart dropped from store")
	assert.Contains(t, logs.String(), first.String())
}
