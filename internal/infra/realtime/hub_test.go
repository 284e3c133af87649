package realtime

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cafe/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHub_DeliversInOrder(t *testing.T) {
	hub := newTestHub()
	sub, err := hub.Watch(context.Background())
	require.NoError(t, err)
	defer sub.Cancel()

	first, second := uuid.New(), uuid.New()
	hub.Publish(service.CatalogEvent{Kind: service.CatalogEventUpsert, ItemID: first})
	hub.Publish(service.CatalogEvent{Kind: service.CatalogEventDelete, ItemID: second})

	assert.Equal(t, service.CatalogEvent{Kind: service.CatalogEventUpsert, ItemID: first}, <-sub.Events())
	assert.Equal(t, service.CatalogEvent{Kind: service.CatalogEventDelete, ItemID: second}, <-sub.Events())
}

func TestHub_CancelClosesEvents(t *testing.T) {
	hub := newTestHub()
	sub, err := hub.Watch(context.Background())
	require.NoError(t, err)

	sub.Cancel()
	sub.Cancel() // safe twice

	_, open := <-sub.Events()
	assert.False(t, open)
	assert.Equal(t, 0, hub.Subscribers())

	// Publishing after cancel must not panic.
	hub.Publish(service.CatalogEvent{Kind: service.CatalogEventUpsert, ItemID: uuid.New()})
}

func TestHub_ContextCancelEndsSubscription(t *testing.T) {
	hub := newTestHub()
	ctx, cancel := context.WithCancel(context.Background())

	sub, err := hub.Watch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, hub.Subscribers())

	cancel()

	assert.Eventually(t, func() bool { return hub.Subscribers() == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-sub.Events()
	assert.False(t, open)
}

func TestHub_WatchWithDoneContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestHub().Watch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHub_LaggingSubscriberGetsResync(t *testing.T) {
	hub := newTestHub()
	hub.buffer = 2

	slow, err := hub.Watch(context.Background())
	require.NoError(t, err)
	defer slow.Cancel()

	for range 4 {
		hub.Publish(service.CatalogEvent{Kind: service.CatalogEventUpsert, ItemID: uuid.New()})
	}

	// Two buffered events, the rest dropped.
	<-slow.Events()
	<-slow.Events()

	last := uuid.New()
	hub.Publish(service.CatalogEvent{Kind: service.CatalogEventUpsert, ItemID: last})

	assert.Equal(t, service.CatalogEventResync, (<-slow.Events()).Kind)
	assert.Equal(t, last, (<-slow.Events()).ItemID)
}

func TestHub_SlowSubscriberDoesNotBlockOthers(t *testing.T) {
	hub := newTestHub()
	hub.buffer = 1

	slow, err := hub.Watch(context.Background())
	require.NoError(t, err)
	defer slow.Cancel()
	fast, err := hub.Watch(context.Background())
	require.NoError(t, err)
	defer fast.Cancel()

	for range 3 {
		hub.Publish(service.CatalogEvent{Kind: service.CatalogEventUpsert, ItemID: uuid.New()})
		<-fast.Events()
	}
}
