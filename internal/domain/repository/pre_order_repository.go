package repository

import (
	"context"
	"errors"

	"cafe/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for pre-order persistence.
var (
	// ErrPreOrderNotFound is returned when a pre-order is not found.
	ErrPreOrderNotFound = errors.New("pre-order not found")
	// ErrPreOrderStatusChanged is returned when the stored status no longer matches the expected one.
	ErrPreOrderStatusChanged = errors.New("pre-order status changed concurrently")
)

// PreOrderRepository defines the persistence operations of pre-orders.
type PreOrderRepository interface {
	// Create persists a new pre-order.
	Create(ctx context.Context, order *entity.PreOrder) error

	// FindByID retrieves a single pre-order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PreOrder, error)

	// List returns pre-orders newest first, optionally filtered by status.
	List(ctx context.Context, status *entity.PreOrderStatus) ([]*entity.PreOrder, error)

	// UpdateStatus moves an order from one status to another. It fails with
	// ErrPreOrderStatusChanged when the order is no longer in from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.PreOrderStatus) error
}
