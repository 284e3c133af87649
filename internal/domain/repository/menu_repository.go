package repository

import (
	"context"
	"errors"

	"cafe/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrMenuItemNotFound is returned when a menu item is not found.
	ErrMenuItemNotFound = errors.New("menu item not found")
	// ErrDuplicateMenuItem is returned when a menu item name is already taken.
	ErrDuplicateMenuItem = errors.New("menu item already exists")
	// ErrInsufficientStock is returned when a conditional decrement finds less stock than requested.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// MenuFilter narrows catalog listings.
type MenuFilter struct {
	// PreOrderOnly selects pre-order items when true, daily items when false, both when nil.
	PreOrderOnly *bool
	// InStockOnly drops sold out items.
	InStockOnly bool
}

// MenuRepository defines the persistence operations of the menu catalog.
// Every write notifies catalog watchers when its transaction commits.
type MenuRepository interface {
	// Create persists a new menu item.
	Create(ctx context.Context, item *entity.MenuItem) error

	// FindByID retrieves a single item.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)

	// FindByIDs retrieves the existing items among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.MenuItem, error)

	// LockByIDs retrieves the items among ids with row locks held until the
	// surrounding transaction ends. Rows are locked in ascending id order.
	LockByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.MenuItem, error)

	// List returns the items matching filter ordered by name.
	List(ctx context.Context, filter MenuFilter) ([]*entity.MenuItem, error)

	// Update replaces the editable fields of an item.
	Update(ctx context.Context, item *entity.MenuItem) error

	// SetStock sets an absolute stock level and derives availability from it.
	SetStock(ctx context.Context, id uuid.UUID, stock int) (*entity.MenuItem, error)

	// DecrementStock subtracts quantity only if at least quantity units remain,
	// returning ErrInsufficientStock otherwise.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (*entity.MenuItem, error)

	// Delete removes an item.
	Delete(ctx context.Context, id uuid.UUID) error
}
