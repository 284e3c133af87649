package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CartLineView is a cart line priced against the current catalog.
type CartLineView struct {
	ItemID    uuid.UUID `json:"item_id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	Amount    int64     `json:"amount"`
	Stock     int       `json:"stock"`
}

// CartView is the priced content of a staff cart.
type CartView struct {
	Lines []CartLineView `json:"lines"`
	Total int64          `json:"total"`
	// Missing lists items that left the catalog since they were added.
	Missing []uuid.UUID `json:"missing,omitempty"`
}

// CartUsecase manages the point-of-sale cart of each staff member.
type CartUsecase interface {
	GetCart(ctx context.Context, staffID uuid.UUID) (*CartView, error)
	AddItem(ctx context.Context, staffID, itemID uuid.UUID) (*CartView, error)
	RemoveItem(ctx context.Context, staffID, itemID uuid.UUID) (*CartView, error)
	SetQuantity(ctx context.Context, staffID, itemID uuid.UUID, quantity int) (*CartView, error)
	ClearCart(ctx context.Context, staffID uuid.UUID) error

	// Checkout records the cart as one sale. The cart is cleared only when
	// the sale commits.
	Checkout(ctx context.Context, staffID uuid.UUID) (*Receipt, error)
}
