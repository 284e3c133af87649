package repository

import (
	"context"

	"cafe/internal/domain/cart"

	"github.com/google/uuid"
)

// CartRepository keeps the point-of-sale cart of each staff member between
// requests. Carts are ephemeral and may expire when idle.
type CartRepository interface {
	// Get returns a copy of the staff member's cart, empty when none exists.
	Get(ctx context.Context, staffID uuid.UUID) (*cart.Cart, error)

	// Update applies fn to the stored cart under a per-staff lock and returns
	// a copy of the result. When fn fails the stored cart is left unchanged.
	Update(ctx context.Context, staffID uuid.UUID, fn func(c *cart.Cart) error) (*cart.Cart, error)
}
