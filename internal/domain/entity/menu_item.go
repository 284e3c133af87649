package entity

import (
	"time"

	"github.com/google/uuid"
)

// Availability is the storefront label of a menu item.
type Availability string

const (
	// AvailabilityInStock marks an item that can be sold.
	AvailabilityInStock Availability = "In Stock"
	// AvailabilitySoldOut marks an item that cannot be sold.
	AvailabilitySoldOut Availability = "Sold Out"
)

// IsValid checks if the Availability is a known label.
func (a Availability) IsValid() bool {
	return a == AvailabilityInStock || a == AvailabilitySoldOut
}

// AvailabilityForStock derives the label from a stock level.
func AvailabilityForStock(stock int) Availability {
	if stock > 0 {
		return AvailabilityInStock
	}

	return AvailabilitySoldOut
}

// MenuItem is a product in the café catalog.
type MenuItem struct {
	ID             uuid.UUID    `json:"id"`                // The Global Unique Identifier (GUID) for the item.
	Name           string       `json:"name"`              // Display name.
	Description    string       `json:"description"`       // Short description shown on the menu.
	Price          int64        `json:"price"`             // Unit price in whole currency units.
	Stock          int          `json:"stock"`             // Units on hand; never negative.
	Availability   Availability `json:"availability"`      // "In Stock" or "Sold Out".
	ImageRef       string       `json:"image_ref"`         // Public URL or key of the item picture.
	IsPreOrderOnly bool         `json:"is_pre_order_only"` // Listed only on the pre-order menu.
	CreatedAt      time.Time    `json:"created_at"`        // Timestamp of creation.
	UpdatedAt      time.Time    `json:"updated_at"`        // Timestamp of the last modification.
}

// IsSellable reports whether the item can be added to a cart right now.
func (m *MenuItem) IsSellable() bool {
	return m.Availability != AvailabilitySoldOut && m.Stock > 0
}
