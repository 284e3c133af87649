package entity

import (
	"time"

	"github.com/google/uuid"
)

// SaleRecord is one checkout line. Records are append-only.
type SaleRecord struct {
	ID        uuid.UUID `json:"id"`
	ItemID    uuid.UUID `json:"item_id"`
	ItemName  string    `json:"item_name"` // Denormalized at sale time.
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unit_price"` // Price at sale time.
	StaffID   uuid.UUID `json:"staff_id"`   // The staff member who recorded the sale.
	CreatedAt time.Time `json:"created_at"` // Assigned by the database.
}

// Amount is the line total.
func (s *SaleRecord) Amount() int64 {
	return s.UnitPrice * int64(s.Quantity)
}

// SaleLine is a requested (item, quantity) pair before it is committed.
type SaleLine struct {
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}
