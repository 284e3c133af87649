package entity

import (
	"time"

	"github.com/google/uuid"
)

// PreOrderStatus is the fulfilment state of a pre-order.
type PreOrderStatus string

const (
	PreOrderStatusPending   PreOrderStatus = "Pending"
	PreOrderStatusReady     PreOrderStatus = "Ready"
	PreOrderStatusCompleted PreOrderStatus = "Completed"
)

// IsValid checks if the status is known.
func (s PreOrderStatus) IsValid() bool {
	switch s {
	case PreOrderStatusPending, PreOrderStatusReady, PreOrderStatusCompleted:
		return true
	default:
		return false
	}
}

// Next returns the only status reachable from s. Completed is terminal.
func (s PreOrderStatus) Next() (PreOrderStatus, bool) {
	switch s {
	case PreOrderStatusPending:
		return PreOrderStatusReady, true
	case PreOrderStatusReady:
		return PreOrderStatusCompleted, true
	default:
		return "", false
	}
}

// CanTransitionTo reports whether target is the next status after s.
func (s PreOrderStatus) CanTransitionTo(target PreOrderStatus) bool {
	next, ok := s.Next()

	return ok && next == target
}

// PreOrder is a student order placed ahead of pickup.
type PreOrder struct {
	ID              uuid.UUID         `json:"id"`
	StudentName     string            `json:"student_name"`
	StudentClass    string            `json:"student_class"`
	Items           map[uuid.UUID]int `json:"items"` // Item ID to quantity.
	PaymentProofURL string            `json:"payment_proof_url"`
	PaymentProofKey string            `json:"-"`     // Blob key, kept for cleanup.
	Total           int64             `json:"total"` // Computed from prices at submission.
	Status          PreOrderStatus    `json:"status"`
	PickupDate      time.Time         `json:"pickup_date"`
	OrderedAt       time.Time         `json:"ordered_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
