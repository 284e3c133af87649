package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// AlertKind names an operational event that can reach staff devices.
type AlertKind string

const (
	AlertLowStock          AlertKind = "low_stock"
	AlertRefillRequested   AlertKind = "refill_requested"
	AlertPreOrderSubmitted AlertKind = "pre_order_submitted"
)

// AlertKinds lists every kind, in the order the settings page shows them.
var AlertKinds = []AlertKind{AlertLowStock, AlertRefillRequested, AlertPreOrderSubmitted}

// IsValid reports whether k is a known kind.
func (k AlertKind) IsValid() bool {
	return slices.Contains(AlertKinds, k)
}

// AlertDevice is a staff phone or counter tablet registered for push alerts.
type AlertDevice struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	// Label is shown on the device list, e.g. "Counter tablet".
	Label    string `json:"label"`
	FCMToken string `json:"fcm_token"`
	// InstallationID identifies the app install; re-registering it replaces the token.
	InstallationID string `json:"installation_id"`
	Platform       string `json:"platform"`
	// Muted lists alert kinds the device does not want. Empty means all.
	Muted     []AlertKind `json:"muted"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Wants reports whether the device should receive alerts of kind.
func (d *AlertDevice) Wants(kind AlertKind) bool {
	return d.IsActive && !slices.Contains(d.Muted, kind)
}
