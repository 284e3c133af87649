package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePickupQR generates the PNG pickup code of a pre-order
	GeneratePickupQR(orderID uuid.UUID) ([]byte, error)

	// PickupPayload returns the text encoded in a pickup code
	PickupPayload(orderID uuid.UUID) string

	// ParsePickupQR parses scanned pickup code text and returns the pre-order ID
	ParsePickupQR(qrData string) (uuid.UUID, error)
}
