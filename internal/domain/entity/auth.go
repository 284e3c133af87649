package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies how a credential is verified.
type ProviderType string

const (
	// ProviderTypeEmail is a locally stored email/password credential.
	ProviderTypeEmail ProviderType = "email"
	// ProviderTypeFirebase is a Firebase Authentication identity.
	ProviderTypeFirebase ProviderType = "firebase"
)

// Authentication is one way a staff member signs in. A user may hold both an
// email credential and a linked Firebase identity.
type Authentication struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Provider ProviderType
	// ProviderUserID is the normalised email for local credentials and the
	// Firebase UID otherwise.
	ProviderUserID string
	PasswordHash   string // email provider only
	CreatedAt      time.Time
	// LastUsedAt is nil until the first successful sign-in.
	LastUsedAt *time.Time
}

// RefreshToken represents a long-lived, authorized staff session.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the user it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // The exact time when this refresh token will expire and become invalid.
	CreatedAt time.Time // Timestamp of when this session was created.
}
