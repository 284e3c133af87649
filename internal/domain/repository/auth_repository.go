// Package repository declares the persistence ports of the domain. Each
// implementation maps storage failures onto the sentinels declared here or
// onto domain errors.
package repository

import (
	"context"

	"cafe/internal/domain/entity"
	"cafe/internal/errors"

	"github.com/google/uuid"
)

var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository stores sign-in credentials.
type AuthRepository interface {
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication looks a credential up by provider and the provider's
	// user key.
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)

	// RecordUse stamps a successful sign-in. A non-empty rehash replaces the
	// stored password hash in the same statement.
	RecordUse(ctx context.Context, authID uuid.UUID, rehash string) error
}
