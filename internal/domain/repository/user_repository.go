package repository

import (
	"context"
	"errors"

	"cafe/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the email is already registered.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the standard operations for staff account persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error)

	// List returns every staff account ordered by display name.
	List(ctx context.Context) ([]*entity.UserProfile, error)

	// ListByRole returns the accounts holding role.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.UserProfile, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.UserProfile) error

	// UpdateRole changes the role of a user.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// Delete removes a user with its credentials and sessions.
	Delete(ctx context.Context, id uuid.UUID) error
}
