package repository

import (
	"context"

	"github.com/google/uuid"
)

// AssignmentRepository tracks which menu items a volunteer sells.
type AssignmentRepository interface {
	// ReplaceForUser swaps the whole assignment set of a volunteer.
	ReplaceForUser(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) error

	// FindItemIDsByUser returns the items assigned to a volunteer.
	FindItemIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// IsAssigned reports whether itemID is assigned to userID.
	IsAssigned(ctx context.Context, userID, itemID uuid.UUID) (bool, error)
}
