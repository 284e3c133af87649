package repository

import (
	"context"
	"errors"

	"cafe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAnnouncementNotFound is returned when an announcement is not found.
var ErrAnnouncementNotFound = errors.New("announcement not found")

// AnnouncementRepository stores staff announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *entity.Announcement) error
	// List returns the newest announcements first.
	List(ctx context.Context, limit int) ([]*entity.Announcement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
