package usecase

import (
	"context"

	"cafe/internal/domain/entity"
	"cafe/internal/domain/service"

	"github.com/google/uuid"
)

// AnnouncementUsecase defines staff announcements.
type AnnouncementUsecase interface {
	ListAnnouncements(ctx context.Context, limit int) ([]*entity.Announcement, error)
	CreateAnnouncement(ctx context.Context, title, content string) (*entity.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id uuid.UUID) error
	DraftAnnouncement(ctx context.Context, topic string) (*service.AnnouncementDraft, error)
}
