package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/domain/service"
	"cafe/internal/errors"
	"cafe/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultAnnouncementLimit = 20
	maxAnnouncementLimit     = 100
)

// announcementService implements the AnnouncementUsecase interface.
type announcementService struct {
	announcementRepo repository.AnnouncementRepository
	drafter          service.AnnouncementDrafter
	logger           *slog.Logger
}

// AnnouncementServiceParams holds dependencies for AnnouncementService, injected by Fx.
type AnnouncementServiceParams struct {
	fx.In

	AnnouncementRepo repository.AnnouncementRepository
	Drafter          service.AnnouncementDrafter
	Logger           *slog.Logger
}

// NewAnnouncementService is the constructor for announcementService.
func NewAnnouncementService(params AnnouncementServiceParams) usecase.AnnouncementUsecase {
	return &announcementService{
		announcementRepo: params.AnnouncementRepo,
		drafter:          params.Drafter,
		logger:           params.Logger,
	}
}

func (srv *announcementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *announcementService) ListAnnouncements(ctx context.Context, limit int) ([]*entity.Announcement, error) {
	if limit <= 0 {
		limit = defaultAnnouncementLimit
	}

	announcements, err := srv.announcementRepo.List(ctx, min(limit, maxAnnouncementLimit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list announcements")
	}

	return announcements, nil
}

func (srv *announcementService) CreateAnnouncement(ctx context.Context, title, content string) (*entity.Announcement, error) {
	fields := make(map[string]string)
	if strings.TrimSpace(title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(content) == "" {
		fields["content"] = "content is required"
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewFieldError(fields)
	}

	announcement := &entity.Announcement{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(title),
		Content:   strings.TrimSpace(content),
		CreatedAt: time.Now(),
	}
	if err := srv.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, errors.Wrap(err, "failed to create announcement")
	}

	srv.log(ctx).Info("Announcement posted", slog.Any("announcementID", announcement.ID))

	return announcement, nil
}

func (srv *announcementService) DeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	err := srv.announcementRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrAnnouncementNotFound) {
		return errors.Wrap(domainerrors.ErrAnnouncementNotFound, id.String())
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete announcement")
	}

	return nil
}

func (srv *announcementService) DraftAnnouncement(ctx context.Context, topic string) (*service.AnnouncementDraft, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, domainerrors.NewFieldError(map[string]string{"topic": "topic is required"})
	}

	draft, err := srv.drafter.Draft(ctx, topic)
	if err != nil {
		srv.log(ctx).Warn("Failed to draft announcement", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrDraftFailed, err.Error())
	}

	return draft, nil
}
