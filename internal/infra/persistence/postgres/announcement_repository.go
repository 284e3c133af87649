package postgres

import (
	"context"

	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/errors"
	"cafe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository is the constructor for announcementRepository.
func NewAnnouncementRepository(db *gorm.DB) repository.AnnouncementRepository {
	return &announcementRepository{
		db: db,
	}
}

func (repo *announcementRepository) Create(ctx context.Context, announcement *entity.Announcement) error {
	announcementM := &model.AnnouncementModel{
		ID:      announcement.ID,
		Title:   announcement.Title,
		Content: announcement.Content,
	}

	if err := repo.db.WithContext(ctx).Create(announcementM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create announcement")
	}

	announcement.ID = announcementM.ID
	announcement.CreatedAt = announcementM.CreatedAt

	return nil
}

func (repo *announcementRepository) List(ctx context.Context, limit int) ([]*entity.Announcement, error) {
	var announcementModels []*model.AnnouncementModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&announcementModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list announcements")
	}

	announcements := make([]*entity.Announcement, 0, len(announcementModels))
	for _, announcementM := range announcementModels {
		announcements = append(announcements, &entity.Announcement{
			ID:        announcementM.ID,
			Title:     announcementM.Title,
			Content:   announcementM.Content,
			CreatedAt: announcementM.CreatedAt,
		})
	}

	return announcements, nil
}

func (repo *announcementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AnnouncementModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete announcement")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAnnouncementNotFound
	}

	return nil
}
