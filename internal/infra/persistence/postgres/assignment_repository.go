package postgres

import (
	"context"

	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/errors"
	"cafe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// assignmentRepository implements the repository.AssignmentRepository interface.
type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository is the constructor for assignmentRepository.
func NewAssignmentRepository(db *gorm.DB) repository.AssignmentRepository {
	return &assignmentRepository{
		db: db,
	}
}

// ReplaceForUser deletes the current set and inserts the new one. Callers run
// it inside TransactionManager.Execute so readers never see a partial set.
func (repo *assignmentRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("user_id = ?", userID).Delete(&model.AssignmentModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear assignments")
	}

	if len(itemIDs) == 0 {
		return nil
	}

	rows := make([]*model.AssignmentModel, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		rows = append(rows, &model.AssignmentModel{UserID: userID, ItemID: itemID})
	}

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMenuItemNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert assignments")
	}

	return nil
}

// FindItemIDsByUser returns the items assigned to a volunteer.
func (repo *assignmentRepository) FindItemIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var itemIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.AssignmentModel{}).
		Where("user_id = ?", userID).
		Order("item_id").
		Pluck("item_id", &itemIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find assignments")
	}

	return itemIDs, nil
}

// IsAssigned reports whether itemID is assigned to userID.
func (repo *assignmentRepository) IsAssigned(ctx context.Context, userID, itemID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AssignmentModel{}).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check assignment")
	}

	return count > 0, nil
}
