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

type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{
		db: db,
	}
}

func (repo *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	authM := fromAuthenticationDomain(auth)

	err := repo.db.WithContext(ctx).Create(authM).Error
	switch {
	case err == nil:
	case isUniqueConstraintViolation(err):
		// The same email or Firebase UID is already linked to an account.
		return domainerrors.ErrUserAlreadyExists.WrapMessage("credential already linked")
	case isForeignKeyConstraintViolation(err), isNotNullConstraintViolation(err):
		return domainerrors.ErrUserCreationFailed.WrapMessage("credential does not reference a valid user")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to create authentication")
	}

	auth.ID = authM.ID
	auth.CreatedAt = authM.CreatedAt

	return nil
}

func (repo *authRepository) FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error) {
	var authM model.AuthenticationModel

	err := repo.db.WithContext(ctx).
		Where(&model.AuthenticationModel{Provider: string(provider), ProviderUserID: providerUserID}).
		Take(&authM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrAuthNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find %s credential", provider)
	}

	return toAuthenticationDomain(&authM), nil
}

func (repo *authRepository) RecordUse(ctx context.Context, authID uuid.UUID, rehash string) error {
	updates := map[string]any{"last_used_at": gorm.Expr("now()")}
	if rehash != "" {
		updates["password_hash"] = rehash
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AuthenticationModel{}).
		Where("id = ?", authID).
		Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to record credential use")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAuthNotFound
	}

	return nil
}

func toAuthenticationDomain(data *model.AuthenticationModel) *entity.Authentication {
	return &entity.Authentication{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       entity.ProviderType(data.Provider),
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		CreatedAt:      data.CreatedAt,
		LastUsedAt:     data.LastUsedAt,
	}
}

func fromAuthenticationDomain(data *entity.Authentication) *model.AuthenticationModel {
	return &model.AuthenticationModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       string(data.Provider),
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		LastUsedAt:     data.LastUsedAt,
	}
}
