package postgres

import (
	"context"

	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/errors"
	"cafe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.AlertDevice) error {
	deviceM := fromAlertDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid device registration")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.AlertDevice, error) {
	return repo.findOne(ctx, "failed to find device by ID", "id = ?", id)
}

func (repo *deviceRepository) FindDeviceByInstallation(ctx context.Context, userID uuid.UUID, installationID string) (*entity.AlertDevice, error) {
	return repo.findOne(ctx, "failed to find device by installation",
		"user_id = ? AND installation_id = ?", userID, installationID)
}

func (repo *deviceRepository) findOne(ctx context.Context, msg string, query string, args ...any) (*entity.AlertDevice, error) {
	var deviceM model.AlertDeviceModel

	if err := repo.db.WithContext(ctx).Where(query, args...).First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toAlertDeviceDomain(&deviceM), nil
}

func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AlertDevice, error) {
	var deviceModels []*model.AlertDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	return toAlertDevices(deviceModels), nil
}

// FindAlertRecipients filters on the muted JSONB array so devices that opted
// out of kind never leave the database.
func (repo *deviceRepository) FindAlertRecipients(ctx context.Context, userIDs []uuid.UUID, kind entity.AlertKind) ([]*entity.AlertDevice, error) {
	if len(userIDs) == 0 {
		return []*entity.AlertDevice{}, nil
	}

	var deviceModels []*model.AlertDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ? AND is_active", userIDs).
		Where("NOT (muted @> jsonb_build_array(CAST(? AS text)))", string(kind)).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alert recipients")
	}

	return toAlertDevices(deviceModels), nil
}

func (repo *deviceRepository) UpdateRegistration(ctx context.Context, deviceID uuid.UUID, fcmToken, platform string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertDeviceModel{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{
			"fcm_token": fcmToken,
			"platform":  platform,
			"is_active": true,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid device registration")
		}

		return errors.Wrap(result.Error, "failed to update device registration")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *deviceRepository) UpdatePreferences(ctx context.Context, deviceID uuid.UUID, label string, muted []entity.AlertKind) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertDeviceModel{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{
			"label": label,
			"muted": mutedToModel(muted),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device preferences")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AlertDeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func mutedToModel(muted []entity.AlertKind) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(muted))
	for _, kind := range muted {
		out = append(out, string(kind))
	}

	return out
}

func toAlertDevices(deviceModels []*model.AlertDeviceModel) []*entity.AlertDevice {
	devices := make([]*entity.AlertDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toAlertDeviceDomain(deviceM))
	}

	return devices
}

func toAlertDeviceDomain(data *model.AlertDeviceModel) *entity.AlertDevice {
	if data == nil {
		return nil
	}

	muted := make([]entity.AlertKind, 0, len(data.Muted))
	for _, kind := range data.Muted {
		muted = append(muted, entity.AlertKind(kind))
	}

	return &entity.AlertDevice{
		ID:             data.ID,
		UserID:         data.UserID,
		Label:          data.Label,
		FCMToken:       data.FCMToken,
		InstallationID: data.InstallationID,
		Platform:       data.Platform,
		Muted:          muted,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromAlertDeviceDomain(data *entity.AlertDevice) *model.AlertDeviceModel {
	if data == nil {
		return nil
	}

	return &model.AlertDeviceModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Label:          data.Label,
		FCMToken:       data.FCMToken,
		InstallationID: data.InstallationID,
		Platform:       data.Platform,
		Muted:          mutedToModel(data.Muted),
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
