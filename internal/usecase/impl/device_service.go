package impl

import (
	"context"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/errors"
	"cafe/internal/usecase"

	"github.com/google/uuid"
)

const maxDeviceLabelLength = 60

var validPlatforms = []string{"ios", "android", "web"}

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.AlertDevice, error) {
	fields := make(map[string]string)
	if strings.TrimSpace(deviceInfo.FCMToken) == "" {
		fields["fcm_token"] = "token is required"
	}
	installationID := strings.TrimSpace(deviceInfo.InstallationID)
	if installationID == "" {
		fields["installation_id"] = "installation id is required"
	}
	platform := strings.ToLower(deviceInfo.Platform)
	if !slices.Contains(validPlatforms, platform) {
		fields["platform"] = "platform must be ios, android or web"
	}
	label := strings.TrimSpace(deviceInfo.Label)
	if utf8.RuneCountInString(label) > maxDeviceLabelLength {
		fields["label"] = "label is too long"
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewFieldError(fields)
	}

	existing, err := s.deviceRepo.FindDeviceByInstallation(ctx, userID, installationID)
	switch {
	case err == nil:
		if err := s.deviceRepo.UpdateRegistration(ctx, existing.ID, deviceInfo.FCMToken, platform); err != nil {
			return nil, errors.Wrap(err, "failed to update device registration")
		}

		updated, err := s.deviceRepo.FindDeviceByID(ctx, existing.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find device by ID")
		}

		return updated, nil
	case !errors.Is(err, repository.ErrDeviceNotFound):
		return nil, errors.Wrap(err, "failed to find device by installation")
	}

	now := time.Now()
	device := &entity.AlertDevice{
		ID:             uuid.New(),
		UserID:         userID,
		Label:          label,
		FCMToken:       deviceInfo.FCMToken,
		InstallationID: installationID,
		Platform:       platform,
		Muted:          []entity.AlertKind{},
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	return device, nil
}

// ownedDevice loads a device and checks that userID owns it. Devices of other
// staff members are reported as missing.
func (s *deviceService) ownedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.AlertDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, deviceID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if device.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, deviceID.String())
	}

	return device, nil
}

func (s *deviceService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	if strings.TrimSpace(fcmToken) == "" {
		return domainerrors.NewFieldError(map[string]string{"fcm_token": "token is required"})
	}

	device, err := s.ownedDevice(ctx, userID, deviceID)
	if err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateRegistration(ctx, deviceID, fcmToken, device.Platform); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

func (s *deviceService) UpdatePreferences(ctx context.Context, userID, deviceID uuid.UUID, prefs *usecase.AlertPreferences) (*entity.AlertDevice, error) {
	label := strings.TrimSpace(prefs.Label)
	if utf8.RuneCountInString(label) > maxDeviceLabelLength {
		return nil, domainerrors.NewFieldError(map[string]string{"label": "label is too long"})
	}

	muted := make([]entity.AlertKind, 0, len(prefs.Muted))
	for _, kind := range prefs.Muted {
		if !kind.IsValid() {
			return nil, domainerrors.NewFieldError(map[string]string{"muted": "unknown alert kind " + string(kind)})
		}
		if !slices.Contains(muted, kind) {
			muted = append(muted, kind)
		}
	}

	device, err := s.ownedDevice(ctx, userID, deviceID)
	if err != nil {
		return nil, err
	}

	if err := s.deviceRepo.UpdatePreferences(ctx, deviceID, label, muted); err != nil {
		return nil, errors.Wrap(err, "failed to update device preferences")
	}

	device.Label = label
	device.Muted = muted

	return device, nil
}

func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.AlertDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	active := make([]*entity.AlertDevice, 0, len(devices))
	for _, device := range devices {
		if device.IsActive {
			active = append(active, device)
		}
	}

	return active, nil
}

// DeactivateDevice soft deletes one of the caller's devices.
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}
