package usecase

import (
	"context"

	"cafe/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo is what an app install sends when it registers for alerts.
type DeviceInfo struct {
	Label          string `json:"label"`
	FCMToken       string `json:"fcm_token"`
	InstallationID string `json:"installation_id"`
	Platform       string `json:"platform"`
}

// AlertPreferences replaces the label and muted kinds of a device.
type AlertPreferences struct {
	Label string             `json:"label"`
	Muted []entity.AlertKind `json:"muted"`
}

// DeviceUsecase manages the devices that receive staff alerts.
type DeviceUsecase interface {
	// RegisterDevice creates a device, or refreshes the token when the
	// installation is already registered.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.AlertDevice, error)

	UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error

	// UpdatePreferences sets which alert kinds a device receives.
	UpdatePreferences(ctx context.Context, userID, deviceID uuid.UUID, prefs *AlertPreferences) (*entity.AlertDevice, error)

	// GetUserDevices lists the caller's active devices.
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.AlertDevice, error)

	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
