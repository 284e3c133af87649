package repository

import (
	"context"

	"cafe/internal/domain/entity"
	"cafe/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrDeviceNotFound  = errors.New("device not found")
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository stores the devices that receive staff alerts.
type DeviceRepository interface {
	CreateDevice(ctx context.Context, device *entity.AlertDevice) error
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.AlertDevice, error)

	// FindDeviceByInstallation returns the caller's device registered from
	// one app install, if any.
	FindDeviceByInstallation(ctx context.Context, userID uuid.UUID, installationID string) (*entity.AlertDevice, error)

	// FindDevicesByUser lists a staff member's devices, newest first.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AlertDevice, error)

	// FindAlertRecipients returns the active devices of userIDs that have
	// not muted kind.
	FindAlertRecipients(ctx context.Context, userIDs []uuid.UUID, kind entity.AlertKind) ([]*entity.AlertDevice, error)

	// UpdateRegistration replaces the token of a device and reactivates it.
	UpdateRegistration(ctx context.Context, deviceID uuid.UUID, fcmToken, platform string) error

	// UpdatePreferences sets the label and muted kinds of a device.
	UpdatePreferences(ctx context.Context, deviceID uuid.UUID, label string, muted []entity.AlertKind) error

	// DeleteDevice soft deletes a device.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
