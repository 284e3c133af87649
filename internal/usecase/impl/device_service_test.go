package impl

import (
	"context"
	"strings"
	"testing"

	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	mockRepo "cafe/internal/mocks/repository"
	"cafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return deviceServiceFixtures{
		service:    NewDeviceService(deviceRepo),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewInstallation(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	info := &usecase.DeviceInfo{
		Label:          " Counter tablet ",
		FCMToken:       "fcm-token",
		InstallationID: "install-1",
		Platform:       "Android",
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByInstallation(ctx, userID, "install-1").
		Return(nil, repository.ErrDeviceNotFound)
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.AlertDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, info)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "Counter tablet", device.Label)
	assert.Equal(t, "android", device.Platform)
	assert.Equal(t, "install-1", device.InstallationID)
	assert.Empty(t, device.Muted)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_KnownInstallationRefreshesToken(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.AlertDevice{
		ID:             uuid.New(),
		UserID:         userID,
		FCMToken:       "old-token",
		InstallationID: "install-1",
		Platform:       "ios",
		Muted:          []entity.AlertKind{entity.AlertLowStock},
	}
	refreshed := *existing
	refreshed.FCMToken = "new-token"
	refreshed.IsActive = true

	fx.deviceRepo.EXPECT().
		FindDeviceByInstallation(ctx, userID, "install-1").
		Return(existing, nil)
	fx.deviceRepo.EXPECT().
		UpdateRegistration(ctx, existing.ID, "new-token", "ios").
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, existing.ID).
		Return(&refreshed, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken:       "new-token",
		InstallationID: "install-1",
		Platform:       "ios",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-token", device.FCMToken)
	assert.True(t, device.IsActive)
	assert.Equal(t, []entity.AlertKind{entity.AlertLowStock}, device.Muted)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	tests := []struct {
		name  string
		info  usecase.DeviceInfo
		field string
	}{
		{
			name:  "missing token",
			info:  usecase.DeviceInfo{InstallationID: "i", Platform: "ios"},
			field: "fcm_token",
		},
		{
			name:  "missing installation",
			info:  usecase.DeviceInfo{FCMToken: "t", Platform: "ios"},
			field: "installation_id",
		},
		{
			name:  "unknown platform",
			info:  usecase.DeviceInfo{FCMToken: "t", InstallationID: "i", Platform: "symbian"},
			field: "platform",
		},
		{
			name:  "label too long",
			info:  usecase.DeviceInfo{FCMToken: "t", InstallationID: "i", Platform: "web", Label: strings.Repeat("x", 61)},
			field: "label",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)

			_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &tt.info)

			var fieldErr *domainerrors.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Contains(t, fieldErr.Fields(), tt.field)
		})
	}
}

func TestDeviceService_RegisterDevice_LookupFails(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByInstallation(ctx, userID, "install-1").
		Return(nil, errors.New("connection reset"))

	_, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken:       "t",
		InstallationID: "install-1",
		Platform:       "ios",
	})
	assert.ErrorContains(t, err, "connection reset")
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := &entity.AlertDevice{ID: uuid.New(), UserID: userID, Platform: "web"}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.deviceRepo.EXPECT().UpdateRegistration(ctx, device.ID, "rotated", "web").Return(nil)

	require.NoError(t, fx.service.UpdateFCMToken(ctx, userID, device.ID, "rotated"))
}

func TestDeviceService_UpdateFCMToken_OtherStaffDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	device := &entity.AlertDevice{ID: uuid.New(), UserID: uuid.New()}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	err := fx.service.UpdateFCMToken(ctx, uuid.New(), device.ID, "rotated")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_UpdatePreferences(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := &entity.AlertDevice{ID: uuid.New(), UserID: userID, IsActive: true}
	muted := []entity.AlertKind{entity.AlertPreOrderSubmitted}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.deviceRepo.EXPECT().UpdatePreferences(ctx, device.ID, "Bar phone", muted).Return(nil)

	updated, err := fx.service.UpdatePreferences(ctx, userID, device.ID, &usecase.AlertPreferences{
		Label: "Bar phone",
		Muted: []entity.AlertKind{entity.AlertPreOrderSubmitted, entity.AlertPreOrderSubmitted},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bar phone", updated.Label)
	assert.Equal(t, muted, updated.Muted)
	assert.True(t, updated.Wants(entity.AlertLowStock))
	assert.False(t, updated.Wants(entity.AlertPreOrderSubmitted))
}

func TestDeviceService_UpdatePreferences_UnknownKind(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.UpdatePreferences(context.Background(), uuid.New(), uuid.New(), &usecase.AlertPreferences{
		Muted: []entity.AlertKind{"coffee_ready"},
	})

	var fieldErr *domainerrors.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Contains(t, fieldErr.Fields(), "muted")
}

func TestDeviceService_GetUserDevices_SkipsInactive(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	active := &entity.AlertDevice{ID: uuid.New(), UserID: userID, IsActive: true}
	inactive := &entity.AlertDevice{ID: uuid.New(), UserID: userID}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.AlertDevice{active, inactive}, nil)

	devices, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []*entity.AlertDevice{active}, devices)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := &entity.AlertDevice{ID: uuid.New(), UserID: userID}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, device.ID).Return(nil)

	require.NoError(t, fx.service.DeactivateDevice(ctx, userID, device.ID))
}

func TestDeviceService_DeactivateDevice_Missing(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.DeactivateDevice(ctx, uuid.New(), deviceID)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}
