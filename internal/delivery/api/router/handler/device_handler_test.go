package handler

import (
	"net/http"
	"strings"
	"testing"

	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	mockUC "cafe/internal/mocks/usecase"
	"cafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDeviceHandler(t *testing.T) (*DeviceHandler, *mockUC.MockDeviceUsecase) {
	deviceUC := mockUC.NewMockDeviceUsecase(t)

	return NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: newDiscardLogger()}), deviceUC
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)
	userID := uuid.New()
	deviceUC.EXPECT().
		RegisterDevice(mock.Anything, userID, &usecase.DeviceInfo{
			Label:          "Counter tablet",
			FCMToken:       "fcm-1",
			InstallationID: "install-1",
			Platform:       "android",
		}).
		Return(&entity.AlertDevice{ID: uuid.New(), UserID: userID, Label: "Counter tablet", IsActive: true}, nil)

	rec := invoke(t, h.RegisterDevice, request{
		method: http.MethodPost,
		target: "/api/v1/devices",
		body:   strings.NewReader(`{"label":"Counter tablet","fcm_token":"fcm-1","installation_id":"install-1","platform":"android"}`),
		user:   &userID,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Counter tablet", decodeData[entity.AlertDevice](t, rec).Label)
}

func TestDeviceHandler_RegisterDevice_MissingInstallation(t *testing.T) {
	h, _ := newTestDeviceHandler(t)
	userID := uuid.New()

	rec := invoke(t, h.RegisterDevice, request{
		method: http.MethodPost,
		target: "/api/v1/devices",
		body:   strings.NewReader(`{"fcm_token":"fcm-1","platform":"ios"}`),
		user:   &userID,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, fieldDetails(t, rec), "installation_id")
}

func TestDeviceHandler_UpdateAlertPreferences(t *testing.T) {
	t.Run("mutes kinds", func(t *testing.T) {
		h, deviceUC := newTestDeviceHandler(t)
		userID, deviceID := uuid.New(), uuid.New()
		muted := []entity.AlertKind{entity.AlertPreOrderSubmitted}
		deviceUC.EXPECT().
			UpdatePreferences(mock.Anything, userID, deviceID, &usecase.AlertPreferences{Label: "Bar phone", Muted: muted}).
			Return(&entity.AlertDevice{ID: deviceID, UserID: userID, Label: "Bar phone", Muted: muted, IsActive: true}, nil)

		rec := invoke(t, h.UpdateAlertPreferences, request{
			method: http.MethodPut,
			target: "/api/v1/devices/" + deviceID.String() + "/alerts",
			body:   strings.NewReader(`{"label":"Bar phone","muted":["pre_order_submitted"]}`),
			user:   &userID,
			params: map[string]string{"id": deviceID.String()},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, muted, decodeData[entity.AlertDevice](t, rec).Muted)
	})

	t.Run("unknown kind", func(t *testing.T) {
		h, _ := newTestDeviceHandler(t)
		userID, deviceID := uuid.New(), uuid.New()

		rec := invoke(t, h.UpdateAlertPreferences, request{
			method: http.MethodPut,
			target: "/api/v1/devices/" + deviceID.String() + "/alerts",
			body:   strings.NewReader(`{"muted":["coffee_ready"]}`),
			user:   &userID,
			params: map[string]string{"id": deviceID.String()},
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("device of another staff member", func(t *testing.T) {
		h, deviceUC := newTestDeviceHandler(t)
		userID, deviceID := uuid.New(), uuid.New()
		deviceUC.EXPECT().
			UpdatePreferences(mock.Anything, userID, deviceID, mock.Anything).
			Return(nil, domainerrors.ErrDeviceNotFound)

		rec := invoke(t, h.UpdateAlertPreferences, request{
			method: http.MethodPut,
			target: "/api/v1/devices/" + deviceID.String() + "/alerts",
			body:   strings.NewReader(`{"muted":[]}`),
			user:   &userID,
			params: map[string]string{"id": deviceID.String()},
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
