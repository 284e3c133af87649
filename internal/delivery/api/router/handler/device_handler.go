package handler

import (
	"log/slog"
	"net/http"

	"cafe/internal/delivery/api/response"
	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/entity"
	"cafe/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler lets staff register the devices that receive alerts.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	Label          string `json:"label" validate:"max=60"`
	FCMToken       string `json:"fcm_token" validate:"required"`
	InstallationID string `json:"installation_id" validate:"required"`
	Platform       string `json:"platform" validate:"required,oneof=ios android web"`
}

// UpdateAlertPreferencesRequest lists the alert kinds a device should skip.
type UpdateAlertPreferencesRequest struct {
	Label string   `json:"label" validate:"max=60"`
	Muted []string `json:"muted" validate:"dive,oneof=low_stock refill_requested pre_order_submitted"`
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// RegisterDevice handles device registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	var req RegisterDeviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &usecase.DeviceInfo{
		Label:          req.Label,
		FCMToken:       req.FCMToken,
		InstallationID: req.InstallationID,
		Platform:       req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetUserDevices lists the caller's active devices
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// UpdateFCMToken handles updating FCM token for a device
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	deviceID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateFCMTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), userID, deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "FCM token updated successfully"})
}

// UpdateAlertPreferences renames a device and sets its muted alert kinds
func (h *DeviceHandler) UpdateAlertPreferences(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	deviceID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateAlertPreferencesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	prefs := &usecase.AlertPreferences{Label: req.Label, Muted: make([]entity.AlertKind, 0, len(req.Muted))}
	for _, kind := range req.Muted {
		prefs.Muted = append(prefs.Muted, entity.AlertKind(kind))
	}

	device, err := h.deviceUC.UpdatePreferences(c.Request().Context(), userID, deviceID, prefs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// DeactivateDevice stops alerts to one of the caller's devices
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	deviceID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device deactivated successfully"})
}
