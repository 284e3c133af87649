package handler

import (
	"log/slog"
	"net/http"

	"cafe/internal/delivery/api/response"
	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VolunteerHandlerParams holds dependencies for VolunteerHandler, injected by Fx.
type VolunteerHandlerParams struct {
	fx.In

	VolunteerUC usecase.VolunteerUsecase
	Logger      *slog.Logger
}

// VolunteerHandler serves the volunteer station pages.
type VolunteerHandler struct {
	volunteerUC usecase.VolunteerUsecase
	logger      *slog.Logger
}

// NewVolunteerHandler is the constructor for VolunteerHandler.
func NewVolunteerHandler(params VolunteerHandlerParams) *VolunteerHandler {
	return &VolunteerHandler{volunteerUC: params.VolunteerUC, logger: params.Logger}
}

// LogSaleRequest is the body of POST /api/v1/volunteer/sales.
type LogSaleRequest struct {
	ItemID   string `json:"item_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// RefillRequest is the body of POST /api/v1/volunteer/refill-requests.
type RefillRequest struct {
	ItemID string `json:"item_id" validate:"required,uuid"`
	Note   string `json:"note"`
}

// AssignedItems lists the caller's items with live stock.
func (h *VolunteerHandler) AssignedItems(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	items, err := h.volunteerUC.AssignedItems(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// LogSale records a sale of an assigned item.
func (h *VolunteerHandler) LogSale(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	var req LogSaleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	receipt, err := h.volunteerUC.LogSale(c.Request().Context(), userID, uuid.MustParse(req.ItemID), req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, receipt)
}

// RequestRefill asks the admins to restock an assigned item.
func (h *VolunteerHandler) RequestRefill(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	var req RefillRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.volunteerUC.RequestRefill(c.Request().Context(), userID, &usecase.RefillRequestInput{
		ItemID: uuid.MustParse(req.ItemID),
		Note:   req.Note,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"message": "Refill requested"})
}
