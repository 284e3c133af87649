package handler

import (
	"log/slog"
	"net/http"

	"cafe/internal/delivery/api/response"
	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/entity"
	"cafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SaleHandlerParams holds dependencies for SaleHandler, injected by Fx.
type SaleHandlerParams struct {
	fx.In

	SaleUC usecase.SaleUsecase
	Logger *slog.Logger
}

// SaleHandler records sales sent with explicit lines and lists history.
type SaleHandler struct {
	saleUC usecase.SaleUsecase
	logger *slog.Logger
}

// NewSaleHandler is the constructor for SaleHandler.
func NewSaleHandler(params SaleHandlerParams) *SaleHandler {
	return &SaleHandler{saleUC: params.SaleUC, logger: params.Logger}
}

// SaleLineRequest is one line of RecordSaleRequest.
type SaleLineRequest struct {
	ItemID   string `json:"item_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// RecordSaleRequest is the body of POST /api/v1/pos/sales.
type RecordSaleRequest struct {
	Lines []SaleLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// RecordSale checks out the given lines.
func (h *SaleHandler) RecordSale(c echo.Context) error {
	staffID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	var req RecordSaleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	lines := make([]entity.SaleLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, entity.SaleLine{ItemID: uuid.MustParse(line.ItemID), Quantity: line.Quantity})
	}

	receipt, err := h.saleUC.Checkout(c.Request().Context(), staffID, lines)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, receipt)
}

// ListSales returns the most recent sale records.
func (h *SaleHandler) ListSales(c echo.Context) error {
	limit, err := intQuery(c, "limit")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sales, err := h.saleUC.ListRecentSales(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sales)
}
