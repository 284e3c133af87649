package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"cafe/config"
	"cafe/internal/delivery/api/response"
	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PreOrderHandlerParams holds dependencies for PreOrderHandler, injected by Fx.
type PreOrderHandlerParams struct {
	fx.In

	PreOrderUC usecase.PreOrderUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// PreOrderHandler serves the public pre-order form and its staff workflow.
type PreOrderHandler struct {
	preOrderUC    usecase.PreOrderUsecase
	maxProofBytes int64
	logger        *slog.Logger
}

// NewPreOrderHandler is the constructor for PreOrderHandler.
func NewPreOrderHandler(params PreOrderHandlerParams) *PreOrderHandler {
	return &PreOrderHandler{
		preOrderUC:    params.PreOrderUC,
		maxProofBytes: params.Config.PreOrder.MaxProofBytes,
		logger:        params.Logger,
	}
}

// UpdatePreOrderStatusRequest is the body of PATCH /api/v1/admin/pre-orders/:id/status.
type UpdatePreOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Ready Completed"`
}

// ScanPickupCodeRequest is the body of POST /api/v1/admin/pre-orders/scan.
type ScanPickupCodeRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// SubmitPreOrder accepts the multipart pre-order form. Field names follow the
// storefront form: studentName, studentClass, cart (JSON) and screenshot.
func (h *PreOrderHandler) SubmitPreOrder(c echo.Context) error {
	var items map[string]int
	if raw := c.FormValue("cart"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return response.HandleAppError(c, domainerrors.NewFieldError(map[string]string{
				"cart": "must be a JSON object of item id to quantity",
			}))
		}
	}

	// Oversized files are still passed on; the usecase reports the limit.
	screenshot, err := readUpload(c, "screenshot", h.maxProofBytes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	receipt, err := h.preOrderUC.SubmitPreOrder(c.Request().Context(), &usecase.SubmitPreOrderInput{
		StudentName:  c.FormValue("studentName"),
		StudentClass: c.FormValue("studentClass"),
		Items:        items,
		Screenshot:   screenshot,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, receipt)
}

// PickupQRCode renders the pickup code of an order as PNG.
func (h *PreOrderHandler) PickupQRCode(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.preOrderUC.PickupQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListPreOrders lists orders newest first, optionally by status.
func (h *PreOrderHandler) ListPreOrders(c echo.Context) error {
	var status *entity.PreOrderStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.PreOrderStatus(raw)
		if !s.IsValid() {
			return response.HandleAppError(c, domainerrors.NewFieldError(map[string]string{
				"status": "must be one of: Pending Ready Completed",
			}))
		}
		status = &s
	}

	orders, err := h.preOrderUC.ListPreOrders(c.Request().Context(), status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetPreOrder returns one order.
func (h *PreOrderHandler) GetPreOrder(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.preOrderUC.GetPreOrder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdateStatus moves an order to its next status.
func (h *PreOrderHandler) UpdateStatus(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdatePreOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.preOrderUC.AdvanceStatus(c.Request().Context(), id, entity.PreOrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ScanPickupCode resolves a scanned pickup code to its order.
func (h *PreOrderHandler) ScanPickupCode(c echo.Context) error {
	var req ScanPickupCodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.preOrderUC.ResolvePickupCode(c.Request().Context(), req.Payload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
