package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"cafe/config"
	"cafe/internal/delivery/api/response"
	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/usecase"
	"cafe/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MenuHandlerParams holds dependencies for MenuHandler, injected by Fx.
type MenuHandlerParams struct {
	fx.In

	MenuUC usecase.MenuUsecase
	Config *config.Config
	Logger *slog.Logger
}

// MenuHandler serves the public menu and its administration.
type MenuHandler struct {
	menuUC        usecase.MenuUsecase
	maxImageBytes int64
	logger        *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler.
func NewMenuHandler(params MenuHandlerParams) *MenuHandler {
	return &MenuHandler{
		menuUC:        params.MenuUC,
		maxImageBytes: params.Config.PreOrder.MaxProofBytes,
		logger:        params.Logger,
	}
}

// CreateMenuItemRequest is the body of POST /api/v1/admin/menu.
type CreateMenuItemRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	Description    string `json:"description" validate:"max=500"`
	Price          int64  `json:"price" validate:"gte=0"`
	Stock          int    `json:"stock" validate:"gte=0"`
	IsPreOrderOnly bool   `json:"is_pre_order_only"`
}

// UpdateMenuItemRequest is the body of PUT /api/v1/admin/menu/:id.
type UpdateMenuItemRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	Description    string `json:"description" validate:"max=500"`
	Price          int64  `json:"price" validate:"gte=0"`
	Availability   string `json:"availability" validate:"required,oneof='In Stock' 'Sold Out'"`
	IsPreOrderOnly bool   `json:"is_pre_order_only"`
}

// SetStockRequest is the body of PUT /api/v1/admin/menu/:id/stock.
type SetStockRequest struct {
	Stock *int `json:"stock" validate:"required,gte=0"`
}

// ListDailyMenu lists the items sold at the counter.
func (h *MenuHandler) ListDailyMenu(c echo.Context) error {
	return h.list(c, usecase.MenuScopeDaily)
}

// ListPreOrderMenu lists the items offered for pre-order.
func (h *MenuHandler) ListPreOrderMenu(c echo.Context) error {
	return h.list(c, usecase.MenuScopePreOrder)
}

// ListAllMenu lists every item for the admin pages.
func (h *MenuHandler) ListAllMenu(c echo.Context) error {
	return h.list(c, usecase.MenuScopeAll)
}

func (h *MenuHandler) list(c echo.Context, scope usecase.MenuScope) error {
	inStockOnly := c.QueryParam("in_stock") == "true"

	items, err := h.menuUC.ListMenu(c.Request().Context(), scope, inStockOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// GetMenuItem returns one item.
func (h *MenuHandler) GetMenuItem(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.menuUC.GetMenuItem(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// StreamMenu pushes the current listing as Server-Sent Events, one snapshot
// frame on connect and one after every catalog change.
func (h *MenuHandler) StreamMenu(c echo.Context) error {
	scope := usecase.MenuScope(c.QueryParam("scope"))
	if scope == "" {
		scope = usecase.MenuScopeDaily
	}

	ctx := c.Request().Context()
	snapshots, err := h.menuUC.WatchMenu(ctx, scope)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	// The stream outlives the server write timeout.
	if err := http.NewResponseController(c.Response()).SetWriteDeadline(time.Time{}); err != nil {
		logger.Debug("Write deadline not adjustable for menu stream", slog.Any("error", err))
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	for items := range snapshots {
		payload, err := json.Marshal(items)
		if err != nil {
			logger.Error("Failed to encode menu snapshot", slog.Any("error", err))

			return nil
		}
		if _, err := fmt.Fprintf(res, "event: snapshot\ndata: %s\n\n", payload); err != nil {
			logger.Debug("Menu stream client went away", slog.Any("error", err))

			return nil
		}
		res.Flush()
	}

	return nil
}

// CreateMenuItem adds an item to the catalog.
func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	var req CreateMenuItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.menuUC.CreateMenuItem(c.Request().Context(), &usecase.CreateMenuItemInput{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Stock:          req.Stock,
		IsPreOrderOnly: req.IsPreOrderOnly,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// UpdateMenuItem edits the descriptive fields of an item.
func (h *MenuHandler) UpdateMenuItem(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateMenuItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.menuUC.UpdateMenuItem(c.Request().Context(), &usecase.UpdateMenuItemInput{
		ID:             id,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Availability:   entity.Availability(req.Availability),
		IsPreOrderOnly: req.IsPreOrderOnly,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// DeleteMenuItem removes an item.
func (h *MenuHandler) DeleteMenuItem(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.menuUC.DeleteMenuItem(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetStock overwrites the stock level of an item.
func (h *MenuHandler) SetStock(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SetStockRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.menuUC.SetStock(c.Request().Context(), id, *req.Stock)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// UploadImage replaces the picture of an item.
func (h *MenuHandler) UploadImage(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	file, err := readUpload(c, "image", h.maxImageBytes)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if file != nil && int64(len(file.Data)) > h.maxImageBytes {
		return response.HandleAppError(c, domainerrors.NewFieldError(map[string]string{
			"image": "file must be at most " + util.FormatBytes(h.maxImageBytes),
		}))
	}

	item, err := h.menuUC.UploadImage(c.Request().Context(), id, file)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}
