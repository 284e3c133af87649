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

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the point-of-sale cart of the signed-in staff member.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{cartUC: params.CartUC, logger: params.Logger}
}

// AddCartLineRequest is the body of POST /api/v1/pos/cart/lines.
type AddCartLineRequest struct {
	ItemID string `json:"item_id" validate:"required,uuid"`
}

// SetCartQuantityRequest is the body of PUT /api/v1/pos/cart/lines/:itemId.
type SetCartQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}

// GetCart returns the caller's cart priced against current stock.
func (h *CartHandler) GetCart(c echo.Context) error {
	staffID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), staffID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddLine puts one more unit of an item into the cart.
func (h *CartHandler) AddLine(c echo.Context) error {
	staffID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	var req AddCartLineRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), staffID, uuid.MustParse(req.ItemID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// RemoveLine takes one unit of an item out of the cart.
func (h *CartHandler) RemoveLine(c echo.Context) error {
	staffID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	itemID, err := uuidParam(c, "itemId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), staffID, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// SetQuantity sets the quantity of a line, clamped to stock.
func (h *CartHandler) SetQuantity(c echo.Context) error {
	staffID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	itemID, err := uuidParam(c, "itemId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SetCartQuantityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.SetQuantity(c.Request().Context(), staffID, itemID, *req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	staffID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), staffID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Checkout records the cart as sales. The cart survives a failed checkout.
func (h *CartHandler) Checkout(c echo.Context) error {
	staffID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	receipt, err := h.cartUC.Checkout(c.Request().Context(), staffID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, receipt)
}
