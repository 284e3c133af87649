package impl

import (
	"context"
	"log/slog"

	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/cart"
	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/errors"
	"cafe/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo repository.CartRepository
	menuRepo repository.MenuRepository
	sales    usecase.SaleUsecase
	logger   *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo repository.CartRepository
	MenuRepo repository.MenuRepository
	Sales    usecase.SaleUsecase
	Logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo: params.CartRepo,
		menuRepo: params.MenuRepo,
		sales:    params.Sales,
		logger:   params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// mapCartError translates cart rule violations into application errors.
func mapCartError(err error, itemID uuid.UUID) error {
	switch {
	case errors.Is(err, cart.ErrStockLimitReached):
		return errors.Wrap(domainerrors.ErrStockLimitReached.WithDetails(itemID.String()), err.Error())
	case errors.Is(err, cart.ErrItemUnavailable):
		return errors.Wrap(domainerrors.ErrItemUnavailable.WithDetails(itemID.String()), err.Error())
	case errors.Is(err, cart.ErrUnknownItem):
		return errors.Wrap(domainerrors.ErrMenuItemNotFound.WithDetails(itemID.String()), err.Error())
	default:
		return err
	}
}

// snapshot reads the current catalog state of ids.
func (srv *cartService) snapshot(ctx context.Context, ids []uuid.UUID) (cart.Snapshot, error) {
	if len(ids) == 0 {
		return cart.Snapshot{}, nil
	}

	items, err := srv.menuRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart items")
	}

	return cart.NewSnapshot(items), nil
}

func (srv *cartService) view(ctx context.Context, c *cart.Cart) (*usecase.CartView, error) {
	snapshot, err := srv.snapshot(ctx, c.ItemIDs())
	if err != nil {
		return nil, err
	}

	return buildCartView(c, snapshot), nil
}

func buildCartView(c *cart.Cart, snapshot cart.Snapshot) *usecase.CartView {
	view := &usecase.CartView{Lines: make([]usecase.CartLineView, 0, c.Len())}
	view.Total, view.Missing = c.Total(snapshot)

	for _, line := range c.Lines() {
		item, ok := snapshot[line.ItemID]
		if !ok {
			continue
		}
		view.Lines = append(view.Lines, usecase.CartLineView{
			ItemID:    item.ID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  line.Quantity,
			Amount:    item.Price * int64(line.Quantity),
			Stock:     item.Stock,
		})
	}

	return view
}

func (srv *cartService) GetCart(ctx context.Context, staffID uuid.UUID) (*usecase.CartView, error) {
	c, err := srv.cartRepo.Get(ctx, staffID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return srv.view(ctx, c)
}

func (srv *cartService) AddItem(ctx context.Context, staffID, itemID uuid.UUID) (*usecase.CartView, error) {
	snapshot, err := srv.snapshot(ctx, []uuid.UUID{itemID})
	if err != nil {
		return nil, err
	}

	c, err := srv.cartRepo.Update(ctx, staffID, func(c *cart.Cart) error {
		return c.AddLine(itemID, snapshot)
	})
	if err != nil {
		return nil, mapCartError(err, itemID)
	}

	return srv.view(ctx, c)
}

func (srv *cartService) RemoveItem(ctx context.Context, staffID, itemID uuid.UUID) (*usecase.CartView, error) {
	c, err := srv.cartRepo.Update(ctx, staffID, func(c *cart.Cart) error {
		c.RemoveLine(itemID)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update cart")
	}

	return srv.view(ctx, c)
}

func (srv *cartService) SetQuantity(ctx context.Context, staffID, itemID uuid.UUID, quantity int) (*usecase.CartView, error) {
	if quantity < 0 {
		return nil, domainerrors.NewFieldError(map[string]string{"quantity": "quantity must not be negative"})
	}

	snapshot, err := srv.snapshot(ctx, []uuid.UUID{itemID})
	if err != nil {
		return nil, err
	}

	c, err := srv.cartRepo.Update(ctx, staffID, func(c *cart.Cart) error {
		c.SetQuantity(itemID, quantity, snapshot)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update cart")
	}

	return srv.view(ctx, c)
}

func (srv *cartService) ClearCart(ctx context.Context, staffID uuid.UUID) error {
	if _, err := srv.cartRepo.Update(ctx, staffID, func(c *cart.Cart) error {
		c.Clear()

		return nil
	}); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

func (srv *cartService) Checkout(ctx context.Context, staffID uuid.UUID) (*usecase.Receipt, error) {
	var receipt *usecase.Receipt

	// The sale runs inside the cart update so the cart is cleared only when
	// it commits and no concurrent edit slips in between.
	_, err := srv.cartRepo.Update(ctx, staffID, func(c *cart.Cart) error {
		if c.IsEmpty() {
			return errors.Wrap(domainerrors.ErrCartEmpty, "nothing to check out")
		}

		lines := make([]entity.SaleLine, 0, c.Len())
		for _, line := range c.Lines() {
			lines = append(lines, entity.SaleLine{ItemID: line.ItemID, Quantity: line.Quantity})
		}

		var err error
		receipt, err = srv.sales.Checkout(ctx, staffID, lines)
		if err != nil {
			return err
		}
		c.Clear()

		return nil
	})
	if err != nil {
		srv.log(ctx).Info("Checkout failed, cart kept", slog.Any("staffID", staffID), slog.Any("error", err))

		return nil, err
	}

	return receipt, nil
}
