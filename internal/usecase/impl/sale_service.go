package impl

import (
	"context"
	"log/slog"
	"slices"
	"strconv"

	"cafe/config"
	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/domain/service"
	"cafe/internal/errors"
	"cafe/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultRecentSales = 50
	maxRecentSales     = 500
)

// saleService implements the SaleUsecase interface.
type saleService struct {
	txManager         repository.TransactionManager
	saleRepo          repository.SaleRepository
	alerts            *staffAlerter
	lowStockThreshold int
	logger            *slog.Logger
}

// SaleServiceParams holds dependencies for SaleService, injected by Fx.
type SaleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	SaleRepo  repository.SaleRepository
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSaleService is the constructor for saleService.
func NewSaleService(params SaleServiceParams) usecase.SaleUsecase {
	threshold := 0
	if params.Config != nil && params.Config.Sales != nil {
		threshold = params.Config.Sales.LowStockThreshold
	}

	return &saleService{
		txManager:         params.TxManager,
		saleRepo:          params.SaleRepo,
		alerts:            newStaffAlerter(params.Publisher, params.Logger),
		lowStockThreshold: threshold,
		logger:            params.Logger,
	}
}

func (srv *saleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// stockChange is the stock of one item around a committed decrement.
type stockChange struct {
	item   *entity.MenuItem
	before int
}

func (srv *saleService) Checkout(ctx context.Context, staffID uuid.UUID, lines []entity.SaleLine) (*usecase.Receipt, error) {
	if len(lines) == 0 {
		return nil, errors.Wrap(domainerrors.ErrCartEmpty, "no sale lines")
	}

	order, quantities, err := sumSaleLines(lines)
	if err != nil {
		return nil, err
	}

	var (
		sales   []*entity.SaleRecord
		changes []stockChange
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		menuRepo := repoFactory.MenuRepo()

		// Locking in id order keeps concurrent checkouts from deadlocking.
		locked, err := menuRepo.LockByIDs(ctx, order)
		if err != nil {
			return errors.Wrap(err, "failed to lock menu items")
		}
		byID := make(map[uuid.UUID]*entity.MenuItem, len(locked))
		for _, item := range locked {
			byID[item.ID] = item
		}

		sales = make([]*entity.SaleRecord, 0, len(order))
		changes = make([]stockChange, 0, len(order))
		for _, itemID := range order {
			item, ok := byID[itemID]
			if !ok {
				return errors.Wrap(domainerrors.ErrMenuItemNotFound.WithDetails(itemID.String()), "sale line refers to unknown item")
			}
			if item.Availability == entity.AvailabilitySoldOut {
				return errors.Wrap(domainerrors.ErrItemUnavailable.WithDetails(itemID.String()), "item is sold out")
			}

			quantity := quantities[itemID]
			updated, err := menuRepo.DecrementStock(ctx, itemID, quantity)
			if errors.Is(err, repository.ErrInsufficientStock) {
				return errors.Wrapf(domainerrors.ErrInsufficientStock.WithDetails(itemID.String()),
					"item %s has %d left, %d requested", item.Name, item.Stock, quantity)
			}
			if err != nil {
				return mapMenuError(err, "failed to decrement stock")
			}

			changes = append(changes, stockChange{item: updated, before: item.Stock})
			sales = append(sales, &entity.SaleRecord{
				ID:        uuid.New(),
				ItemID:    itemID,
				ItemName:  item.Name,
				Quantity:  quantity,
				UnitPrice: item.Price,
				StaffID:   staffID,
			})
		}

		if err := repoFactory.SaleRepo().CreateBatch(ctx, sales); err != nil {
			return errors.Wrap(err, "failed to record sales")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Sale rejected", slog.Any("staffID", staffID), slog.Any("error", err))

		return nil, err
	}

	receipt := &usecase.Receipt{Sales: sales}
	for _, sale := range sales {
		receipt.Total += sale.Amount()
	}

	srv.log(ctx).Info("Sale recorded", slog.Any("staffID", staffID), slog.Int("lines", len(sales)), slog.Int64("total", receipt.Total))

	for _, change := range changes {
		if crossedLowStock(change.before, change.item.Stock, srv.lowStockThreshold) {
			srv.alerts.publish(ctx, lowStockAlert(change.item))
		}
	}

	return receipt, nil
}

// sumSaleLines merges lines per item. Item IDs are returned in ascending order.
func sumSaleLines(lines []entity.SaleLine) ([]uuid.UUID, map[uuid.UUID]int, error) {
	quantities := make(map[uuid.UUID]int, len(lines))
	order := make([]uuid.UUID, 0, len(lines))
	fields := make(map[string]string)

	for i, line := range lines {
		if line.ItemID == uuid.Nil {
			fields["lines["+strconv.Itoa(i)+"].item_id"] = "item id is required"

			continue
		}
		if line.Quantity <= 0 {
			fields["lines["+strconv.Itoa(i)+"].quantity"] = "quantity must be at least 1"

			continue
		}
		if _, seen := quantities[line.ItemID]; !seen {
			order = append(order, line.ItemID)
		}
		quantities[line.ItemID] += line.Quantity
	}

	if len(fields) > 0 {
		return nil, nil, domainerrors.NewFieldError(fields)
	}

	slices.SortFunc(order, func(a, b uuid.UUID) int { return slices.Compare(a[:], b[:]) })

	return order, quantities, nil
}

// crossedLowStock reports whether a decrement took stock to the threshold or
// below, or emptied it. Items already below the threshold alert only once.
func crossedLowStock(before, after, threshold int) bool {
	if after == 0 && before > 0 {
		return true
	}

	return before > threshold && after <= threshold
}

func (srv *saleService) ListRecentSales(ctx context.Context, limit int) ([]*entity.SaleRecord, error) {
	if limit <= 0 {
		limit = defaultRecentSales
	}
	limit = min(limit, maxRecentSales)

	sales, err := srv.saleRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	return sales, nil
}
