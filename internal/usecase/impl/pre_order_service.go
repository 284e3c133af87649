package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"cafe/config"
	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/constants"
	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/domain/service"
	"cafe/internal/errors"
	"cafe/internal/usecase"
	"cafe/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const minStudentNameLength = 2

// preOrderService implements the PreOrderUsecase interface.
type preOrderService struct {
	preOrderRepo  repository.PreOrderRepository
	menuRepo      repository.MenuRepository
	storage       service.BlobStorage
	qrCodeService service.QRCodeService
	alerts        *staffAlerter
	maxProofBytes int64
	allowedTypes  []string
	location      *time.Location
	now           func() time.Time
	logger        *slog.Logger
}

// PreOrderServiceParams holds dependencies for PreOrderService, injected by Fx.
type PreOrderServiceParams struct {
	fx.In

	PreOrderRepo  repository.PreOrderRepository
	MenuRepo      repository.MenuRepository
	Storage       service.BlobStorage
	QRCodeService service.QRCodeService
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPreOrderService is the constructor for preOrderService.
func NewPreOrderService(params PreOrderServiceParams) (usecase.PreOrderUsecase, error) {
	location, err := params.Config.PreOrder.Location()
	if err != nil {
		return nil, err
	}

	return &preOrderService{
		preOrderRepo:  params.PreOrderRepo,
		menuRepo:      params.MenuRepo,
		storage:       params.Storage,
		qrCodeService: params.QRCodeService,
		alerts:        newStaffAlerter(params.Publisher, params.Logger),
		maxProofBytes: params.Config.PreOrder.MaxProofBytes,
		allowedTypes:  params.Config.PreOrder.AllowedProofTypes,
		location:      location,
		now:           time.Now,
		logger:        params.Logger,
	}, nil
}

func (srv *preOrderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// validateSubmission checks the form without touching storage and returns
// the parsed item quantities.
func (srv *preOrderService) validateSubmission(input *usecase.SubmitPreOrderInput) (map[uuid.UUID]int, error) {
	fields := make(map[string]string)

	if utf8.RuneCountInString(strings.TrimSpace(input.StudentName)) < minStudentNameLength {
		fields["studentName"] = fmt.Sprintf("name must be at least %d characters", minStudentNameLength)
	}
	if strings.TrimSpace(input.StudentClass) == "" {
		fields["studentClass"] = "class is required"
	}

	items := make(map[uuid.UUID]int, len(input.Items))
	for rawID, quantity := range input.Items {
		itemID, err := uuid.Parse(rawID)
		if err != nil {
			fields["cart"] = "cart contains an invalid item id"

			break
		}
		if quantity < 1 {
			fields["cart"] = "every quantity must be at least 1"

			break
		}
		items[itemID] += quantity
	}
	if len(input.Items) == 0 {
		fields["cart"] = "cart is empty"
	}

	switch proof := input.Screenshot; {
	case proof == nil || len(proof.Data) == 0:
		fields["screenshot"] = "payment screenshot is required"
	case int64(len(proof.Data)) > srv.maxProofBytes:
		fields["screenshot"] = "file must be at most " + util.FormatBytes(srv.maxProofBytes)
	case !slices.Contains(srv.allowedTypes, strings.ToLower(proof.ContentType)):
		fields["screenshot"] = "file must be one of " + strings.Join(srv.allowedTypes, ", ")
	}

	if len(fields) > 0 {
		return nil, domainerrors.NewFieldError(fields)
	}

	return items, nil
}

// pickupDate is the day after now in the café's time zone.
func (srv *preOrderService) pickupDate(now time.Time) time.Time {
	local := now.In(srv.location)
	year, month, day := local.Date()

	return time.Date(year, month, day+1, 0, 0, 0, 0, srv.location)
}

func (srv *preOrderService) SubmitPreOrder(ctx context.Context, input *usecase.SubmitPreOrderInput) (*usecase.PreOrderReceipt, error) {
	items, err := srv.validateSubmission(input)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	menuItems, err := srv.menuRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ordered items")
	}
	prices := make(map[uuid.UUID]int64, len(menuItems))
	for _, item := range menuItems {
		prices[item.ID] = item.Price
	}

	var total int64
	for id, quantity := range items {
		price, ok := prices[id]
		if !ok {
			return nil, domainerrors.NewFieldError(map[string]string{"cart": "item " + id.String() + " is not on the menu"})
		}
		total += price * int64(quantity)
	}

	now := srv.now()
	proof := input.Screenshot
	key := constants.PaymentProofPrefix + "/" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + sanitizeFileName(proof.FileName)

	proofURL, err := srv.storage.Upload(ctx, key, proof.ContentType, proof.Data)
	if err != nil {
		srv.log(ctx).Error("Failed to upload payment proof", slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	order := &entity.PreOrder{
		ID:              uuid.New(),
		StudentName:     strings.TrimSpace(input.StudentName),
		StudentClass:    strings.TrimSpace(input.StudentClass),
		Items:           items,
		PaymentProofURL: proofURL,
		PaymentProofKey: key,
		Total:           total,
		Status:          entity.PreOrderStatusPending,
		PickupDate:      srv.pickupDate(now),
		OrderedAt:       now,
		UpdatedAt:       now,
	}

	if err := srv.preOrderRepo.Create(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to store pre-order, removing proof", slog.String("key", key), slog.Any("error", err))
		if delErr := srv.storage.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			srv.log(ctx).Error("Failed to remove orphaned payment proof", slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, errors.Wrap(err, "failed to create pre-order")
	}

	srv.log(ctx).Info("Pre-order submitted", slog.Any("preOrderID", order.ID), slog.Int64("total", order.Total))
	srv.alerts.publish(ctx, preOrderAlert(order))

	return &usecase.PreOrderReceipt{
		Order:      order,
		PickupCode: srv.qrCodeService.PickupPayload(order.ID),
	}, nil
}

func (srv *preOrderService) GetPreOrder(ctx context.Context, id uuid.UUID) (*entity.PreOrder, error) {
	order, err := srv.preOrderRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrPreOrderNotFound) {
		return nil, errors.Wrap(domainerrors.ErrPreOrderNotFound, id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pre-order")
	}

	return order, nil
}

func (srv *preOrderService) ListPreOrders(ctx context.Context, status *entity.PreOrderStatus) ([]*entity.PreOrder, error) {
	if status != nil && !status.IsValid() {
		return nil, domainerrors.NewFieldError(map[string]string{"status": "unknown status"})
	}

	orders, err := srv.preOrderRepo.List(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pre-orders")
	}

	return orders, nil
}

func (srv *preOrderService) AdvanceStatus(ctx context.Context, id uuid.UUID, target entity.PreOrderStatus) (*entity.PreOrder, error) {
	if !target.IsValid() {
		return nil, domainerrors.NewFieldError(map[string]string{"status": "unknown status"})
	}

	order, err := srv.GetPreOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(target) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidStatusTransition.WithDetails(string(order.Status)+" -> "+string(target)),
			"pre-order %s", id)
	}

	err = srv.preOrderRepo.UpdateStatus(ctx, id, order.Status, target)
	switch {
	case errors.Is(err, repository.ErrPreOrderStatusChanged):
		return nil, errors.Wrap(domainerrors.ErrInvalidStatusTransition, "status changed concurrently")
	case errors.Is(err, repository.ErrPreOrderNotFound):
		return nil, errors.Wrap(domainerrors.ErrPreOrderNotFound, id.String())
	case err != nil:
		return nil, errors.Wrap(err, "failed to update pre-order status")
	}

	srv.log(ctx).Info("Pre-order status changed", slog.Any("preOrderID", id),
		slog.String("from", string(order.Status)), slog.String("to", string(target)))

	order.Status = target
	order.UpdatedAt = srv.now()

	return order, nil
}

func (srv *preOrderService) PickupQRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.GetPreOrder(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GeneratePickupQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup code")
	}

	return png, nil
}

func (srv *preOrderService) ResolvePickupCode(ctx context.Context, payload string) (*entity.PreOrder, error) {
	id, err := srv.qrCodeService.ParsePickupQR(payload)
	if err != nil {
		return nil, err
	}

	return srv.GetPreOrder(ctx, id)
}
