package impl

import (
	"context"
	"log/slog"
	"strings"

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

const maxRefillNoteLength = 280

// volunteerService implements the VolunteerUsecase interface.
type volunteerService struct {
	assignmentRepo repository.AssignmentRepository
	menuRepo       repository.MenuRepository
	userRepo       repository.UserRepository
	sales          usecase.SaleUsecase
	alerts         *staffAlerter
	logger         *slog.Logger
}

// VolunteerServiceParams holds dependencies for VolunteerService, injected by Fx.
type VolunteerServiceParams struct {
	fx.In

	AssignmentRepo repository.AssignmentRepository
	MenuRepo       repository.MenuRepository
	UserRepo       repository.UserRepository
	Sales          usecase.SaleUsecase
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewVolunteerService is the constructor for volunteerService.
func NewVolunteerService(params VolunteerServiceParams) usecase.VolunteerUsecase {
	return &volunteerService{
		assignmentRepo: params.AssignmentRepo,
		menuRepo:       params.MenuRepo,
		userRepo:       params.UserRepo,
		sales:          params.Sales,
		alerts:         newStaffAlerter(params.Publisher, params.Logger),
		logger:         params.Logger,
	}
}

func (srv *volunteerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *volunteerService) AssignedItems(ctx context.Context, userID uuid.UUID) ([]*entity.MenuItem, error) {
	itemIDs, err := srv.assignmentRepo.FindItemIDsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load assignments")
	}
	if len(itemIDs) == 0 {
		return []*entity.MenuItem{}, nil
	}

	items, err := srv.menuRepo.FindByIDs(ctx, itemIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load assigned items")
	}

	return items, nil
}

// ensureAssigned fails with ErrItemNotAssigned unless itemID belongs to userID.
func (srv *volunteerService) ensureAssigned(ctx context.Context, userID, itemID uuid.UUID) error {
	assigned, err := srv.assignmentRepo.IsAssigned(ctx, userID, itemID)
	if err != nil {
		return errors.Wrap(err, "failed to check assignment")
	}
	if !assigned {
		return errors.Wrap(domainerrors.ErrItemNotAssigned.WithDetails(itemID.String()), "volunteer sale")
	}

	return nil
}

func (srv *volunteerService) LogSale(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*usecase.Receipt, error) {
	if err := srv.ensureAssigned(ctx, userID, itemID); err != nil {
		return nil, err
	}

	return srv.sales.Checkout(ctx, userID, []entity.SaleLine{{ItemID: itemID, Quantity: quantity}})
}

func (srv *volunteerService) RequestRefill(ctx context.Context, userID uuid.UUID, input *usecase.RefillRequestInput) error {
	note := strings.TrimSpace(input.Note)
	if len(note) > maxRefillNoteLength {
		return domainerrors.NewFieldError(map[string]string{"note": "note is too long"})
	}

	if err := srv.ensureAssigned(ctx, userID, input.ItemID); err != nil {
		return err
	}

	item, err := srv.menuRepo.FindByID(ctx, input.ItemID)
	if err != nil {
		return mapMenuError(err, "failed to find menu item")
	}

	requester, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return mapUserError(err, userID)
	}

	srv.alerts.publish(ctx, refillAlert(item, requester, note))
	srv.log(ctx).Info("Refill requested", slog.Any("itemID", item.ID), slog.Any("userID", userID))

	return nil
}
