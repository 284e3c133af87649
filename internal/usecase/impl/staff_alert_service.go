package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/entity"
	"cafe/internal/domain/repository"
	"cafe/internal/domain/service"
	"cafe/internal/errors"
	"cafe/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// staffAlertService implements the StaffAlertUsecase interface.
type staffAlertService struct {
	userRepo        repository.UserRepository
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// StaffAlertServiceParams holds dependencies for StaffAlertService, injected by Fx.
type StaffAlertServiceParams struct {
	fx.In

	UserRepo        repository.UserRepository
	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewStaffAlertService creates the worker side of staff alerts.
func NewStaffAlertService(params StaffAlertServiceParams) usecase.StaffAlertUsecase {
	return &staffAlertService{
		userRepo:        params.UserRepo,
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (s *staffAlertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// pushOptions sets how long an alert stays worth showing. Low stock alerts
// for one item replace each other on the device.
func pushOptions(event *service.StaffAlertEvent) (collapseKey string, ttl time.Duration) {
	switch event.Kind {
	case entity.AlertLowStock:
		return string(event.Kind) + ":" + event.Data["item_id"], time.Hour
	case entity.AlertRefillRequested:
		return "", 30 * time.Minute
	default:
		return "", 24 * time.Hour
	}
}

// DeliverStaffAlert sends an alert to every active admin device that has not
// muted the event kind. Storage failures and batches that failed as a whole
// are reported as ErrTransientDelivery so the broker redelivers.
func (s *staffAlertService) DeliverStaffAlert(ctx context.Context, event *service.StaffAlertEvent) (*usecase.DeliveryResult, error) {
	admins, err := s.userRepo.ListByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return nil, errors.Wrap(errors.Join(usecase.ErrTransientDelivery, err), "failed to list admins")
	}

	result := &usecase.DeliveryResult{}
	if len(admins) == 0 {
		s.log(ctx).Info("No admins to alert", slog.String("kind", string(event.Kind)))

		return result, nil
	}

	userIDs := make([]uuid.UUID, 0, len(admins))
	for _, admin := range admins {
		userIDs = append(userIDs, admin.ID)
	}

	devices, err := s.deviceRepo.FindAlertRecipients(ctx, userIDs, event.Kind)
	if err != nil {
		return nil, errors.Wrap(errors.Join(usecase.ErrTransientDelivery, err), "failed to fetch devices")
	}

	// One token may be shared by devices registered twice.
	tokens := make([]string, 0, len(devices))
	deviceByToken := make(map[string]*entity.AlertDevice, len(devices))
	for _, device := range devices {
		if _, seen := deviceByToken[device.FCMToken]; seen {
			continue
		}
		deviceByToken[device.FCMToken] = device
		tokens = append(tokens, device.FCMToken)
	}
	result.Recipients = len(tokens)

	data := map[string]string{"kind": string(event.Kind), "alert_id": event.ID}
	for k, v := range event.Data {
		data[k] = v
	}
	collapseKey, ttl := pushOptions(event)

	var (
		invalidTokens []string
		batchErr      error
	)
	for batch := range slices.Chunk(tokens, service.MaxBatchTokens) {
		report, err := s.notificationSvc.Multicast(ctx, &service.PushMessage{
			Tokens:      batch,
			Title:       event.Title,
			Body:        event.Body,
			Data:        data,
			CollapseKey: collapseKey,
			TTL:         ttl,
		})
		if err != nil {
			s.log(ctx).Warn("Alert batch failed", slog.Int("tokens", len(batch)), slog.Any("error", err))
			result.Failed += len(batch)
			batchErr = errors.Join(batchErr, err)

			continue
		}

		result.Sent += report.Sent
		result.Failed += report.Failed
		invalidTokens = append(invalidTokens, report.Stale...)
	}

	for _, token := range invalidTokens {
		device, ok := deviceByToken[token]
		if !ok {
			continue
		}
		if err := s.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
			s.log(ctx).Warn("Failed to deactivate device", slog.Any("deviceID", device.ID), slog.Any("error", err))

			continue
		}
		result.InvalidTokens++
	}

	s.log(ctx).Info("Staff alert delivered",
		slog.String("kind", string(event.Kind)),
		slog.Int("recipients", result.Recipients),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalid_tokens", result.InvalidTokens),
	)

	// Redelivering would resend to devices that already got the alert, so
	// only retry when nothing went out.
	if batchErr != nil && result.Sent == 0 {
		return result, errors.Wrap(errors.Join(usecase.ErrTransientDelivery, batchErr), "no alert batch succeeded")
	}

	return result, nil
}
