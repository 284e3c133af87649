package usecase

import (
	"context"

	"cafe/internal/domain/service"
	"cafe/internal/errors"
)

// ErrTransientDelivery marks delivery failures worth retrying.
var ErrTransientDelivery = errors.New("transient delivery failure")

// DeliveryResult summarises one alert fan-out.
type DeliveryResult struct {
	Recipients    int
	Sent          int
	Failed        int
	InvalidTokens int
}

// StaffAlertUsecase delivers staff alert events to admin devices.
type StaffAlertUsecase interface {
	DeliverStaffAlert(ctx context.Context, event *service.StaffAlertEvent) (*DeliveryResult, error)
}
