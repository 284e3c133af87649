package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/entity"
	"cafe/internal/domain/service"

	"github.com/google/uuid"
)

// staffAlerter publishes staff alerts after the triggering write has
// committed. Publishing is best effort.
type staffAlerter struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func newStaffAlerter(publisher service.EventPublisher, logger *slog.Logger) *staffAlerter {
	return &staffAlerter{publisher: publisher, logger: logger}
}

func (a *staffAlerter) publish(ctx context.Context, event *service.StaffAlertEvent) {
	if a.publisher == nil {
		return
	}

	event.ID = uuid.NewString()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	// The request may finish before the broker acknowledges.
	if err := a.publisher.PublishStaffAlert(context.WithoutCancel(ctx), event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, a.logger).Warn("Failed to publish staff alert",
			slog.String("kind", string(event.Kind)),
			slog.Any("error", err),
		)
	}
}

func lowStockAlert(item *entity.MenuItem) *service.StaffAlertEvent {
	body := fmt.Sprintf("%s has %d left", item.Name, item.Stock)
	if item.Stock == 0 {
		body = item.Name + " is sold out"
	}

	return &service.StaffAlertEvent{
		Kind:  service.StaffAlertLowStock,
		Title: "Low stock",
		Body:  body,
		Data: map[string]string{
			"item_id": item.ID.String(),
			"stock":   strconv.Itoa(item.Stock),
		},
	}
}

func refillAlert(item *entity.MenuItem, requester *entity.UserProfile, note string) *service.StaffAlertEvent {
	body := fmt.Sprintf("%s asks for more %s (%d left)", requester.DisplayName, item.Name, item.Stock)
	if note != "" {
		body += ": " + note
	}

	return &service.StaffAlertEvent{
		Kind:  service.StaffAlertRefillRequested,
		Title: "Refill requested",
		Body:  body,
		Data: map[string]string{
			"item_id": item.ID.String(),
			"user_id": requester.ID.String(),
		},
	}
}

func preOrderAlert(order *entity.PreOrder) *service.StaffAlertEvent {
	return &service.StaffAlertEvent{
		Kind:  service.StaffAlertPreOrderSubmitted,
		Title: "New pre-order",
		Body:  fmt.Sprintf("%s (%s) ordered for %s", order.StudentName, order.StudentClass, order.PickupDate.Format("Mon 2 Jan")),
		Data: map[string]string{
			"pre_order_id": order.ID.String(),
			"total":        strconv.FormatInt(order.Total, 10),
		},
	}
}
