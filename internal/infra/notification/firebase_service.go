package notification

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"cafe/config"
	"cafe/internal/domain/service"
	"cafe/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// alertChannelID is the Android notification channel the staff app creates
// for operational alerts.
const alertChannelID = "staff_alerts"

// multicastSender is the part of the FCM client used for delivery.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
}

// NewNotificationService returns the FCM-backed service, or a log-only one
// when messaging is disabled.
func NewNotificationService(ctx context.Context, cfg *config.Config, app *firebase.App, logger *slog.Logger) (service.NotificationService, error) {
	if app == nil || cfg.Firebase == nil || !cfg.Firebase.EnableMessaging {
		return NewLogNotificationService(logger), nil
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

func (s *firebaseService) Multicast(ctx context.Context, msg *service.PushMessage) (*service.PushReport, error) {
	if len(msg.Tokens) == 0 {
		return &service.PushReport{}, nil
	}
	if len(msg.Tokens) > service.MaxBatchTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(msg.Tokens), service.MaxBatchTokens)
	}

	response, err := s.client.SendEachForMulticast(ctx, toMulticast(msg))
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	report := &service.PushReport{Sent: response.SuccessCount, Failed: response.FailureCount}
	for i, res := range response.Responses {
		if res.Error != nil && (messaging.IsUnregistered(res.Error) || messaging.IsInvalidArgument(res.Error)) {
			report.Stale = append(report.Stale, msg.Tokens[i])
		}
	}

	return report, nil
}

// toMulticast marks alerts high priority on both platforms. The collapse key
// doubles as the APNs collapse id.
func toMulticast(msg *service.PushMessage) *messaging.MulticastMessage {
	android := &messaging.AndroidConfig{
		Priority:     "high",
		CollapseKey:  msg.CollapseKey,
		Notification: &messaging.AndroidNotification{ChannelID: alertChannelID},
	}
	apnsHeaders := map[string]string{"apns-priority": "10"}
	if msg.CollapseKey != "" {
		apnsHeaders["apns-collapse-id"] = msg.CollapseKey
	}
	if msg.TTL > 0 {
		ttl := msg.TTL
		android.TTL = &ttl
		apnsHeaders["apns-expiration"] = strconv.FormatInt(time.Now().Add(ttl).Unix(), 10)
	}

	return &messaging.MulticastMessage{
		Tokens:       msg.Tokens,
		Notification: &messaging.Notification{Title: msg.Title, Body: msg.Body},
		Data:         msg.Data,
		Android:      android,
		APNS:         &messaging.APNSConfig{Headers: apnsHeaders},
	}
}
