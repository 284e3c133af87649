package notification

import (
	"context"
	"log/slog"

	"cafe/internal/domain/service"
)

// logNotificationService records notifications instead of delivering them.
// It stands in for FCM in development.
type logNotificationService struct {
	logger *slog.Logger
}

// NewLogNotificationService creates a notification service that only logs.
func NewLogNotificationService(logger *slog.Logger) service.NotificationService {
	return &logNotificationService{logger: logger}
}

func (s *logNotificationService) Multicast(ctx context.Context, msg *service.PushMessage) (*service.PushReport, error) {
	s.logger.InfoContext(ctx, "Notification not delivered, messaging disabled",
		slog.Int("tokens", len(msg.Tokens)),
		slog.String("title", msg.Title),
		slog.String("collapse_key", msg.CollapseKey),
		slog.Any("data", msg.Data),
	)

	return &service.PushReport{Sent: len(msg.Tokens)}, nil
}
