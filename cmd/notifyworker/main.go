// Command notifyworker receives staff alerts from Pub/Sub push and fans them
// out to the registered devices over FCM.
package main

import (
	"context"
	"log/slog"

	"cafe/config"
	"cafe/internal/delivery"
	"cafe/internal/delivery/worker"
	"cafe/internal/delivery/worker/handler"
	"cafe/internal/infra/firebase"
	logs "cafe/internal/infra/log"
	"cafe/internal/infra/notification"
	"cafe/internal/infra/persistence/postgres"
	"cafe/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
		}),
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		storageModule(),
		alertModule(),
		fx.Invoke(delivery.Run),
	).Run()
}

// storageModule only needs users (for role lookup) and their devices.
func storageModule() fx.Option {
	return fx.Module("storage",
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func alertModule() fx.Option {
	return fx.Module("alerts",
		fx.Provide(
			firebase.NewApp,
			notification.NewNotificationService,
			impl.NewStaffAlertService,
			handler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}
