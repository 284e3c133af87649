package main

import (
	"context"

	"cafe/config"
	"cafe/internal/delivery"
	"cafe/internal/delivery/api"
	"cafe/internal/delivery/api/middleware"
	"cafe/internal/delivery/api/router/handler"
	"cafe/internal/domain/lifecycle"
	"cafe/internal/domain/service"
	"cafe/internal/errors"
	"cafe/internal/infra/auth"
	"cafe/internal/infra/cartstore"
	"cafe/internal/infra/drafting"
	"cafe/internal/infra/firebase"
	"cafe/internal/infra/identity"
	logs "cafe/internal/infra/log"
	"cafe/internal/infra/persistence/postgres"
	"cafe/internal/infra/pubsub"
	"cafe/internal/infra/qrcode"
	"cafe/internal/infra/realtime"
	"cafe/internal/infra/storage"
	"cafe/internal/usecase"
	"cafe/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			postgres.NewCatalogListener,
			bootstrapAdmin,
			delivery.Run,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
			postgres.NewDeviceRepository,
			postgres.NewMenuRepository,
			postgres.NewSaleRepository,
			postgres.NewPreOrderRepository,
			postgres.NewAssignmentRepository,
			postgres.NewAnnouncementRepository,
			postgres.NewAnalyticsRepository,
			cartstore.NewCartRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			firebase.NewApp,
			identity.NewFirebaseProvider,
			qrcode.NewQRCodeService,
			storage.NewBlobStorage,
			pubsub.NewEventPublisher,
			drafting.NewAnnouncementDrafter,
			realtime.NewHub,
			func(hub *realtime.Hub) service.CatalogWatcher { return hub },
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewMenuService,
			impl.NewSaleService,
			impl.NewCartService,
			impl.NewPreOrderService,
			impl.NewTeamService,
			impl.NewVolunteerService,
			impl.NewAnnouncementService,
			impl.NewAnalyticsService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewMenuHandler,
			handler.NewCartHandler,
			handler.NewSaleHandler,
			handler.NewPreOrderHandler,
			handler.NewTeamHandler,
			handler.NewVolunteerHandler,
			handler.NewAnnouncementHandler,
			handler.NewAnalyticsHandler,
			handler.NewDeviceHandler,
			handler.NewUploadHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// bootstrapAdmin creates the configured admin account once the database is up.
func bootstrapAdmin(lc fx.Lifecycle, authUC usecase.AuthUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(authUC.EnsureBootstrapAdmin(ctx), "failed to bootstrap admin")
		},
	})
}
