package postgres

import (
	"context"
	"log/slog"
	"time"

	"cafe/internal/domain/constants"
	"cafe/internal/domain/lifecycle"
	"cafe/internal/errors"
	"cafe/internal/infra/realtime"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	listenMinBackoff = 500 * time.Millisecond
	listenMaxBackoff = 30 * time.Second
)

// CatalogListener holds one connection from the gorm pool in LISTEN mode and
// forwards catalog notifications to the hub.
type CatalogListener struct {
	db     *gorm.DB
	hub    *realtime.Hub
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}

	// listenOnce calls connected once LISTEN succeeded.
	listenOnce func(ctx context.Context, connected func()) error
	after      func(time.Duration) <-chan time.Time
}

// ListenerParams holds dependencies for the catalog listener
type ListenerParams struct {
	fx.In

	Lc     fx.Lifecycle
	DB     *gorm.DB
	Hub    *realtime.Hub
	Logger *slog.Logger
}

// NewCatalogListener registers the listener with the application lifecycle.
func NewCatalogListener(params ListenerParams) *CatalogListener {
	l := &CatalogListener{
		db:     params.DB,
		hub:    params.Hub,
		logger: params.Logger,
		done:   make(chan struct{}),
		after:  time.After,
	}
	l.listenOnce = l.listen

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ctx, cancel := context.WithCancel(context.Background())
			l.cancel = cancel
			go l.run(ctx)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			l.cancel()
			select {
			case <-l.done:
				return nil
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "catalog listener did not stop")
			}
		},
	})

	return l
}

func (l *CatalogListener) run(ctx context.Context) {
	defer close(l.done)

	backoff := listenMinBackoff
	for {
		err := l.listenOnce(ctx, func() { backoff = listenMinBackoff })
		if ctx.Err() != nil {
			return
		}

		l.logger.Warn("Catalog listener disconnected",
			slog.Any("error", err),
			slog.Duration("retryIn", backoff),
		)

		select {
		case <-ctx.Done():
			return
		case <-l.after(backoff):
		}
		backoff = min(backoff*2, listenMaxBackoff)
	}
}

func (l *CatalogListener) listen(ctx context.Context, connected func()) error {
	sqlDB, err := l.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to acquire listen connection")
	}
	defer conn.Close()

	return conn.Raw(func(driverConn any) error {
		stdConn, ok := driverConn.(*stdlib.Conn)
		if !ok {
			return errors.Errorf("unexpected driver connection %T", driverConn)
		}
		pgConn := stdConn.Conn()

		channel := pgx.Identifier{constants.CatalogChannel}.Sanitize()
		if _, err := pgConn.Exec(ctx, "LISTEN "+channel); err != nil {
			return errors.Wrap(err, "failed to listen")
		}
		defer func() {
			// The connection goes back to the pool.
			_, _ = pgConn.Exec(context.Background(), "UNLISTEN "+channel)
		}()

		l.logger.Info("Listening for catalog changes", slog.String("channel", constants.CatalogChannel))
		connected()

		// Changes committed while disconnected were never delivered.
		l.hub.Resync()

		for {
			notification, err := pgConn.WaitForNotification(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to wait for notification")
			}

			event, err := decodeCatalogEvent(notification.Payload)
			if err != nil {
				l.logger.Warn("Dropping malformed catalog notification",
					slog.String("payload", notification.Payload),
					slog.Any("error", err),
				)

				continue
			}

			l.hub.Publish(event)
		}
	})
}
