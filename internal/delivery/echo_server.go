package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"cafe/config"
	"cafe/internal/delivery/middleware"
	"cafe/internal/domain/lifecycle"
	"cafe/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// EchoServer is an echo instance bound to the fx lifecycle. Every request
// passes panic recovery, request id tagging and access logging before the
// routes added by the owning transport.
type EchoServer struct {
	Echo *echo.Echo

	name   string
	addr   string
	h2c    *http2.Server
	logger *slog.Logger
}

// EchoOption tweaks an EchoServer before it is registered.
type EchoOption func(*EchoServer)

// WithH2C serves cleartext HTTP/2 next to HTTP/1.1.
func WithH2C() EchoOption {
	return func(s *EchoServer) {
		s.h2c = &http2.Server{}
	}
}

// NewEchoServer builds the shared server shell and stops it with the app.
func NewEchoServer(name string, lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger, opts ...EchoOption) *EchoServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	// Request ids must exist before the access log reads them.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	s := &EchoServer{
		Echo:   e,
		name:   name,
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(cfg.HTTP.Port)),
		logger: logger.With(slog.String("server", name)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.h2c != nil {
		s.h2c.IdleTimeout = timeouts.IdleTimeout
	}

	lc.Append(fx.Hook{OnStop: s.stop})

	return s
}

// Serve blocks until the listener fails or the server is shut down.
func (s *EchoServer) Serve(_ context.Context) error {
	s.logger.Info("HTTP server listening", slog.String("addr", s.addr), slog.Bool("h2c", s.h2c != nil))

	var err error
	if s.h2c != nil {
		err = s.Echo.StartH2CServer(s.addr, s.h2c)
	} else {
		err = s.Echo.Start(s.addr)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *EchoServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("HTTP server shutting down")

	return errors.WithStack(s.Echo.Shutdown(ctx))
}
