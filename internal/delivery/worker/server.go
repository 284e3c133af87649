package worker

import (
	"log/slog"
	"net/http"

	"cafe/config"
	"cafe/internal/delivery"
	"cafe/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer exposes the Pub/Sub push endpoint and a liveness probe.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := delivery.NewEchoServer("notify-worker", params.Lc, params.Cfg, params.Logger)

	srv.Echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	srv.Echo.POST("/pubsub/push", params.PushHandler.HandlePush)

	return srv, nil
}
