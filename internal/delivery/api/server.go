package api

import (
	"log/slog"

	"cafe/config"
	"cafe/internal/delivery"
	apimiddleware "cafe/internal/delivery/api/middleware"
	"cafe/internal/delivery/api/router"
	"cafe/internal/delivery/api/validator"

	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer assembles the staff and public API: CORS for the web clients,
// the body limit, envelope errors and validation, then every route.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := delivery.NewEchoServer("api", params.Lc, params.Cfg, params.Logger, delivery.WithH2C())
	e := srv.Echo

	cors := echomiddleware.DefaultCORSConfig
	if origins := params.Cfg.HTTP.AllowOrigins; len(origins) > 0 {
		cors.AllowOrigins = origins
	}
	e.Use(echomiddleware.CORSWithConfig(cors))
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return srv, nil
}
