// Package delivery defines the contract shared by every inbound transport.
package delivery

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
)

// Delivery is a long-running server started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}

// RunParams collects every delivery provided into the "deliveries" group.
type RunParams struct {
	fx.In
	fx.Shutdowner

	Ctx        context.Context
	Logger     *slog.Logger
	Deliveries []Delivery `group:"deliveries"`
}

// Run serves each delivery on its own goroutine. The first one to fail shuts
// the whole application down with exit code 1 so OnStop hooks still run.
func Run(params RunParams) {
	for _, d := range params.Deliveries {
		go func() {
			err := d.Serve(params.Ctx)
			if err == nil {
				return
			}

			params.Logger.Error("Delivery stopped", slog.Any("error", err))
			if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
				params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
				os.Exit(1)
			}
		}()
	}
}
