// Package drafting writes announcement drafts for staff.
package drafting

import (
	"log/slog"
	"net/http"
	"time"

	"cafe/config"
	"cafe/internal/domain/constants"
	"cafe/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 20 * time.Second

// NewAnnouncementDrafter selects the drafter from configuration. The template
// drafter is used when no provider or endpoint is configured.
func NewAnnouncementDrafter(cfg *config.Config, logger *slog.Logger) (service.AnnouncementDrafter, error) {
	dc := cfg.Drafter
	if dc == nil || dc.Provider == "" || dc.Provider == constants.DrafterProviderTemplate {
		logger.Info("Using template announcement drafter")

		return NewTemplateDrafter(), nil
	}

	switch dc.Provider {
	case constants.DrafterProviderHTTP:
		if dc.Endpoint == "" {
			return nil, errors.New("endpoint is required for http drafter")
		}

		timeout := dc.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}

		logger.Info("Using HTTP announcement drafter", slog.String("endpoint", dc.Endpoint))

		return NewHTTPDrafter(dc.Endpoint, dc.APIKey, &http.Client{Timeout: timeout}), nil
	default:
		return nil, errors.Errorf("unknown drafter provider: %s", dc.Provider)
	}
}
