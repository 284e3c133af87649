// Package firebase builds the Firebase Admin SDK app shared by sign-in and push delivery.
package firebase

import (
	"context"
	"log/slog"

	"cafe/config"
	"cafe/internal/errors"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewApp initialises the Firebase app. It returns a nil app when neither
// Firebase sign-in nor messaging is enabled.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*firebase.App, error) {
	fbCfg := cfg.Firebase
	if fbCfg == nil || (!fbCfg.EnableAuth && !fbCfg.EnableMessaging) {
		logger.Info("Firebase disabled")

		return nil, nil
	}

	var opts []option.ClientOption
	if fbCfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(fbCfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if fbCfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: fbCfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	logger.Info("Firebase app initialized",
		slog.String("project_id", fbCfg.ProjectID),
		slog.Bool("auth", fbCfg.EnableAuth),
		slog.Bool("messaging", fbCfg.EnableMessaging),
	)

	return app, nil
}
