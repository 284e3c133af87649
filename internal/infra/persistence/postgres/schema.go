package postgres

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"slices"

	"cafe/internal/errors"

	"gorm.io/gorm"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// applySchema runs the embedded schema files in name order. Each file must be
// idempotent.
func applySchema(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	files, err := fs.Glob(schemaFS, "schema/*.sql")
	if err != nil {
		return errors.WithStack(err)
	}
	slices.Sort(files)

	for _, name := range files {
		stmt, err := schemaFS.ReadFile(name)
		if err != nil {
			return errors.Wrapf(err, "read %s", name)
		}

		if err := db.WithContext(ctx).Exec(string(stmt)).Error; err != nil {
			return errors.Wrapf(err, "apply %s", name)
		}

		logger.Debug("Applied schema file", slog.String("file", name))
	}

	return nil
}
