package postgres

import (
	"context"
	"encoding/json"

	"cafe/internal/domain/constants"
	"cafe/internal/domain/service"
	"cafe/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// notifyCatalog queues a change notification on the catalog channel. Inside a
// transaction Postgres delivers it only on commit, in commit order.
func notifyCatalog(ctx context.Context, db *gorm.DB, kind service.CatalogEventKind, itemID uuid.UUID) error {
	payload, err := json.Marshal(service.CatalogEvent{Kind: kind, ItemID: itemID})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := db.WithContext(ctx).
		Exec("SELECT pg_notify(?, ?)", constants.CatalogChannel, string(payload)).Error; err != nil {
		return errors.Wrap(err, "failed to notify catalog change")
	}

	return nil
}

func decodeCatalogEvent(payload string) (service.CatalogEvent, error) {
	var event service.CatalogEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return event, errors.Wrap(err, "failed to decode catalog notification")
	}

	switch event.Kind {
	case service.CatalogEventUpsert, service.CatalogEventDelete:
		return event, nil
	default:
		return event, errors.Errorf("unknown catalog event kind %q", event.Kind)
	}
}
