package postgres

import (
	"testing"

	"cafe/internal/domain/entity"
	"cafe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB builds statements with the Postgres dialect without connecting.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{DSN: "host=localhost dbname=cafe sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db
}

func TestDecrementStock_GuardedUpdate(t *testing.T) {
	id := uuid.New()

	stmt := decrementStock(dryRunDB(t), &model.MenuItemModel{ID: id}, 3).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, `UPDATE "menu_items" SET`)
	assert.Contains(t, sql, `"stock"=stock - $`)
	assert.Contains(t, sql, `"availability"=CASE WHEN stock - $`)
	assert.Contains(t, sql, "WHERE stock >= $")
	assert.Contains(t, sql, `"menu_items"."id" = $`)
	assert.Contains(t, sql, "RETURNING")

	assert.Contains(t, stmt.Vars, 3)
	assert.Contains(t, stmt.Vars, id)
	assert.Contains(t, stmt.Vars, string(entity.AvailabilityInStock))
	assert.Contains(t, stmt.Vars, string(entity.AvailabilitySoldOut))
}
