package postgres

import (
	"context"
	"time"

	"cafe/internal/domain/entity"
	"cafe/internal/domain/repository"
	"cafe/internal/errors"
	"cafe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// analyticsRepository runs aggregate queries. Every query carries the
// dbresolver read clause so it is routed to a replica when one is configured.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

func (repo *analyticsRepository) reader(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Read)
}

type saleAmountRow struct {
	CreatedAt time.Time
	Amount    int64
}

// DailyRevenue groups sales by calendar day in loc. Days are bucketed in Go
// because loc may be a zone name Postgres does not know (e.g. "Local").
func (repo *analyticsRepository) DailyRevenue(ctx context.Context, since time.Time, loc *time.Location) ([]*entity.DailyRevenue, error) {
	var rows []saleAmountRow

	if err := repo.reader(ctx).
		Model(&model.SaleModel{}).
		Select("created_at, unit_price * quantity AS amount").
		Where("created_at >= ?", since).
		Order("created_at").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate daily revenue")
	}

	result := make([]*entity.DailyRevenue, 0)
	for _, row := range rows {
		local := row.CreatedAt.In(loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

		if n := len(result); n > 0 && result[n-1].Day.Equal(day) {
			result[n-1].Revenue += row.Amount

			continue
		}
		result = append(result, &entity.DailyRevenue{Day: day, Revenue: row.Amount})
	}

	return result, nil
}

type itemPopularityRow struct {
	ItemID   uuid.UUID
	ItemName string
	Quantity int64
}

// TopItems returns the best selling items by quantity.
func (repo *analyticsRepository) TopItems(ctx context.Context, limit int) ([]*entity.ItemPopularity, error) {
	var rows []itemPopularityRow

	if err := repo.reader(ctx).
		Model(&model.SaleModel{}).
		Select("item_id, MAX(item_name) AS item_name, SUM(quantity) AS quantity").
		Group("item_id").
		Order("quantity DESC, item_name").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate top items")
	}

	result := make([]*entity.ItemPopularity, 0, len(rows))
	for _, row := range rows {
		result = append(result, &entity.ItemPopularity{
			ItemID:   row.ItemID,
			ItemName: row.ItemName,
			Quantity: row.Quantity,
		})
	}

	return result, nil
}

type classRevenueRow struct {
	StudentClass string
	Revenue      int64
	Orders       int64
}

// RevenueByClass sums pre-order totals per student class.
func (repo *analyticsRepository) RevenueByClass(ctx context.Context) ([]*entity.ClassRevenue, error) {
	var rows []classRevenueRow

	if err := repo.reader(ctx).
		Model(&model.PreOrderModel{}).
		Select("student_class, SUM(total) AS revenue, COUNT(*) AS orders").
		Group("student_class").
		Order("revenue DESC, student_class").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate class revenue")
	}

	result := make([]*entity.ClassRevenue, 0, len(rows))
	for _, row := range rows {
		result = append(result, &entity.ClassRevenue{
			StudentClass: row.StudentClass,
			Revenue:      row.Revenue,
			Orders:       row.Orders,
		})
	}

	return result, nil
}
