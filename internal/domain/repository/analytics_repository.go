package repository

import (
	"context"
	"time"

	"cafe/internal/domain/entity"
)

// AnalyticsRepository aggregates sales and pre-orders. Implementations may
// read from replicas.
type AnalyticsRepository interface {
	// DailyRevenue returns revenue per day for sales at or after since. Days
	// without sales are omitted.
	DailyRevenue(ctx context.Context, since time.Time, loc *time.Location) ([]*entity.DailyRevenue, error)

	// TopItems returns the best selling items by quantity.
	TopItems(ctx context.Context, limit int) ([]*entity.ItemPopularity, error)

	// RevenueByClass returns pre-order revenue per student class.
	RevenueByClass(ctx context.Context) ([]*entity.ClassRevenue, error)
}
