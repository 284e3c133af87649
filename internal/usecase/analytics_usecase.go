package usecase

import (
	"context"

	"cafe/internal/domain/entity"
)

// Dashboard is the admin analytics overview.
type Dashboard struct {
	// DailyRevenue covers the last seven days, oldest first, zero-filled.
	DailyRevenue []*entity.DailyRevenue   `json:"daily_revenue"`
	TopItems     []*entity.ItemPopularity `json:"top_items"`
	ClassRevenue []*entity.ClassRevenue   `json:"class_revenue"`
}

// AnalyticsUsecase aggregates sales for the admin dashboard.
type AnalyticsUsecase interface {
	GetDashboard(ctx context.Context) (*Dashboard, error)
}
