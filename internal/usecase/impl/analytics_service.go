package impl

import (
	"context"
	"time"

	"cafe/config"
	"cafe/internal/domain/entity"
	"cafe/internal/domain/repository"
	"cafe/internal/errors"
	"cafe/internal/usecase"

	"go.uber.org/fx"
)

const (
	dashboardDays     = 7
	dashboardTopItems = 5
)

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	location      *time.Location
	now           func() time.Time
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	AnalyticsRepo repository.AnalyticsRepository
	Config        *config.Config
}

// NewAnalyticsService is the constructor for analyticsService. Days are
// counted in the pre-order time zone.
func NewAnalyticsService(params AnalyticsServiceParams) (usecase.AnalyticsUsecase, error) {
	location, err := params.Config.PreOrder.Location()
	if err != nil {
		return nil, err
	}

	return &analyticsService{
		analyticsRepo: params.AnalyticsRepo,
		location:      location,
		now:           time.Now,
	}, nil
}

func (srv *analyticsService) GetDashboard(ctx context.Context) (*usecase.Dashboard, error) {
	local := srv.now().In(srv.location)
	year, month, day := local.Date()
	first := time.Date(year, month, day-(dashboardDays-1), 0, 0, 0, 0, srv.location)

	revenue, err := srv.analyticsRepo.DailyRevenue(ctx, first, srv.location)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate daily revenue")
	}

	topItems, err := srv.analyticsRepo.TopItems(ctx, dashboardTopItems)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate top items")
	}

	classRevenue, err := srv.analyticsRepo.RevenueByClass(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate class revenue")
	}

	return &usecase.Dashboard{
		DailyRevenue: zeroFillDays(revenue, first, dashboardDays),
		TopItems:     topItems,
		ClassRevenue: classRevenue,
	}, nil
}

// zeroFillDays returns one entry per day starting at first, taking revenue
// from rows when present.
func zeroFillDays(rows []*entity.DailyRevenue, first time.Time, days int) []*entity.DailyRevenue {
	byDay := make(map[string]int64, len(rows))
	for _, row := range rows {
		byDay[row.Day.In(first.Location()).Format(time.DateOnly)] += row.Revenue
	}

	filled := make([]*entity.DailyRevenue, 0, days)
	for i := range days {
		day := first.AddDate(0, 0, i)
		filled = append(filled, &entity.DailyRevenue{Day: day, Revenue: byDay[day.Format(time.DateOnly)]})
	}

	return filled
}
