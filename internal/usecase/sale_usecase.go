package usecase

import (
	"context"

	"cafe/internal/domain/entity"

	"github.com/google/uuid"
)

// Receipt is the outcome of a committed sale.
type Receipt struct {
	Sales []*entity.SaleRecord `json:"sales"`
	Total int64                `json:"total"`
}

// SaleUsecase records sales and adjusts stock atomically.
type SaleUsecase interface {
	// Checkout commits every line or none. Lines for the same item are
	// summed; a line exceeding the stock left at commit time fails the sale.
	Checkout(ctx context.Context, staffID uuid.UUID, lines []entity.SaleLine) (*Receipt, error)

	// ListRecentSales returns the newest sale records first.
	ListRecentSales(ctx context.Context, limit int) ([]*entity.SaleRecord, error)
}
