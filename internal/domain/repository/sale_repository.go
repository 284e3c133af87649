package repository

import (
	"context"

	"cafe/internal/domain/entity"
)

// SaleRepository appends and reads sale records.
type SaleRepository interface {
	// CreateBatch inserts all records. CreatedAt is assigned by the database.
	CreateBatch(ctx context.Context, sales []*entity.SaleRecord) error

	// ListRecent returns the newest records first.
	ListRecent(ctx context.Context, limit int) ([]*entity.SaleRecord, error)
}
