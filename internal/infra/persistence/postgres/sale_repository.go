package postgres

import (
	"context"

	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/errors"
	"cafe/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// saleRepository implements the repository.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// CreateBatch inserts all records in one statement. IDs and CreatedAt come
// back from the database.
func (repo *saleRepository) CreateBatch(ctx context.Context, sales []*entity.SaleRecord) error {
	if len(sales) == 0 {
		return nil
	}

	saleModels := make([]*model.SaleModel, 0, len(sales))
	for _, sale := range sales {
		saleModels = append(saleModels, fromSaleDomain(sale))
	}

	if err := repo.db.WithContext(ctx).Create(&saleModels).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("sale quantity must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record sales")
	}

	for i, saleM := range saleModels {
		sales[i].ID = saleM.ID
		sales[i].CreatedAt = saleM.CreatedAt
	}

	return nil
}

// ListRecent returns the newest records first.
func (repo *saleRepository) ListRecent(ctx context.Context, limit int) ([]*entity.SaleRecord, error) {
	var saleModels []*model.SaleModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&saleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	sales := make([]*entity.SaleRecord, 0, len(saleModels))
	for _, saleM := range saleModels {
		sales = append(sales, toSaleDomain(saleM))
	}

	return sales, nil
}

// --- Mapper Functions ---

func toSaleDomain(data *model.SaleModel) *entity.SaleRecord {
	if data == nil {
		return nil
	}

	return &entity.SaleRecord{
		ID:        data.ID,
		ItemID:    data.ItemID,
		ItemName:  data.ItemName,
		Quantity:  data.Quantity,
		UnitPrice: data.UnitPrice,
		StaffID:   data.StaffID,
		CreatedAt: data.CreatedAt,
	}
}

// fromSaleDomain leaves CreatedAt unset so the column default (now()) applies.
func fromSaleDomain(data *entity.SaleRecord) *model.SaleModel {
	if data == nil {
		return nil
	}

	return &model.SaleModel{
		ID:        data.ID,
		ItemID:    data.ItemID,
		ItemName:  data.ItemName,
		Quantity:  data.Quantity,
		UnitPrice: data.UnitPrice,
		StaffID:   data.StaffID,
	}
}
