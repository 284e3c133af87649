package postgres

import (
	"context"

	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/errors"
	"cafe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// preOrderRepository implements the repository.PreOrderRepository interface.
type preOrderRepository struct {
	db *gorm.DB
}

// NewPreOrderRepository is the constructor for preOrderRepository.
func NewPreOrderRepository(db *gorm.DB) repository.PreOrderRepository {
	return &preOrderRepository{
		db: db,
	}
}

// Create persists a new pre-order.
func (repo *preOrderRepository) Create(ctx context.Context, order *entity.PreOrder) error {
	orderM := fromPreOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required pre-order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pre-order")
	}

	order.ID = orderM.ID
	order.OrderedAt = orderM.OrderedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves a single pre-order.
func (repo *preOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PreOrder, error) {
	var orderM model.PreOrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find pre-order by ID")
	}

	return toPreOrderDomain(&orderM), nil
}

// List returns pre-orders newest first, optionally filtered by status.
func (repo *preOrderRepository) List(ctx context.Context, status *entity.PreOrderStatus) ([]*entity.PreOrder, error) {
	var orderModels []*model.PreOrderModel

	query := repo.db.WithContext(ctx)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	if err := query.Order("ordered_at DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pre-orders")
	}

	orders := make([]*entity.PreOrder, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toPreOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateStatus applies the transition only while the stored status is still from.
func (repo *preOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.PreOrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PreOrderModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update pre-order status")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.PreOrderModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check pre-order existence")
		}
		if count == 0 {
			return repository.ErrPreOrderNotFound
		}

		return repository.ErrPreOrderStatusChanged
	}

	return nil
}

// --- Mapper Functions ---

func toPreOrderDomain(data *model.PreOrderModel) *entity.PreOrder {
	if data == nil {
		return nil
	}

	stored := data.Items.Data()
	items := make(map[uuid.UUID]int, len(stored))
	for rawID, qty := range stored {
		id, err := uuid.Parse(rawID)
		if err != nil {
			continue
		}
		items[id] = qty
	}

	return &entity.PreOrder{
		ID:              data.ID,
		StudentName:     data.StudentName,
		StudentClass:    data.StudentClass,
		Items:           items,
		PaymentProofURL: data.PaymentProofURL,
		PaymentProofKey: data.PaymentProofKey,
		Total:           data.Total,
		Status:          entity.PreOrderStatus(data.Status),
		PickupDate:      data.PickupDate,
		OrderedAt:       data.OrderedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromPreOrderDomain(data *entity.PreOrder) *model.PreOrderModel {
	if data == nil {
		return nil
	}

	items := make(map[string]int, len(data.Items))
	for id, qty := range data.Items {
		items[id.String()] = qty
	}

	return &model.PreOrderModel{
		ID:              data.ID,
		StudentName:     data.StudentName,
		StudentClass:    data.StudentClass,
		Items:           datatypes.NewJSONType(items),
		PaymentProofURL: data.PaymentProofURL,
		PaymentProofKey: data.PaymentProofKey,
		Total:           data.Total,
		Status:          string(data.Status),
		PickupDate:      data.PickupDate,
		OrderedAt:       data.OrderedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
