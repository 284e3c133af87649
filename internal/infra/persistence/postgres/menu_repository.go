package postgres

import (
	"context"

	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/domain/service"
	"cafe/internal/errors"
	"cafe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// menuRepository implements the repository.MenuRepository interface.
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository is the constructor for menuRepository.
func NewMenuRepository(db *gorm.DB) repository.MenuRepository {
	return &menuRepository{
		db: db,
	}
}

// Create persists a new menu item.
func (repo *menuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMenuItem
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("menu item violates a check constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create menu item")
	}

	*item = *toMenuItemDomain(itemM)

	return notifyCatalog(ctx, repo.db, service.CatalogEventUpsert, item.ID)
}

// FindByID retrieves a single item.
func (repo *menuRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var itemM model.MenuItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item by ID")
	}

	return toMenuItemDomain(&itemM), nil
}

// FindByIDs retrieves the existing items among ids.
func (repo *menuRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.MenuItem, error) {
	if len(ids) == 0 {
		return []*entity.MenuItem{}, nil
	}

	var itemModels []*model.MenuItemModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find menu items by IDs")
	}

	return toMenuItemDomains(itemModels), nil
}

// LockByIDs selects the items FOR UPDATE in ascending id order so concurrent
// checkouts always acquire row locks in the same order.
func (repo *menuRepository) LockByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.MenuItem, error) {
	if len(ids) == 0 {
		return []*entity.MenuItem{}, nil
	}

	var itemModels []*model.MenuItemModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id IN ?", ids).
		Order("id").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to lock menu items")
	}

	return toMenuItemDomains(itemModels), nil
}

// List returns the items matching filter ordered by name.
func (repo *menuRepository) List(ctx context.Context, filter repository.MenuFilter) ([]*entity.MenuItem, error) {
	var itemModels []*model.MenuItemModel

	query := repo.db.WithContext(ctx)
	if filter.PreOrderOnly != nil {
		query = query.Where("is_pre_order_only = ?", *filter.PreOrderOnly)
	}
	if filter.InStockOnly {
		query = query.Where("stock > 0 AND availability = ?", string(entity.AvailabilityInStock))
	}

	if err := query.Order("name").Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	return toMenuItemDomains(itemModels), nil
}

// Update replaces the editable fields of an item. Stock is only changed
// through SetStock and DecrementStock.
func (repo *menuRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)

	result := repo.db.WithContext(ctx).
		Model(itemM).
		Clauses(clause.Returning{}).
		Select("name", "description", "price", "availability", "image_ref", "is_pre_order_only").
		Updates(itemM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateMenuItem
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update menu item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	*item = *toMenuItemDomain(itemM)

	return notifyCatalog(ctx, repo.db, service.CatalogEventUpsert, item.ID)
}

// SetStock sets an absolute stock level and derives availability from it.
func (repo *menuRepository) SetStock(ctx context.Context, id uuid.UUID, stock int) (*entity.MenuItem, error) {
	itemM := model.MenuItemModel{ID: id}

	result := repo.db.WithContext(ctx).
		Model(&itemM).
		Clauses(clause.Returning{}).
		Updates(map[string]any{
			"stock":        stock,
			"availability": string(entity.AvailabilityForStock(stock)),
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("stock cannot be negative")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to set stock")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrMenuItemNotFound
	}

	if err := notifyCatalog(ctx, repo.db, service.CatalogEventUpsert, id); err != nil {
		return nil, err
	}

	return toMenuItemDomain(&itemM), nil
}

// DecrementStock subtracts quantity with a single conditional UPDATE. The
// WHERE clause is the compare-and-swap: no row is touched unless enough
// stock remains at execution time.
func (repo *menuRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (*entity.MenuItem, error) {
	itemM := model.MenuItemModel{ID: id}

	result := decrementStock(repo.db.WithContext(ctx), &itemM, quantity)

	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindByID(ctx, id); err != nil {
			return nil, err
		}

		return nil, repository.ErrInsufficientStock
	}

	if err := notifyCatalog(ctx, repo.db, service.CatalogEventUpsert, id); err != nil {
		return nil, err
	}

	return toMenuItemDomain(&itemM), nil
}

// decrementStock runs the guarded UPDATE and scans the new row into itemM.
// Availability follows the remaining stock in the same statement.
func decrementStock(db *gorm.DB, itemM *model.MenuItemModel, quantity int) *gorm.DB {
	return db.Model(itemM).
		Clauses(clause.Returning{}).
		Where("stock >= ?", quantity).
		Updates(map[string]any{
			"stock": gorm.Expr("stock - ?", quantity),
			"availability": gorm.Expr("CASE WHEN stock - ? > 0 THEN ? ELSE ? END",
				quantity, string(entity.AvailabilityInStock), string(entity.AvailabilitySoldOut)),
		})
}

// Delete removes an item.
func (repo *menuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MenuItemModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete menu item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return notifyCatalog(ctx, repo.db, service.CatalogEventDelete, id)
}

// --- Mapper Functions ---

func toMenuItemDomain(data *model.MenuItemModel) *entity.MenuItem {
	if data == nil {
		return nil
	}

	return &entity.MenuItem{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		Price:          data.Price,
		Stock:          data.Stock,
		Availability:   entity.Availability(data.Availability),
		ImageRef:       data.ImageRef,
		IsPreOrderOnly: data.IsPreOrderOnly,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toMenuItemDomains(data []*model.MenuItemModel) []*entity.MenuItem {
	items := make([]*entity.MenuItem, 0, len(data))
	for _, itemM := range data {
		items = append(items, toMenuItemDomain(itemM))
	}

	return items
}

func fromMenuItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	if data == nil {
		return nil
	}

	return &model.MenuItemModel{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		Price:          data.Price,
		Stock:          data.Stock,
		Availability:   string(data.Availability),
		ImageRef:       data.ImageRef,
		IsPreOrderOnly: data.IsPreOrderOnly,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
