package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"cafe/config"
	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/constants"
	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/domain/service"
	"cafe/internal/errors"
	"cafe/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// menuService implements the MenuUsecase interface.
type menuService struct {
	menuRepo      repository.MenuRepository
	storage       service.BlobStorage
	watcher       service.CatalogWatcher
	publicBaseURL string
	logger        *slog.Logger
}

// MenuServiceParams holds dependencies for MenuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	MenuRepo repository.MenuRepository
	Storage  service.BlobStorage
	Watcher  service.CatalogWatcher
	Config   *config.Config
	Logger   *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	publicBaseURL := ""
	if params.Config != nil && params.Config.Storage != nil {
		publicBaseURL = params.Config.Storage.PublicBaseURL
	}

	return &menuService{
		menuRepo:      params.MenuRepo,
		storage:       params.Storage,
		watcher:       params.Watcher,
		publicBaseURL: publicBaseURL,
		logger:        params.Logger,
	}
}

func (srv *menuService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func scopeFilter(scope usecase.MenuScope, inStockOnly bool) (repository.MenuFilter, error) {
	filter := repository.MenuFilter{InStockOnly: inStockOnly}

	switch scope {
	case usecase.MenuScopeAll, "":
	case usecase.MenuScopeDaily:
		preOrderOnly := false
		filter.PreOrderOnly = &preOrderOnly
	case usecase.MenuScopePreOrder:
		preOrderOnly := true
		filter.PreOrderOnly = &preOrderOnly
	default:
		return filter, domainerrors.NewFieldError(map[string]string{"scope": "unknown menu scope"})
	}

	return filter, nil
}

// mapMenuError translates catalog repository sentinels into application errors.
func mapMenuError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrMenuItemNotFound):
		return errors.Wrap(domainerrors.ErrMenuItemNotFound, message)
	case errors.Is(err, repository.ErrDuplicateMenuItem):
		return errors.Wrap(domainerrors.ErrMenuItemAlreadyExists, message)
	default:
		return errors.Wrap(err, message)
	}
}

func (srv *menuService) ListMenu(ctx context.Context, scope usecase.MenuScope, inStockOnly bool) ([]*entity.MenuItem, error) {
	filter, err := scopeFilter(scope, inStockOnly)
	if err != nil {
		return nil, err
	}

	items, err := srv.menuRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	return items, nil
}

func (srv *menuService) GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := srv.menuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapMenuError(err, "failed to find menu item")
	}

	return item, nil
}

func validateMenuFields(name string, price int64) map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(name) == "" {
		fields["name"] = "name is required"
	}
	if price < 0 {
		fields["price"] = "price must not be negative"
	}

	return fields
}

func (srv *menuService) CreateMenuItem(ctx context.Context, input *usecase.CreateMenuItemInput) (*entity.MenuItem, error) {
	fields := validateMenuFields(input.Name, input.Price)
	if input.Stock < 0 {
		fields["stock"] = "stock must not be negative"
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewFieldError(fields)
	}

	now := time.Now()
	item := &entity.MenuItem{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(input.Name),
		Description:    strings.TrimSpace(input.Description),
		Price:          input.Price,
		Stock:          input.Stock,
		Availability:   entity.AvailabilityForStock(input.Stock),
		IsPreOrderOnly: input.IsPreOrderOnly,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := srv.menuRepo.Create(ctx, item); err != nil {
		srv.log(ctx).Warn("Failed to create menu item", slog.String("name", item.Name), slog.Any("error", err))

		return nil, mapMenuError(err, "failed to create menu item")
	}

	srv.log(ctx).Info("Menu item created", slog.Any("itemID", item.ID), slog.String("name", item.Name))

	return item, nil
}

func (srv *menuService) UpdateMenuItem(ctx context.Context, input *usecase.UpdateMenuItemInput) (*entity.MenuItem, error) {
	fields := validateMenuFields(input.Name, input.Price)
	if input.Availability != "" && !input.Availability.IsValid() {
		fields["availability"] = "availability must be \"In Stock\" or \"Sold Out\""
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewFieldError(fields)
	}

	item, err := srv.menuRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, mapMenuError(err, "failed to find menu item")
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Description = strings.TrimSpace(input.Description)
	item.Price = input.Price
	item.IsPreOrderOnly = input.IsPreOrderOnly
	if input.Availability != "" {
		item.Availability = input.Availability
	}
	// An empty item cannot be offered, whatever the admin picked.
	if item.Stock == 0 {
		item.Availability = entity.AvailabilitySoldOut
	}

	if err := srv.menuRepo.Update(ctx, item); err != nil {
		return nil, mapMenuError(err, "failed to update menu item")
	}

	return item, nil
}

func (srv *menuService) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	item, err := srv.menuRepo.FindByID(ctx, id)
	if err != nil {
		return mapMenuError(err, "failed to find menu item")
	}

	if err := srv.menuRepo.Delete(ctx, id); err != nil {
		return mapMenuError(err, "failed to delete menu item")
	}

	srv.deleteImage(ctx, item.ImageRef)
	srv.log(ctx).Info("Menu item deleted", slog.Any("itemID", id))

	return nil
}

func (srv *menuService) SetStock(ctx context.Context, id uuid.UUID, stock int) (*entity.MenuItem, error) {
	if stock < 0 {
		return nil, domainerrors.NewFieldError(map[string]string{"stock": "stock must not be negative"})
	}

	item, err := srv.menuRepo.SetStock(ctx, id, stock)
	if err != nil {
		return nil, mapMenuError(err, "failed to set stock")
	}

	srv.log(ctx).Info("Stock set", slog.Any("itemID", id), slog.Int("stock", stock))

	return item, nil
}

func (srv *menuService) UploadImage(ctx context.Context, id uuid.UUID, file *usecase.UploadedFile) (*entity.MenuItem, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, domainerrors.NewFieldError(map[string]string{"image": "image file is required"})
	}
	if !strings.HasPrefix(file.ContentType, "image/") {
		return nil, domainerrors.NewFieldError(map[string]string{"image": "file must be an image"})
	}

	item, err := srv.menuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapMenuError(err, "failed to find menu item")
	}

	key := constants.MenuImagePrefix + "/" + id.String() + "_" +
		strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + sanitizeFileName(file.FileName)

	publicURL, err := srv.storage.Upload(ctx, key, file.ContentType, file.Data)
	if err != nil {
		srv.log(ctx).Error("Failed to upload menu image", slog.Any("itemID", id), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	previous := item.ImageRef
	item.ImageRef = publicURL
	if err := srv.menuRepo.Update(ctx, item); err != nil {
		srv.deleteBlob(context.WithoutCancel(ctx), key)

		return nil, mapMenuError(err, "failed to store image reference")
	}

	srv.deleteImage(ctx, previous)

	return item, nil
}

// deleteImage removes a menu picture we uploaded earlier. Failures are only logged.
func (srv *menuService) deleteImage(ctx context.Context, ref string) {
	if ref == "" {
		return
	}

	key, ok := blobKeyFromURL(srv.publicBaseURL, ref)
	if !ok || !strings.HasPrefix(key, constants.MenuImagePrefix+"/") {
		return
	}

	srv.deleteBlob(ctx, key)
}

func (srv *menuService) deleteBlob(ctx context.Context, key string) {
	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete blob", slog.String("key", key), slog.Any("error", err))
	}
}

func (srv *menuService) WatchMenu(ctx context.Context, scope usecase.MenuScope) (<-chan []*entity.MenuItem, error) {
	filter, err := scopeFilter(scope, false)
	if err != nil {
		return nil, err
	}

	// Subscribe before the first read so no commit falls between the two.
	sub, err := srv.watcher.Watch(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch catalog")
	}

	initial, err := srv.menuRepo.List(ctx, filter)
	if err != nil {
		sub.Cancel()

		return nil, errors.Wrap(err, "failed to list menu items")
	}

	out := make(chan []*entity.MenuItem, 1)
	go srv.streamMenu(ctx, sub, filter, initial, out)

	return out, nil
}

// streamMenu keeps at most one listing pending; bursts of changes collapse
// into the newest listing.
func (srv *menuService) streamMenu(
	ctx context.Context,
	sub service.CatalogSubscription,
	filter repository.MenuFilter,
	pending []*entity.MenuItem,
	out chan<- []*entity.MenuItem,
) {
	defer close(out)
	defer sub.Cancel()

	dirty := true
	for {
		var send chan<- []*entity.MenuItem
		if dirty {
			send = out
		}

		select {
		case <-ctx.Done():
			return
		case send <- pending:
			dirty = false
		case _, ok := <-sub.Events():
			if !ok {
				return
			}

			items, err := srv.menuRepo.List(ctx, filter)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				srv.log(ctx).Warn("Failed to refresh watched menu", slog.Any("error", err))

				continue
			}
			pending, dirty = items, true
		}
	}
}
