package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/domain/service"
	mockRepo "cafe/internal/mocks/repository"
	mockSvc "cafe/internal/mocks/service"
	"cafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// menuServiceFixtures holds all test dependencies for menu service tests.
type menuServiceFixtures struct {
	service  usecase.MenuUsecase
	menuRepo *mockRepo.MockMenuRepository
	storage  *mockSvc.MockBlobStorage
	watcher  *mockSvc.MockCatalogWatcher
}

func createTestMenuService(t *testing.T) menuServiceFixtures {
	menuRepo := mockRepo.NewMockMenuRepository(t)
	storage := mockSvc.NewMockBlobStorage(t)
	watcher := mockSvc.NewMockCatalogWatcher(t)

	service := NewMenuService(MenuServiceParams{
		MenuRepo: menuRepo,
		Storage:  storage,
		Watcher:  watcher,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	})

	return menuServiceFixtures{
		service:  service,
		menuRepo: menuRepo,
		storage:  storage,
		watcher:  watcher,
	}
}

func TestMenuService_ListMenu_Scopes(t *testing.T) {
	daily, preOrder := false, true
	tests := []struct {
		name     string
		scope    usecase.MenuScope
		expected repository.MenuFilter
	}{
		{name: "all", scope: usecase.MenuScopeAll, expected: repository.MenuFilter{InStockOnly: true}},
		{name: "daily", scope: usecase.MenuScopeDaily, expected: repository.MenuFilter{PreOrderOnly: &daily, InStockOnly: true}},
		{name: "pre-order", scope: usecase.MenuScopePreOrder, expected: repository.MenuFilter{PreOrderOnly: &preOrder, InStockOnly: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMenuService(t)
			ctx := context.Background()

			fx.menuRepo.EXPECT().List(ctx, tt.expected).Return([]*entity.MenuItem{}, nil)

			items, err := fx.service.ListMenu(ctx, tt.scope, true)
			require.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}

func TestMenuService_ListMenu_UnknownScope(t *testing.T) {
	fx := createTestMenuService(t)

	_, err := fx.service.ListMenu(context.Background(), "weekly", false)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMenuService_CreateMenuItem(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()

	fx.menuRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(item *entity.MenuItem) bool {
			return item.Name == "Iced Latte" && item.Availability == entity.AvailabilitySoldOut && item.ID != uuid.Nil
		})).
		Return(nil)

	item, err := fx.service.CreateMenuItem(ctx, &usecase.CreateMenuItemInput{Name: "  Iced Latte ", Price: 18000, Stock: 0})
	require.NoError(t, err)
	assert.Equal(t, "Iced Latte", item.Name)
	assert.Equal(t, entity.AvailabilitySoldOut, item.Availability)
}

func TestMenuService_CreateMenuItem_Validation(t *testing.T) {
	fx := createTestMenuService(t)

	_, err := fx.service.CreateMenuItem(context.Background(), &usecase.CreateMenuItemInput{Name: " ", Price: -1, Stock: -3})

	var fieldErr *domainerrors.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, []string{"name", "price", "stock"}, sortedKeys(fieldErr.Fields()))
}

func TestMenuService_CreateMenuItem_Duplicate(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()

	fx.menuRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateMenuItem)

	_, err := fx.service.CreateMenuItem(ctx, &usecase.CreateMenuItemInput{Name: "Tea", Price: 5000, Stock: 3})

	assert.ErrorIs(t, err, domainerrors.ErrMenuItemAlreadyExists)
}

func TestMenuService_UpdateMenuItem_EmptyStockStaysSoldOut(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.menuRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.MenuItem{ID: id, Name: "Tea", Stock: 0, Availability: entity.AvailabilitySoldOut}, nil)
	fx.menuRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(item *entity.MenuItem) bool {
			return item.Availability == entity.AvailabilitySoldOut && item.Price == 6000
		})).
		Return(nil)

	item, err := fx.service.UpdateMenuItem(ctx, &usecase.UpdateMenuItemInput{
		ID:           id,
		Name:         "Tea",
		Price:        6000,
		Availability: entity.AvailabilityInStock,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AvailabilitySoldOut, item.Availability)
}

func TestMenuService_UpdateMenuItem_ManualSoldOut(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.menuRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.MenuItem{ID: id, Name: "Tea", Stock: 9, Availability: entity.AvailabilityInStock}, nil)
	fx.menuRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)

	item, err := fx.service.UpdateMenuItem(ctx, &usecase.UpdateMenuItemInput{
		ID:           id,
		Name:         "Tea",
		Price:        6000,
		Availability: entity.AvailabilitySoldOut,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AvailabilitySoldOut, item.Availability)
	assert.Equal(t, 9, item.Stock)
}

func TestMenuService_SetStock(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()
	id := uuid.New()

	_, err := fx.service.SetStock(ctx, id, -1)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	fx.menuRepo.EXPECT().SetStock(ctx, id, 12).Return(nil, repository.ErrMenuItemNotFound)
	_, err = fx.service.SetStock(ctx, id, 12)
	assert.ErrorIs(t, err, domainerrors.ErrMenuItemNotFound)
}

func TestMenuService_UploadImage_ReplacesPrevious(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()
	id := uuid.New()
	previous := "https://files.example.com/menu_images/old.png"

	fx.menuRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.MenuItem{ID: id, Name: "Cake", ImageRef: previous}, nil)
	fx.storage.EXPECT().
		Upload(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "menu_images/"+id.String()+"_") && strings.HasSuffix(key, "_cake.png")
		}), "image/png", []byte("png")).
		Return("https://files.example.com/menu_images/new.png", nil)
	fx.menuRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	fx.storage.EXPECT().Delete(ctx, "menu_images/old.png").Return(nil)

	item, err := fx.service.UploadImage(ctx, id, &usecase.UploadedFile{FileName: "cake.png", ContentType: "image/png", Data: []byte("png")})
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/menu_images/new.png", item.ImageRef)
}

func TestMenuService_UploadImage_CompensatesFailedUpdate(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.menuRepo.EXPECT().FindByID(ctx, id).Return(&entity.MenuItem{ID: id, Name: "Cake"}, nil)
	fx.storage.EXPECT().Upload(ctx, mock.Anything, "image/jpeg", mock.Anything).Return("https://files.example.com/menu_images/x.jpg", nil)
	fx.menuRepo.EXPECT().Update(ctx, mock.Anything).Return(errors.New("connection reset"))
	fx.storage.EXPECT().
		Delete(mock.Anything, mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, "menu_images/") })).
		Return(nil)

	_, err := fx.service.UploadImage(ctx, id, &usecase.UploadedFile{FileName: "x.jpg", ContentType: "image/jpeg", Data: []byte("jpg")})

	assert.Error(t, err)
}

func TestMenuService_UploadImage_RejectsNonImage(t *testing.T) {
	fx := createTestMenuService(t)

	_, err := fx.service.UploadImage(context.Background(), uuid.New(), &usecase.UploadedFile{
		FileName: "notes.txt", ContentType: "text/plain", Data: []byte("hi"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMenuService_WatchMenu_StreamsSnapshots(t *testing.T) {
	fx := createTestMenuService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan service.CatalogEvent, 1)
	sub := mockSvc.NewMockCatalogSubscription(t)
	sub.EXPECT().Events().Return(events)
	sub.EXPECT().Cancel().Return()

	daily := false
	filter := repository.MenuFilter{PreOrderOnly: &daily}
	first := []*entity.MenuItem{{Name: "Tea", Stock: 3}}
	second := []*entity.MenuItem{{Name: "Tea", Stock: 2}}

	fx.watcher.EXPECT().Watch(ctx).Return(sub, nil)
	fx.menuRepo.EXPECT().List(ctx, filter).Return(first, nil).Once()
	fx.menuRepo.EXPECT().List(ctx, filter).Return(second, nil).Once()

	updates, err := fx.service.WatchMenu(ctx, usecase.MenuScopeDaily)
	require.NoError(t, err)

	got, ok := receiveWithin(t, updates, time.Second)
	require.True(t, ok)
	assert.Equal(t, first, got)

	events <- service.CatalogEvent{Kind: service.CatalogEventUpsert, ItemID: uuid.New()}

	got, ok = receiveWithin(t, updates, time.Second)
	require.True(t, ok)
	assert.Equal(t, second, got)

	cancel()
	_, ok = receiveWithin(t, updates, time.Second)
	assert.False(t, ok, "stream closes when the context ends")
}

func TestMenuService_WatchMenu_ListFailureCancelsSubscription(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()

	sub := mockSvc.NewMockCatalogSubscription(t)
	sub.EXPECT().Cancel().Return()

	fx.watcher.EXPECT().Watch(ctx).Return(sub, nil)
	fx.menuRepo.EXPECT().List(ctx, mock.Anything).Return(nil, errors.New("db down"))

	updates, err := fx.service.WatchMenu(ctx, usecase.MenuScopeAll)

	assert.Error(t, err)
	assert.Nil(t, updates)
}
