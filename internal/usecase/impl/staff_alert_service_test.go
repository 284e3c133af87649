package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cafe/internal/domain/entity"
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

// staffAlertServiceFixtures holds all test dependencies for staff alert tests.
type staffAlertServiceFixtures struct {
	service         usecase.StaffAlertUsecase
	userRepo        *mockRepo.MockUserRepository
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockSvc.MockNotificationService
}

func createTestStaffAlertService(t *testing.T) staffAlertServiceFixtures {
	fx := staffAlertServiceFixtures{
		userRepo:        mockRepo.NewMockUserRepository(t),
		deviceRepo:      mockRepo.NewMockDeviceRepository(t),
		notificationSvc: mockSvc.NewMockNotificationService(t),
	}
	fx.service = NewStaffAlertService(StaffAlertServiceParams{
		UserRepo:        fx.userRepo,
		DeviceRepo:      fx.deviceRepo,
		NotificationSvc: fx.notificationSvc,
		Logger:          newDiscardLogger(),
	})

	return fx
}

func lowStockEvent() *service.StaffAlertEvent {
	return &service.StaffAlertEvent{
		ID:    "alert-1",
		Kind:  service.StaffAlertLowStock,
		Title: "Low stock",
		Body:  "Es teh has 2 left",
		Data:  map[string]string{"item_id": "item-1"},
	}
}

func TestStaffAlertService_DeliverStaffAlert_DedupesAndPrunes(t *testing.T) {
	fx := createTestStaffAlertService(t)
	ctx := context.Background()
	admin := &entity.UserProfile{ID: uuid.New(), Role: entity.RoleAdmin}
	phone := &entity.AlertDevice{ID: uuid.New(), UserID: admin.ID, FCMToken: "tok-a"}
	tablet := &entity.AlertDevice{ID: uuid.New(), UserID: admin.ID, FCMToken: "tok-b"}
	duplicate := &entity.AlertDevice{ID: uuid.New(), UserID: admin.ID, FCMToken: "tok-a"}

	fx.userRepo.EXPECT().ListByRole(ctx, entity.RoleAdmin).Return([]*entity.UserProfile{admin}, nil)
	fx.deviceRepo.EXPECT().
		FindAlertRecipients(ctx, []uuid.UUID{admin.ID}, entity.AlertLowStock).
		Return([]*entity.AlertDevice{phone, tablet, duplicate}, nil)
	fx.notificationSvc.EXPECT().
		Multicast(ctx, &service.PushMessage{
			Tokens:      []string{"tok-a", "tok-b"},
			Title:       "Low stock",
			Body:        "Es teh has 2 left",
			Data:        map[string]string{"kind": "low_stock", "alert_id": "alert-1", "item_id": "item-1"},
			CollapseKey: "low_stock:item-1",
			TTL:         time.Hour,
		}).
		Return(&service.PushReport{Sent: 1, Failed: 1, Stale: []string{"tok-b"}}, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, tablet.ID).Return(nil)

	result, err := fx.service.DeliverStaffAlert(ctx, lowStockEvent())

	require.NoError(t, err)
	assert.Equal(t, &usecase.DeliveryResult{Recipients: 2, Sent: 1, Failed: 1, InvalidTokens: 1}, result)
}

func TestStaffAlertService_DeliverStaffAlert_NoAdmins(t *testing.T) {
	fx := createTestStaffAlertService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().ListByRole(ctx, entity.RoleAdmin).Return(nil, nil)

	result, err := fx.service.DeliverStaffAlert(ctx, lowStockEvent())

	require.NoError(t, err)
	assert.Zero(t, result.Recipients)
}

func TestStaffAlertService_DeliverStaffAlert_StorageFailureIsTransient(t *testing.T) {
	fx := createTestStaffAlertService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().ListByRole(ctx, entity.RoleAdmin).Return(nil, errors.New("connection refused"))

	_, err := fx.service.DeliverStaffAlert(ctx, lowStockEvent())

	assert.ErrorIs(t, err, usecase.ErrTransientDelivery)
}

func TestStaffAlertService_DeliverStaffAlert_Batches(t *testing.T) {
	admin := &entity.UserProfile{ID: uuid.New(), Role: entity.RoleAdmin}
	devices := make([]*entity.AlertDevice, 0, service.MaxBatchTokens+3)
	for i := range service.MaxBatchTokens + 3 {
		devices = append(devices, &entity.AlertDevice{ID: uuid.New(), UserID: admin.ID, FCMToken: fmt.Sprintf("tok-%d", i)})
	}

	t.Run("partial failure is not retried", func(t *testing.T) {
		fx := createTestStaffAlertService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().ListByRole(ctx, entity.RoleAdmin).Return([]*entity.UserProfile{admin}, nil)
		fx.deviceRepo.EXPECT().FindAlertRecipients(ctx, mock.Anything, mock.Anything).Return(devices, nil)
		fx.notificationSvc.EXPECT().
			Multicast(ctx, mock.MatchedBy(func(msg *service.PushMessage) bool { return len(msg.Tokens) == service.MaxBatchTokens })).
			Return(&service.PushReport{Sent: service.MaxBatchTokens}, nil)
		fx.notificationSvc.EXPECT().
			Multicast(ctx, mock.MatchedBy(func(msg *service.PushMessage) bool { return len(msg.Tokens) == 3 })).
			Return(nil, errors.New("fcm unavailable"))

		result, err := fx.service.DeliverStaffAlert(ctx, lowStockEvent())

		require.NoError(t, err)
		assert.Equal(t, service.MaxBatchTokens, result.Sent)
		assert.Equal(t, 3, result.Failed)
	})

	t.Run("total failure is retried", func(t *testing.T) {
		fx := createTestStaffAlertService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().ListByRole(ctx, entity.RoleAdmin).Return([]*entity.UserProfile{admin}, nil)
		fx.deviceRepo.EXPECT().FindAlertRecipients(ctx, mock.Anything, mock.Anything).Return(devices, nil)
		fx.notificationSvc.EXPECT().
			Multicast(ctx, mock.Anything).
			Return(nil, errors.New("fcm unavailable")).
			Times(2)

		result, err := fx.service.DeliverStaffAlert(ctx, lowStockEvent())

		assert.ErrorIs(t, err, usecase.ErrTransientDelivery)
		assert.Equal(t, service.MaxBatchTokens+3, result.Failed)
	})
}

func TestPushOptions(t *testing.T) {
	key, ttl := pushOptions(lowStockEvent())
	assert.Equal(t, "low_stock:item-1", key)
	assert.Equal(t, time.Hour, ttl)

	key, ttl = pushOptions(&service.StaffAlertEvent{Kind: service.StaffAlertPreOrderSubmitted})
	assert.Empty(t, key)
	assert.Equal(t, 24*time.Hour, ttl)
}
