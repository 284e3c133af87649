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

// preOrderServiceFixtures holds all test dependencies for pre-order service tests.
type preOrderServiceFixtures struct {
	service      *preOrderService
	preOrderRepo *mockRepo.MockPreOrderRepository
	menuRepo     *mockRepo.MockMenuRepository
	storage      *mockSvc.MockBlobStorage
	qrCode       *mockSvc.MockQRCodeService
	publisher    *mockSvc.MockEventPublisher
}

var fixedSubmission = time.Date(2026, time.March, 9, 22, 30, 0, 0, time.UTC)

func createTestPreOrderService(t *testing.T) preOrderServiceFixtures {
	preOrderRepo := mockRepo.NewMockPreOrderRepository(t)
	menuRepo := mockRepo.NewMockMenuRepository(t)
	storage := mockSvc.NewMockBlobStorage(t)
	qrCode := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	uc, err := NewPreOrderService(PreOrderServiceParams{
		PreOrderRepo:  preOrderRepo,
		MenuRepo:      menuRepo,
		Storage:       storage,
		QRCodeService: qrCode,
		Publisher:     publisher,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})
	require.NoError(t, err)

	srv, ok := uc.(*preOrderService)
	require.True(t, ok)
	srv.now = func() time.Time { return fixedSubmission }

	return preOrderServiceFixtures{
		service:      srv,
		preOrderRepo: preOrderRepo,
		menuRepo:     menuRepo,
		storage:      storage,
		qrCode:       qrCode,
		publisher:    publisher,
	}
}

func validSubmission(itemID uuid.UUID) *usecase.SubmitPreOrderInput {
	return &usecase.SubmitPreOrderInput{
		StudentName:  "Rina",
		StudentClass: "XI IPA 2",
		Items:        map[string]int{itemID.String(): 2},
		Screenshot: &usecase.UploadedFile{
			FileName:    "bukti transfer.png",
			ContentType: "image/png",
			Data:        []byte("png-bytes"),
		},
	}
}

func TestPreOrderService_SubmitPreOrder_Success(t *testing.T) {
	fx := createTestPreOrderService(t)
	ctx := context.Background()
	item := &entity.MenuItem{ID: uuid.New(), Name: "Nasi box", Price: 20000, IsPreOrderOnly: true}
	expectedKey := "payment_screenshots/1773095400000_bukti_transfer.png"

	fx.menuRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{item.ID}).Return([]*entity.MenuItem{item}, nil)
	fx.storage.EXPECT().
		Upload(ctx, expectedKey, "image/png", []byte("png-bytes")).
		Return("https://files.example.com/"+expectedKey, nil)
	fx.preOrderRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(order *entity.PreOrder) bool {
			return order.Total == 40000 && order.Status == entity.PreOrderStatusPending &&
				order.Items[item.ID] == 2 && order.PaymentProofKey == expectedKey
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishStaffAlert(mock.Anything, mock.MatchedBy(func(event *service.StaffAlertEvent) bool {
			return event.Kind == service.StaffAlertPreOrderSubmitted
		})).
		Return(nil)
	fx.qrCode.EXPECT().PickupPayload(mock.Anything).Return("cafe://pre-order/x")

	receipt, err := fx.service.SubmitPreOrder(ctx, validSubmission(item.ID))
	require.NoError(t, err)
	assert.Equal(t, "cafe://pre-order/x", receipt.PickupCode)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), receipt.Order.PickupDate)
	assert.Equal(t, "https://files.example.com/"+expectedKey, receipt.Order.PaymentProofURL)
}

func TestPreOrderService_SubmitPreOrder_ValidationTouchesNoStorage(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.SubmitPreOrderInput)
		field  string
	}{
		{name: "short name", mutate: func(in *usecase.SubmitPreOrderInput) { in.StudentName = " R " }, field: "studentName"},
		{name: "missing class", mutate: func(in *usecase.SubmitPreOrderInput) { in.StudentClass = "" }, field: "studentClass"},
		{name: "empty cart", mutate: func(in *usecase.SubmitPreOrderInput) { in.Items = map[string]int{} }, field: "cart"},
		{name: "zero quantity", mutate: func(in *usecase.SubmitPreOrderInput) {
			for k := range in.Items {
				in.Items[k] = 0
			}
		}, field: "cart"},
		{name: "bad item id", mutate: func(in *usecase.SubmitPreOrderInput) { in.Items = map[string]int{"nope": 1} }, field: "cart"},
		{name: "no screenshot", mutate: func(in *usecase.SubmitPreOrderInput) { in.Screenshot = nil }, field: "screenshot"},
		{name: "wrong type", mutate: func(in *usecase.SubmitPreOrderInput) { in.Screenshot.ContentType = "application/pdf" }, field: "screenshot"},
		{name: "too large", mutate: func(in *usecase.SubmitPreOrderInput) {
			in.Screenshot.Data = make([]byte, 4<<20+1)
		}, field: "screenshot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPreOrderService(t)
			input := validSubmission(uuid.New())
			tt.mutate(input)

			receipt, err := fx.service.SubmitPreOrder(context.Background(), input)

			assert.Nil(t, receipt)
			var fieldErr *domainerrors.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Contains(t, fieldErr.Fields(), tt.field)
		})
	}
}

func TestPreOrderService_SubmitPreOrder_UnknownItem(t *testing.T) {
	fx := createTestPreOrderService(t)
	ctx := context.Background()
	itemID := uuid.New()

	fx.menuRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{itemID}).Return([]*entity.MenuItem{}, nil)

	_, err := fx.service.SubmitPreOrder(ctx, validSubmission(itemID))

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPreOrderService_SubmitPreOrder_UploadFailure(t *testing.T) {
	fx := createTestPreOrderService(t)
	ctx := context.Background()
	item := &entity.MenuItem{ID: uuid.New(), Price: 1000}

	fx.menuRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.MenuItem{item}, nil)
	fx.storage.EXPECT().Upload(ctx, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket unavailable"))

	_, err := fx.service.SubmitPreOrder(ctx, validSubmission(item.ID))

	assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
	fx.preOrderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPreOrderService_SubmitPreOrder_WriteFailureDeletesProof(t *testing.T) {
	fx := createTestPreOrderService(t)
	ctx := context.Background()
	item := &entity.MenuItem{ID: uuid.New(), Price: 1000}
	writeErr := errors.New("insert failed")

	fx.menuRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.MenuItem{item}, nil)
	fx.storage.EXPECT().Upload(ctx, mock.Anything, mock.Anything, mock.Anything).Return("https://files.example.com/p.png", nil)
	fx.preOrderRepo.EXPECT().Create(ctx, mock.Anything).Return(writeErr)
	fx.storage.EXPECT().
		Delete(mock.Anything, mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, "payment_screenshots/") })).
		Return(errors.New("delete failed too"))

	_, err := fx.service.SubmitPreOrder(ctx, validSubmission(item.ID))

	assert.ErrorIs(t, err, writeErr, "the original write error is returned")
	fx.publisher.AssertNotCalled(t, "PublishStaffAlert", mock.Anything, mock.Anything)
}

func TestPreOrderService_PickupDateUsesTimeZone(t *testing.T) {
	fx := createTestPreOrderService(t)
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	fx.service.location = jakarta

	// 22:30 UTC is already the next morning in Jakarta.
	got := fx.service.pickupDate(fixedSubmission)

	assert.Equal(t, time.Date(2026, time.March, 11, 0, 0, 0, 0, jakarta), got)
}

func TestPreOrderService_AdvanceStatus(t *testing.T) {
	fx := createTestPreOrderService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.preOrderRepo.EXPECT().FindByID(ctx, id).Return(&entity.PreOrder{ID: id, Status: entity.PreOrderStatusPending}, nil)
	fx.preOrderRepo.EXPECT().UpdateStatus(ctx, id, entity.PreOrderStatusPending, entity.PreOrderStatusReady).Return(nil)

	order, err := fx.service.AdvanceStatus(ctx, id, entity.PreOrderStatusReady)
	require.NoError(t, err)
	assert.Equal(t, entity.PreOrderStatusReady, order.Status)
}

func TestPreOrderService_AdvanceStatus_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		current entity.PreOrderStatus
		target  entity.PreOrderStatus
	}{
		{name: "skip ready", current: entity.PreOrderStatusPending, target: entity.PreOrderStatusCompleted},
		{name: "backwards", current: entity.PreOrderStatusReady, target: entity.PreOrderStatusPending},
		{name: "terminal", current: entity.PreOrderStatusCompleted, target: entity.PreOrderStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPreOrderService(t)
			ctx := context.Background()
			id := uuid.New()

			fx.preOrderRepo.EXPECT().FindByID(ctx, id).Return(&entity.PreOrder{ID: id, Status: tt.current}, nil)

			_, err := fx.service.AdvanceStatus(ctx, id, tt.target)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
		})
	}
}

func TestPreOrderService_AdvanceStatus_ConcurrentChange(t *testing.T) {
	fx := createTestPreOrderService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.preOrderRepo.EXPECT().FindByID(ctx, id).Return(&entity.PreOrder{ID: id, Status: entity.PreOrderStatusReady}, nil)
	fx.preOrderRepo.EXPECT().
		UpdateStatus(ctx, id, entity.PreOrderStatusReady, entity.PreOrderStatusCompleted).
		Return(repository.ErrPreOrderStatusChanged)

	_, err := fx.service.AdvanceStatus(ctx, id, entity.PreOrderStatusCompleted)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestPreOrderService_ResolvePickupCode(t *testing.T) {
	fx := createTestPreOrderService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.qrCode.EXPECT().ParsePickupQR("cafe://pre-order/"+id.String()).Return(id, nil)
	fx.preOrderRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrPreOrderNotFound)

	_, err := fx.service.ResolvePickupCode(ctx, "cafe://pre-order/"+id.String())

	assert.ErrorIs(t, err, domainerrors.ErrPreOrderNotFound)
}
