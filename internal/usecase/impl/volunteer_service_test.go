package impl

import (
	"context"
	"strings"
	"testing"

	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/service"
	mockRepo "cafe/internal/mocks/repository"
	mockSvc "cafe/internal/mocks/service"
	mockUsecase "cafe/internal/mocks/usecase"
	"cafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// volunteerServiceFixtures holds all test dependencies for volunteer service tests.
type volunteerServiceFixtures struct {
	service        usecase.VolunteerUsecase
	assignmentRepo *mockRepo.MockAssignmentRepository
	menuRepo       *mockRepo.MockMenuRepository
	userRepo       *mockRepo.MockUserRepository
	sales          *mockUsecase.MockSaleUsecase
	publisher      *mockSvc.MockEventPublisher
}

func createTestVolunteerService(t *testing.T) volunteerServiceFixtures {
	fx := volunteerServiceFixtures{
		assignmentRepo: mockRepo.NewMockAssignmentRepository(t),
		menuRepo:       mockRepo.NewMockMenuRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		sales:          mockUsecase.NewMockSaleUsecase(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewVolunteerService(VolunteerServiceParams{
		AssignmentRepo: fx.assignmentRepo,
		MenuRepo:       fx.menuRepo,
		UserRepo:       fx.userRepo,
		Sales:          fx.sales,
		Publisher:      fx.publisher,
		Logger:         newDiscardLogger(),
	})

	return fx
}

func TestVolunteerService_AssignedItems_NoAssignments(t *testing.T) {
	fx := createTestVolunteerService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.assignmentRepo.EXPECT().FindItemIDsByUser(ctx, userID).Return(nil, nil)

	items, err := fx.service.AssignedItems(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, items)
	fx.menuRepo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
}

func TestVolunteerService_LogSale(t *testing.T) {
	fx := createTestVolunteerService(t)
	ctx := context.Background()
	userID, itemID := uuid.New(), uuid.New()
	receipt := &usecase.Receipt{Total: 6000}

	fx.assignmentRepo.EXPECT().IsAssigned(ctx, userID, itemID).Return(true, nil)
	fx.sales.EXPECT().
		Checkout(ctx, userID, []entity.SaleLine{{ItemID: itemID, Quantity: 2}}).
		Return(receipt, nil)

	got, err := fx.service.LogSale(ctx, userID, itemID, 2)

	require.NoError(t, err)
	assert.Same(t, receipt, got)
}

func TestVolunteerService_LogSale_NotAssigned(t *testing.T) {
	fx := createTestVolunteerService(t)
	ctx := context.Background()
	userID, itemID := uuid.New(), uuid.New()

	fx.assignmentRepo.EXPECT().IsAssigned(ctx, userID, itemID).Return(false, nil)

	_, err := fx.service.LogSale(ctx, userID, itemID, 1)

	assert.ErrorIs(t, err, domainerrors.ErrItemNotAssigned)
}

func TestVolunteerService_RequestRefill(t *testing.T) {
	fx := createTestVolunteerService(t)
	ctx := context.Background()
	user := &entity.UserProfile{ID: uuid.New(), DisplayName: "Dewi"}
	item := &entity.MenuItem{ID: uuid.New(), Name: "Es teh", Stock: 2}

	fx.assignmentRepo.EXPECT().IsAssigned(ctx, user.ID, item.ID).Return(true, nil)
	fx.menuRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.publisher.EXPECT().
		PublishStaffAlert(mock.Anything, mock.MatchedBy(func(event *service.StaffAlertEvent) bool {
			return event.Kind == service.StaffAlertRefillRequested &&
				event.Body == "Dewi asks for more Es teh (2 left): cups too" &&
				event.Data["item_id"] == item.ID.String()
		})).
		Return(nil)

	err := fx.service.RequestRefill(ctx, user.ID, &usecase.RefillRequestInput{ItemID: item.ID, Note: " cups too "})

	require.NoError(t, err)
}

func TestVolunteerService_RequestRefill_NoteTooLong(t *testing.T) {
	fx := createTestVolunteerService(t)

	err := fx.service.RequestRefill(context.Background(), uuid.New(), &usecase.RefillRequestInput{
		ItemID: uuid.New(),
		Note:   strings.Repeat("x", maxRefillNoteLength+1),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
