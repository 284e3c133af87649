package impl

import (
	"context"
	"testing"

	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/domain/service"
	mockRepo "cafe/internal/mocks/repository"
	mockSvc "cafe/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAnnouncementService(t *testing.T) (*announcementService, *mockRepo.MockAnnouncementRepository, *mockSvc.MockAnnouncementDrafter) {
	repo := mockRepo.NewMockAnnouncementRepository(t)
	drafter := mockSvc.NewMockAnnouncementDrafter(t)

	srv := NewAnnouncementService(AnnouncementServiceParams{
		AnnouncementRepo: repo,
		Drafter:          drafter,
		Logger:           newDiscardLogger(),
	})

	return srv.(*announcementService), repo, drafter
}

func TestAnnouncementService_ListAnnouncements_Limits(t *testing.T) {
	tests := []struct {
		requested int
		expected  int
	}{
		{requested: 0, expected: defaultAnnouncementLimit},
		{requested: 3, expected: 3},
		{requested: 1000, expected: maxAnnouncementLimit},
	}

	for _, tt := range tests {
		srv, repo, _ := createTestAnnouncementService(t)
		repo.EXPECT().List(mock.Anything, tt.expected).Return([]*entity.Announcement{}, nil)

		_, err := srv.ListAnnouncements(context.Background(), tt.requested)
		require.NoError(t, err)
	}
}

func TestAnnouncementService_CreateAnnouncement(t *testing.T) {
	srv, repo, _ := createTestAnnouncementService(t)
	ctx := context.Background()

	_, err := srv.CreateAnnouncement(ctx, " ", "")
	var fieldErr *domainerrors.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, []string{"content", "title"}, sortedKeys(fieldErr.Fields()))

	repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(a *entity.Announcement) bool {
			return a.Title == "Libur" && a.Content == "Kantin tutup hari Jumat"
		})).
		Return(nil)

	announcement, err := srv.CreateAnnouncement(ctx, " Libur ", "Kantin tutup hari Jumat\n")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, announcement.ID)
}

func TestAnnouncementService_DeleteAnnouncement_NotFound(t *testing.T) {
	srv, repo, _ := createTestAnnouncementService(t)
	ctx := context.Background()
	id := uuid.New()

	repo.EXPECT().Delete(ctx, id).Return(repository.ErrAnnouncementNotFound)

	assert.ErrorIs(t, srv.DeleteAnnouncement(ctx, id), domainerrors.ErrAnnouncementNotFound)
}

func TestAnnouncementService_DraftAnnouncement(t *testing.T) {
	srv, _, drafter := createTestAnnouncementService(t)
	ctx := context.Background()

	_, err := srv.DraftAnnouncement(ctx, "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	drafter.EXPECT().Draft(ctx, "bazaar").Return(nil, errors.New("upstream 500")).Once()
	_, err = srv.DraftAnnouncement(ctx, " bazaar ")
	assert.ErrorIs(t, err, domainerrors.ErrDraftFailed)

	draft := &service.AnnouncementDraft{Title: "Bazaar", Content: "Come by"}
	drafter.EXPECT().Draft(ctx, "bazaar").Return(draft, nil).Once()
	got, err := srv.DraftAnnouncement(ctx, "bazaar")
	require.NoError(t, err)
	assert.Equal(t, draft, got)
}
