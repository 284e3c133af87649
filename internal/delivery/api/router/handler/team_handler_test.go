package handler

import (
	"net/http"
	"strings"
	"testing"

	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	mockUC "cafe/internal/mocks/usecase"
	"cafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTeamHandler(t *testing.T) (*TeamHandler, *mockUC.MockTeamUsecase) {
	teamUC := mockUC.NewMockTeamUsecase(t)

	return NewTeamHandler(TeamHandlerParams{TeamUC: teamUC, Logger: newDiscardLogger()}), teamUC
}

func TestTeamHandler_CreateStaff(t *testing.T) {
	t.Run("duplicate email", func(t *testing.T) {
		h, teamUC := newTestTeamHandler(t)
		teamUC.EXPECT().
			CreateStaff(mock.Anything, &usecase.CreateStaffInput{
				Email:       "dewi@cafe.test",
				Password:    "Secret123!",
				DisplayName: "Dewi",
				Role:        entity.RoleVolunteer,
			}).
			Return(nil, domainerrors.ErrUserAlreadyExists)

		rec := invoke(t, h.CreateStaff, request{
			method: http.MethodPost,
			target: "/api/v1/admin/team",
			body:   strings.NewReader(`{"email":"dewi@cafe.test","password":"Secret123!","display_name":"Dewi","role":"volunteer"}`),
		})

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "USER_ALREADY_EXISTS", decode(t, rec).Error.Code)
	})

	t.Run("unknown role", func(t *testing.T) {
		h, _ := newTestTeamHandler(t)

		rec := invoke(t, h.CreateStaff, request{
			method: http.MethodPost,
			target: "/api/v1/admin/team",
			body:   strings.NewReader(`{"email":"dewi@cafe.test","password":"Secret123!","display_name":"Dewi","role":"owner"}`),
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "must be one of: admin volunteer", fieldDetails(t, rec)["role"])
	})
}

func TestTeamHandler_ChangeRole_PassesActor(t *testing.T) {
	h, teamUC := newTestTeamHandler(t)
	actorID, userID := uuid.New(), uuid.New()
	teamUC.EXPECT().ChangeRole(mock.Anything, actorID, userID, entity.RoleAdmin).
		Return(&entity.UserProfile{ID: userID, Role: entity.RoleAdmin}, nil)

	rec := invoke(t, h.ChangeRole, request{
		method: http.MethodPut,
		target: "/api/v1/admin/team/" + userID.String() + "/role",
		body:   strings.NewReader(`{"role":"admin"}`),
		user:   &actorID,
		params: map[string]string{"id": userID.String()},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTeamHandler_RemoveStaff_Self(t *testing.T) {
	h, teamUC := newTestTeamHandler(t)
	actorID := uuid.New()
	teamUC.EXPECT().RemoveStaff(mock.Anything, actorID, actorID).Return(domainerrors.ErrCannotModifySelf)

	rec := invoke(t, h.RemoveStaff, request{
		method: http.MethodDelete,
		target: "/api/v1/admin/team/" + actorID.String(),
		user:   &actorID,
		params: map[string]string{"id": actorID.String()},
	})

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CANNOT_MODIFY_SELF", decode(t, rec).Error.Code)
}

func TestTeamHandler_AssignItems(t *testing.T) {
	userID, itemID := uuid.New(), uuid.New()

	t.Run("replaces the set", func(t *testing.T) {
		h, teamUC := newTestTeamHandler(t)
		teamUC.EXPECT().AssignItems(mock.Anything, userID, []uuid.UUID{itemID}).Return([]uuid.UUID{itemID}, nil)

		rec := invoke(t, h.AssignItems, request{
			method: http.MethodPut,
			target: "/api/v1/admin/team/" + userID.String() + "/assignments",
			body:   strings.NewReader(`{"item_ids":["` + itemID.String() + `"]}`),
			params: map[string]string{"id": userID.String()},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []uuid.UUID{itemID}, decodeData[map[string][]uuid.UUID](t, rec)["item_ids"])
	})

	t.Run("empty list clears", func(t *testing.T) {
		h, teamUC := newTestTeamHandler(t)
		teamUC.EXPECT().AssignItems(mock.Anything, userID, []uuid.UUID{}).Return([]uuid.UUID{}, nil)

		rec := invoke(t, h.AssignItems, request{
			method: http.MethodPut,
			target: "/api/v1/admin/team/" + userID.String() + "/assignments",
			body:   strings.NewReader(`{"item_ids":[]}`),
			params: map[string]string{"id": userID.String()},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
