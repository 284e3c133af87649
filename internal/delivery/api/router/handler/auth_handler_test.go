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

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUC.MockAuthUsecase) {
	authUC := mockUC.NewMockAuthUsecase(t)

	return NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()}), authUC
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		profile := &entity.UserProfile{ID: uuid.New(), Email: "owner@cafe.test", Role: entity.RoleAdmin}
		authUC.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Email: "owner@cafe.test", Password: "Secret123!"}).
			Return(&usecase.LoginOutput{AccessToken: "access", RefreshToken: "refresh", User: profile}, nil)

		rec := invoke(t, h.Login, request{
			method: http.MethodPost,
			target: "/auth/login",
			body:   strings.NewReader(`{"email":"owner@cafe.test","password":"Secret123!"}`),
		})

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeData[LoginResponse](t, rec)
		assert.Equal(t, "access", got.AccessToken)
		assert.Equal(t, "refresh", got.RefreshToken)
		assert.Equal(t, profile.ID, got.User.ID)
	})

	t.Run("invalid email is rejected before the usecase", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)

		rec := invoke(t, h.Login, request{
			method: http.MethodPost,
			target: "/auth/login",
			body:   strings.NewReader(`{"email":"not-an-email"}`),
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		fields := fieldDetails(t, rec)
		assert.Equal(t, "must be a valid email address", fields["email"])
		assert.Equal(t, "is required", fields["password"])
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)

		rec := invoke(t, h.Login, request{
			method: http.MethodPost,
			target: "/auth/login",
			body:   strings.NewReader(`{"email":`),
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		rec := invoke(t, h.Login, request{
			method: http.MethodPost,
			target: "/auth/login",
			body:   strings.NewReader(`{"email":"owner@cafe.test","password":"nope"}`),
		})

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rec).Error.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("returns the caller", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		userID := uuid.New()
		authUC.EXPECT().CurrentUser(mock.Anything, userID).
			Return(&entity.UserProfile{ID: userID, DisplayName: "Dewi", Role: entity.RoleVolunteer}, nil)

		rec := invoke(t, h.Me, request{method: http.MethodGet, target: "/api/v1/me", user: &userID})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Dewi", decodeData[entity.UserProfile](t, rec).DisplayName)
	})

	t.Run("missing identity", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)

		rec := invoke(t, h.Me, request{method: http.MethodGet, target: "/api/v1/me"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	authUC.EXPECT().Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "refresh"}).Return(nil)

	rec := invoke(t, h.Logout, request{
		method: http.MethodPost,
		target: "/auth/logout",
		body:   strings.NewReader(`{"refresh_token":"refresh"}`),
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}
