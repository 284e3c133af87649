package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/entity"
	"cafe/internal/domain/service"
	mockSvc "cafe/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockSvc.MockTokenService) {
	tokenService := mockSvc.NewMockTokenService(t)

	return NewAuthMiddleware(AuthMiddlewareParams{
		TokenService: tokenService,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), tokenService
}

func serve(handler echo.HandlerFunc, header string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		e.HTTPErrorHandler(err, e.NewContext(req, rec))
	}

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	t.Run("valid access token", func(t *testing.T) {
		m, tokenService := newTestAuthMiddleware(t)
		tokenService.EXPECT().
			ValidateToken("good").
			Return(&service.Claims{UserID: userID, Roles: []string{"volunteer"}, Type: service.TokenTypeAccess}, nil)

		var gotID uuid.UUID
		var gotRoles []string
		rec := serve(m.Authenticate(func(c echo.Context) error {
			gotID, _ = deliverycontext.GetUserID(c)
			gotRoles, _ = deliverycontext.GetRoles(c)

			return c.NoContent(http.StatusNoContent)
		}), "Bearer good")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, userID, gotID)
		assert.Equal(t, []string{"volunteer"}, gotRoles)
	})

	t.Run("rejections", func(t *testing.T) {
		tests := []struct {
			name   string
			header string
			setup  func(*mockSvc.MockTokenService)
		}{
			{name: "missing header"},
			{name: "not bearer", header: "Basic abc"},
			{name: "invalid token", header: "Bearer bad", setup: func(ts *mockSvc.MockTokenService) {
				ts.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature invalid"))
			}},
			{name: "refresh token", header: "Bearer refresh", setup: func(ts *mockSvc.MockTokenService) {
				ts.EXPECT().ValidateToken("refresh").Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
			}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				m, tokenService := newTestAuthMiddleware(t)
				if tt.setup != nil {
					tt.setup(tokenService)
				}

				rec := serve(m.Authenticate(func(c echo.Context) error {
					t.Fatal("handler must not run")

					return nil
				}), tt.header)

				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			})
		}
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name     string
		roles    []string
		allowed  []entity.Role
		expected int
	}{
		{name: "admin on admin route", roles: []string{"admin", "volunteer"}, allowed: []entity.Role{entity.RoleAdmin}, expected: http.StatusOK},
		{name: "volunteer on admin route", roles: []string{"volunteer"}, allowed: []entity.Role{entity.RoleAdmin}, expected: http.StatusForbidden},
		{name: "volunteer on staff route", roles: []string{"volunteer"}, allowed: []entity.Role{entity.RoleAdmin, entity.RoleVolunteer}, expected: http.StatusOK},
		{name: "unknown role", roles: []string{"owner"}, allowed: []entity.Role{entity.RoleAdmin}, expected: http.StatusForbidden},
		{name: "unauthenticated", allowed: []entity.Role{entity.RoleVolunteer}, expected: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestAuthMiddleware(t)
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			if tt.roles != nil {
				deliverycontext.SetIdentity(c, uuid.New(), tt.roles)
			}

			err := m.RequireRole(tt.allowed...)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
