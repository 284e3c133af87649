package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cafe/config"
	"cafe/internal/delivery/api/middleware"
	"cafe/internal/delivery/api/router/handler"
	"cafe/internal/delivery/api/validator"
	"cafe/internal/domain/entity"
	"cafe/internal/domain/service"
	mockSvc "cafe/internal/mocks/service"
	mockUC "cafe/internal/mocks/usecase"
	"cafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixture struct {
	echo        *echo.Echo
	tokens      *mockSvc.MockTokenService
	menuUC      *mockUC.MockMenuUsecase
	cartUC      *mockUC.MockCartUsecase
	analyticsUC *mockUC.MockAnalyticsUsecase
}

func newRouterFixture(t *testing.T) routerFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{PreOrder: &config.PreOrderConfig{MaxProofBytes: 4 << 20}}

	fx := routerFixture{
		tokens:      mockSvc.NewMockTokenService(t),
		menuUC:      mockUC.NewMockMenuUsecase(t),
		cartUC:      mockUC.NewMockCartUsecase(t),
		analyticsUC: mockUC.NewMockAnalyticsUsecase(t),
	}

	r := NewRouter(RouterParams{
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: mockUC.NewMockAuthUsecase(t), Logger: logger}),
		MenuHandler:         handler.NewMenuHandler(handler.MenuHandlerParams{MenuUC: fx.menuUC, Config: cfg, Logger: logger}),
		CartHandler:         handler.NewCartHandler(handler.CartHandlerParams{CartUC: fx.cartUC, Logger: logger}),
		SaleHandler:         handler.NewSaleHandler(handler.SaleHandlerParams{SaleUC: mockUC.NewMockSaleUsecase(t), Logger: logger}),
		PreOrderHandler:     handler.NewPreOrderHandler(handler.PreOrderHandlerParams{PreOrderUC: mockUC.NewMockPreOrderUsecase(t), Config: cfg, Logger: logger}),
		TeamHandler:         handler.NewTeamHandler(handler.TeamHandlerParams{TeamUC: mockUC.NewMockTeamUsecase(t), Logger: logger}),
		VolunteerHandler:    handler.NewVolunteerHandler(handler.VolunteerHandlerParams{VolunteerUC: mockUC.NewMockVolunteerUsecase(t), Logger: logger}),
		AnnouncementHandler: handler.NewAnnouncementHandler(handler.AnnouncementHandlerParams{AnnouncementUC: mockUC.NewMockAnnouncementUsecase(t), Logger: logger}),
		AnalyticsHandler:    handler.NewAnalyticsHandler(handler.AnalyticsHandlerParams{AnalyticsUC: fx.analyticsUC}),
		DeviceHandler:       handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockUC.NewMockDeviceUsecase(t), Logger: logger}),
		UploadHandler:       handler.NewUploadHandler(handler.UploadHandlerParams{Storage: mockSvc.NewMockBlobStorage(t), Logger: logger}),
		AuthMiddleware:      middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{TokenService: fx.tokens, Logger: logger}),
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	r.RegisterRoutes(e)
	fx.echo = e

	return fx
}

func (fx routerFixture) signIn(token string, roles ...string) {
	fx.tokens.EXPECT().
		ValidateToken(token).
		Return(&service.Claims{UserID: uuid.New(), Roles: roles, Type: service.TokenTypeAccess}, nil).
		Maybe()
}

func (fx routerFixture) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func TestRouter_PublicMenuNeedsNoToken(t *testing.T) {
	fx := newRouterFixture(t)
	fx.menuUC.EXPECT().ListMenu(mock.Anything, usecase.MenuScopeDaily, false).Return([]*entity.MenuItem{}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/menu", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RoleEnforcement(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		token  string
		roles  []string
		setup  func(fx routerFixture)
		want   int
	}{
		{
			name:   "admin route without token",
			method: http.MethodGet,
			target: "/api/v1/admin/analytics",
			want:   http.StatusUnauthorized,
		},
		{
			name:   "admin route as volunteer",
			method: http.MethodGet,
			target: "/api/v1/admin/analytics",
			token:  "volunteer-token",
			roles:  []string{"volunteer"},
			want:   http.StatusForbidden,
		},
		{
			name:   "admin route as admin",
			method: http.MethodGet,
			target: "/api/v1/admin/analytics",
			token:  "admin-token",
			roles:  []string{"admin", "volunteer"},
			setup: func(fx routerFixture) {
				fx.analyticsUC.EXPECT().GetDashboard(mock.Anything).Return(&usecase.Dashboard{}, nil)
			},
			want: http.StatusOK,
		},
		{
			name:   "pos route without token",
			method: http.MethodGet,
			target: "/api/v1/pos/cart",
			want:   http.StatusUnauthorized,
		},
		{
			name:   "pos route as volunteer",
			method: http.MethodGet,
			target: "/api/v1/pos/cart",
			token:  "volunteer-token",
			roles:  []string{"volunteer"},
			setup: func(fx routerFixture) {
				fx.cartUC.EXPECT().GetCart(mock.Anything, mock.Anything).Return(&usecase.CartView{}, nil)
			},
			want: http.StatusOK,
		},
		{
			name:   "pos route with unknown role",
			method: http.MethodGet,
			target: "/api/v1/pos/cart",
			token:  "guest-token",
			roles:  []string{"guest"},
			want:   http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newRouterFixture(t)
			if tt.token != "" {
				fx.signIn(tt.token, tt.roles...)
			}
			if tt.setup != nil {
				tt.setup(fx)
			}

			rec := fx.do(tt.method, tt.target, tt.token)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRouter_RefreshTokenRejectedOnStaffRoutes(t *testing.T) {
	fx := newRouterFixture(t)
	fx.tokens.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{UserID: uuid.New(), Roles: []string{"admin"}, Type: service.TokenTypeRefresh}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/admin/analytics", "refresh-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_ExpiredToken(t *testing.T) {
	fx := newRouterFixture(t)
	fx.tokens.EXPECT().ValidateToken("stale").Return(nil, errors.New("token expired"))

	rec := fx.do(http.MethodGet, "/api/v1/me", "stale")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
