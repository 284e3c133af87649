// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cafe/internal/delivery/api/middleware"
	"cafe/internal/delivery/api/router/handler"
	"cafe/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	MenuHandler         *handler.MenuHandler
	CartHandler         *handler.CartHandler
	SaleHandler         *handler.SaleHandler
	PreOrderHandler     *handler.PreOrderHandler
	TeamHandler         *handler.TeamHandler
	VolunteerHandler    *handler.VolunteerHandler
	AnnouncementHandler *handler.AnnouncementHandler
	AnalyticsHandler    *handler.AnalyticsHandler
	DeviceHandler       *handler.DeviceHandler
	UploadHandler       *handler.UploadHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.AuthMiddleware

	e.GET("/health", handler.HealthCheck)
	e.GET("/uploads/*", r.UploadHandler.ServeUpload)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.AuthHandler.Login)
		authGroup.POST("/login/firebase", r.AuthHandler.LoginWithFirebase)
		authGroup.POST("/refresh", r.AuthHandler.RefreshToken)
		authGroup.POST("/logout", r.AuthHandler.Logout)
	}

	apiV1 := e.Group("/api/v1")

	// Public storefront
	menuGroup := apiV1.Group("/menu")
	{
		menuGroup.GET("", r.MenuHandler.ListDailyMenu)
		menuGroup.GET("/pre-order", r.MenuHandler.ListPreOrderMenu)
		menuGroup.GET("/stream", r.MenuHandler.StreamMenu)
		menuGroup.GET("/:id", r.MenuHandler.GetMenuItem)
	}

	preOrderGroup := apiV1.Group("/pre-orders")
	{
		preOrderGroup.POST("", r.PreOrderHandler.SubmitPreOrder)
		preOrderGroup.GET("/:id/qrcode", r.PreOrderHandler.PickupQRCode)
	}

	// Any signed-in staff member
	staff := apiV1.Group("", auth.Authenticate, auth.RequireRole(entity.RoleAdmin, entity.RoleVolunteer))
	staff.GET("/me", r.AuthHandler.Me)
	staff.GET("/announcements", r.AnnouncementHandler.ListAnnouncements)

	devicesGroup := staff.Group("/devices")
	{
		devicesGroup.POST("", r.DeviceHandler.RegisterDevice)
		devicesGroup.GET("", r.DeviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.DeviceHandler.UpdateFCMToken)
		devicesGroup.PUT("/:id/alerts", r.DeviceHandler.UpdateAlertPreferences)
		devicesGroup.DELETE("/:id", r.DeviceHandler.DeactivateDevice)
	}

	posGroup := staff.Group("/pos")
	{
		posGroup.GET("/cart", r.CartHandler.GetCart)
		posGroup.DELETE("/cart", r.CartHandler.ClearCart)
		posGroup.POST("/cart/lines", r.CartHandler.AddLine)
		posGroup.PUT("/cart/lines/:itemId", r.CartHandler.SetQuantity)
		posGroup.DELETE("/cart/lines/:itemId", r.CartHandler.RemoveLine)
		posGroup.POST("/checkout", r.CartHandler.Checkout)
		posGroup.POST("/sales", r.SaleHandler.RecordSale)
	}

	volunteerGroup := staff.Group("/volunteer")
	{
		volunteerGroup.GET("/items", r.VolunteerHandler.AssignedItems)
		volunteerGroup.POST("/sales", r.VolunteerHandler.LogSale)
		volunteerGroup.POST("/refill-requests", r.VolunteerHandler.RequestRefill)
	}

	// Admin only
	admin := apiV1.Group("/admin", auth.Authenticate, auth.RequireRole(entity.RoleAdmin))

	adminMenu := admin.Group("/menu")
	{
		adminMenu.GET("", r.MenuHandler.ListAllMenu)
		adminMenu.POST("", r.MenuHandler.CreateMenuItem)
		adminMenu.PUT("/:id", r.MenuHandler.UpdateMenuItem)
		adminMenu.DELETE("/:id", r.MenuHandler.DeleteMenuItem)
		adminMenu.PUT("/:id/stock", r.MenuHandler.SetStock)
		adminMenu.PUT("/:id/image", r.MenuHandler.UploadImage)
	}

	adminPreOrders := admin.Group("/pre-orders")
	{
		adminPreOrders.GET("", r.PreOrderHandler.ListPreOrders)
		adminPreOrders.POST("/scan", r.PreOrderHandler.ScanPickupCode)
		adminPreOrders.GET("/:id", r.PreOrderHandler.GetPreOrder)
		adminPreOrders.PATCH("/:id/status", r.PreOrderHandler.UpdateStatus)
	}

	adminTeam := admin.Group("/team")
	{
		adminTeam.GET("", r.TeamHandler.ListTeam)
		adminTeam.POST("", r.TeamHandler.CreateStaff)
		adminTeam.PUT("/:id/role", r.TeamHandler.ChangeRole)
		adminTeam.PUT("/:id/assignments", r.TeamHandler.AssignItems)
		adminTeam.DELETE("/:id", r.TeamHandler.RemoveStaff)
	}

	adminAnnouncements := admin.Group("/announcements")
	{
		adminAnnouncements.POST("", r.AnnouncementHandler.CreateAnnouncement)
		adminAnnouncements.POST("/draft", r.AnnouncementHandler.DraftAnnouncement)
		adminAnnouncements.DELETE("/:id", r.AnnouncementHandler.DeleteAnnouncement)
	}

	admin.GET("/sales", r.SaleHandler.ListSales)
	admin.GET("/analytics", r.AnalyticsHandler.GetDashboard)
}
