package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/venuedesk/venuedesk-api/internal/config"
	domainRepo "github.com/venuedesk/venuedesk-api/internal/domain/repository"
	"github.com/venuedesk/venuedesk-api/internal/presentation/http/handler"
	"github.com/venuedesk/venuedesk-api/internal/presentation/http/middleware"
	"github.com/venuedesk/venuedesk-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Venue     *handler.VenueHandler
	RoomType  *handler.RoomTypeHandler
	Menu      *handler.MenuHandler
	Enquiry   *handler.EnquiryHandler
	Quotation *handler.QuotationHandler
	Booking   *handler.BookingHandler
	Customer  *handler.CustomerHandler
	Dashboard *handler.DashboardHandler
	Settings  *handler.SettingsHandler
	User      *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.GetSettings)
	protected.PUT("/settings", middleware.RequirePermission("manage-settings"), h.Settings.UpdateSettings)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboard.Use(middleware.RequirePermission("view-dashboard"))
	{
		dashboard.GET("", h.Dashboard.GetStats)
	}

	// Venues and spaces
	registerVenueRoutes(protected, h)

	// Room types
	registerRoomTypeRoutes(protected, h)

	// Menu packages and items
	registerMenuRoutes(protected, h)

	// Enquiries
	registerEnquiryRoutes(protected, h)

	// Quotations
	registerQuotationRoutes(protected, h, deps)

	// Bookings
	registerBookingRoutes(protected, h)

	// Customers
	registerCustomerRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)

	// Roles (Admin)
	registerRoleRoutes(protected, h)

	// Permissions (Admin)
	registerPermissionRoutes(protected, h)
}

func registerVenueRoutes(protected *gin.RouterGroup, h *Handlers) {
	venues := protected.Group("/venues")
	venues.Use(middleware.RequirePermission("manage-venues"))
	{
		venues.GET("", h.Venue.List)
		venues.POST("", h.Venue.Create)
		venues.GET("/:id", h.Venue.Get)
		venues.PUT("/:id", h.Venue.Update)
		venues.DELETE("/:id", h.Venue.Delete)
		venues.GET("/:id/spaces", h.Venue.ListSpaces)
		venues.POST("/:id/spaces", h.Venue.CreateSpace)
	}

	spaces := protected.Group("/venue-spaces")
	spaces.Use(middleware.RequirePermission("manage-venues"))
	{
		spaces.PUT("/:spaceId", h.Venue.UpdateSpace)
		spaces.DELETE("/:spaceId", h.Venue.DeleteSpace)
	}
}

func registerRoomTypeRoutes(protected *gin.RouterGroup, h *Handlers) {
	roomTypes := protected.Group("/room-types")
	roomTypes.Use(middleware.RequirePermission("manage-rooms"))
	{
		roomTypes.GET("", h.RoomType.List)
		roomTypes.POST("", h.RoomType.Create)
		roomTypes.GET("/:id", h.RoomType.Get)
		roomTypes.PUT("/:id", h.RoomType.Update)
		roomTypes.DELETE("/:id", h.RoomType.Delete)
	}
}

func registerMenuRoutes(protected *gin.RouterGroup, h *Handlers) {
	packages := protected.Group("/menu-packages")
	packages.Use(middleware.RequirePermission("manage-menus"))
	{
		packages.GET("", h.Menu.ListPackages)
		packages.POST("", h.Menu.CreatePackage)
		packages.GET("/:id", h.Menu.GetPackage)
		packages.PUT("/:id", h.Menu.UpdatePackage)
		packages.DELETE("/:id", h.Menu.DeletePackage)
		packages.GET("/:id/items", h.Menu.ListPackageItems)
	}

	items := protected.Group("/menu-items")
	items.Use(middleware.RequirePermission("manage-menus"))
	{
		items.GET("", h.Menu.ListALaCarteItems)
		items.POST("", h.Menu.CreateItem)
		items.PUT("/:id", h.Menu.UpdateItem)
		items.DELETE("/:id", h.Menu.DeleteItem)
	}
}

func registerEnquiryRoutes(protected *gin.RouterGroup, h *Handlers) {
	enquiries := protected.Group("/enquiries")
	enquiries.Use(middleware.RequirePermission("manage-enquiries"))
	{
		enquiries.GET("", h.Enquiry.List)
		enquiries.POST("", h.Enquiry.Create)
		enquiries.GET("/:id", h.Enquiry.Get)
		enquiries.PUT("/:id", h.Enquiry.Update)
		enquiries.PUT("/:id/status", h.Enquiry.UpdateStatus)
		enquiries.POST("/:id/promote", h.Enquiry.PromoteToCustomer)
		enquiries.POST("/:id/quotation", h.Quotation.CreateFromEnquiry)
		enquiries.DELETE("/:id", h.Enquiry.Delete)
	}
}

func registerQuotationRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	quotations := protected.Group("/quotations")
	quotations.Use(middleware.RequirePermission("manage-quotations"))
	{
		quotations.GET("", h.Quotation.List)
		quotations.POST("", h.Quotation.Create)
		quotations.POST("/check-discount", h.Quotation.CheckDiscount)
		quotations.GET("/:id", h.Quotation.Get)
		quotations.PUT("/:id", h.Quotation.Update)
		quotations.DELETE("/:id", h.Quotation.Delete)
		quotations.POST("/:id/send", h.Quotation.Send)
		quotations.PUT("/:id/status", h.Quotation.UpdateStatus)
		quotations.GET("/:id/proposal", h.Quotation.Proposal)
		// Confirmation creates a booking, so duplicates must be rejected
		quotations.POST("/:id/confirm", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Booking.ConfirmQuotation)
	}
}

func registerBookingRoutes(protected *gin.RouterGroup, h *Handlers) {
	bookings := protected.Group("/bookings")
	bookings.Use(middleware.RequirePermission("manage-bookings"))
	{
		bookings.GET("", h.Booking.List)
		bookings.GET("/:id", h.Booking.Get)
		bookings.PUT("/:id/status", h.Booking.UpdateStatus)
		bookings.POST("/:id/payments", h.Booking.RecordPayment)
		bookings.DELETE("/:id/payments/:paymentId", h.Booking.DeletePayment)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	customers.Use(middleware.RequirePermission("manage-customers"))
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/roles", h.User.UpdateRoles)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerRoleRoutes(protected *gin.RouterGroup, h *Handlers) {
	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("manage-users"))
	{
		roles.GET("", h.User.ListRoles)
	}
}

func registerPermissionRoutes(protected *gin.RouterGroup, h *Handlers) {
	permissions := protected.Group("/permissions")
	permissions.Use(middleware.RequirePermission("manage-users"))
	{
		permissions.GET("", h.User.ListPermissions)
	}
}
