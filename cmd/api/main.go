package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/venuedesk/venuedesk-api/internal/application/service"
	"github.com/venuedesk/venuedesk-api/internal/config"
	"github.com/venuedesk/venuedesk-api/internal/infrastructure/database"
	"github.com/venuedesk/venuedesk-api/internal/infrastructure/repository"
	"github.com/venuedesk/venuedesk-api/internal/presentation/http/handler"
	"github.com/venuedesk/venuedesk-api/internal/presentation/http/routes"
	"github.com/venuedesk/venuedesk-api/pkg/email"
	"github.com/venuedesk/venuedesk-api/pkg/oauth"
	"github.com/venuedesk/venuedesk-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	venueSpaceRepo := repository.NewVenueSpaceRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	menuPackageRepo := repository.NewMenuPackageRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	enquiryRepo := repository.NewEnquiryRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	quotationLineRepo := repository.NewQuotationLineRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	bookingPaymentRepo := repository.NewBookingPaymentRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, passwordResetRepo, jwtManager, emailService, googleOAuthService)
	settingsService := service.NewSettingsService(settingsRepo)
	venueService := service.NewVenueService(venueRepo, venueSpaceRepo)
	roomTypeService := service.NewRoomTypeService(roomTypeRepo)
	menuService := service.NewMenuService(menuPackageRepo, menuItemRepo)
	customerService := service.NewCustomerService(customerRepo)
	enquiryService := service.NewEnquiryService(enquiryRepo, customerRepo, settingsService, emailService)
	quotationService := service.NewQuotationService(quotationRepo, quotationLineRepo, customerRepo, enquiryRepo, userRepo, settingsService, emailService)
	bookingService := service.NewBookingService(bookingRepo, bookingPaymentRepo, quotationRepo, enquiryRepo)
	dashboardService := service.NewDashboardService(analyticsRepo)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Venue:     handler.NewVenueHandler(venueService),
		RoomType:  handler.NewRoomTypeHandler(roomTypeService),
		Menu:      handler.NewMenuHandler(menuService),
		Enquiry:   handler.NewEnquiryHandler(enquiryService),
		Quotation: handler.NewQuotationHandler(quotationService),
		Booking:   handler.NewBookingHandler(bookingService),
		Customer:  handler.NewCustomerHandler(customerService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Settings:  handler.NewSettingsHandler(settingsService),
		User:      handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
