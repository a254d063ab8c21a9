package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/venuedesk/venuedesk-api/internal/config"
	"github.com/venuedesk/venuedesk-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// User-related entities
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},
		&entity.PasswordResetToken{},

		// Catalog entities
		&entity.Venue{},
		&entity.VenueSpace{},
		&entity.RoomType{},
		&entity.MenuPackage{},
		&entity.MenuItem{},

		// Sales entities
		&entity.Customer{},
		&entity.Enquiry{},
		&entity.Quotation{},
		&entity.QuotationVenueLine{},
		&entity.QuotationRoomLine{},
		&entity.QuotationMenuSelection{},
		&entity.QuotationMenuItem{},
		&entity.Booking{},
		&entity.BookingPayment{},

		// System entities
		&entity.IdempotencyKey{},
		&entity.SystemSettings{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default data (roles, permissions, admin user)
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Create default permissions
	permissions := []entity.Permission{
		{Name: "view-dashboard", GuardName: "web"},
		{Name: "manage-venues", GuardName: "web"},
		{Name: "manage-rooms", GuardName: "web"},
		{Name: "manage-menus", GuardName: "web"},
		{Name: "manage-enquiries", GuardName: "web"},
		{Name: "manage-quotations", GuardName: "web"},
		{Name: "manage-bookings", GuardName: "web"},
		{Name: "manage-customers", GuardName: "web"},
		{Name: "manage-users", GuardName: "web"},
		{Name: "manage-settings", GuardName: "web"},
	}

	for i := range permissions {
		var existing entity.Permission
		if err := db.Where("name = ?", permissions[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&permissions[i]).Error; err != nil {
				log.Printf("Warning: failed to create permission %s: %v", permissions[i].Name, err)
			}
		}
	}

	// Reload permissions with IDs
	var allPermissions []entity.Permission
	db.Find(&allPermissions)

	// Create admin role with all permissions
	var adminRole entity.Role
	if err := db.Where("name = ?", "admin").First(&adminRole).Error; err != nil {
		adminRole = entity.Role{
			Name:        "admin",
			GuardName:   "web",
			Permissions: allPermissions,
		}
		if err := db.Create(&adminRole).Error; err != nil {
			log.Printf("Warning: failed to create admin role: %v", err)
		}
	}

	// Create sales role: the day-to-day quoting desk. No catalog or user
	// administration, no settings.
	salesPermissions := []string{
		"view-dashboard",
		"manage-enquiries",
		"manage-quotations",
		"manage-bookings",
		"manage-customers",
	}
	var salesPerms []entity.Permission
	for _, name := range salesPermissions {
		for _, p := range allPermissions {
			if p.Name == name {
				salesPerms = append(salesPerms, p)
				break
			}
		}
	}

	var salesRole entity.Role
	if err := db.Where("name = ?", "sales").First(&salesRole).Error; err != nil {
		salesRole = entity.Role{
			Name:        "sales",
			GuardName:   "web",
			Permissions: salesPerms,
		}
		if err := db.Create(&salesRole).Error; err != nil {
			log.Printf("Warning: failed to create sales role: %v", err)
		}
	}

	// Create front-desk role: enquiry capture only
	frontDeskPermissions := []string{
		"view-dashboard",
		"manage-enquiries",
		"manage-customers",
	}
	var frontDeskPerms []entity.Permission
	for _, name := range frontDeskPermissions {
		for _, p := range allPermissions {
			if p.Name == name {
				frontDeskPerms = append(frontDeskPerms, p)
				break
			}
		}
	}

	var frontDeskRole entity.Role
	if err := db.Where("name = ?", "front-desk").First(&frontDeskRole).Error; err != nil {
		frontDeskRole = entity.Role{
			Name:        "front-desk",
			GuardName:   "web",
			Permissions: frontDeskPerms,
		}
		if err := db.Create(&frontDeskRole).Error; err != nil {
			log.Printf("Warning: failed to create front-desk role: %v", err)
		}
	}

	// Create the settings row if it does not exist
	var settings entity.SystemSettings
	if err := db.First(&settings).Error; err != nil {
		settings = entity.SystemSettings{
			MaxDiscountPercentage: 10,
			IncludeGSTDefault:     true,
			Currency:              "INR",
			DiscountAlertsOn:      true,
			EnquiryAcksOn:         true,
			CompanyName:           viper.GetString("COMPANY_NAME"),
		}
		if err := db.Create(&settings).Error; err != nil {
			log.Printf("Warning: failed to create system settings: %v", err)
		}
	}

	// Create admin user if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			// Hash the password
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				var aRole entity.Role
				if err := db.Where("name = ?", "admin").First(&aRole).Error; err == nil {
					if adminName == "" {
						adminName = "Admin"
					}
					// Split admin name into first and last name
					firstName := adminName
					lastName := ""
					for i, c := range adminName {
						if c == ' ' {
							firstName = adminName[:i]
							lastName = adminName[i+1:]
							break
						}
					}
					adminUser := entity.User{
						ID:        uuid.New(),
						FirstName: firstName,
						LastName:  lastName,
						Email:     adminEmail,
						Password:  string(hashedPassword),
						Roles:     []entity.Role{aRole},
					}
					if err := db.Create(&adminUser).Error; err != nil {
						log.Printf("Warning: failed to create admin user: %v", err)
					} else {
						log.Printf("Admin user created: %s", adminEmail)
					}
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
