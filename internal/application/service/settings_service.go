package service

import (
	"context"
	"os"

	"github.com/venuedesk/venuedesk-api/internal/domain/entity"
	"github.com/venuedesk/venuedesk-api/internal/domain/repository"
)

// SettingsService handles the venue-wide settings row
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves the settings row, creating defaults if none exists
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.SystemSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = &entity.SystemSettings{
			MaxDiscountPercentage: 10,
			IncludeGSTDefault:     true,
			Currency:              "INR",
			DiscountAlertsOn:      true,
			EnquiryAcksOn:         true,
			CompanyName:           os.Getenv("COMPANY_NAME"),
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating settings
type UpdateSettingsInput struct {
	MaxDiscountPercentage float64
	IncludeGSTDefault     bool
	Currency              string
	AdminAlertEmail       string
	DiscountAlertsOn      bool
	EnquiryAcksOn         bool
	CompanyName           string
	CompanyAddress        *string
	CompanyPhone          *string
	CompanyEmail          *string
	CompanyGSTIN          *string
	LogoPath              *string
}

// UpdateSettings updates the settings row
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.SystemSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings.MaxDiscountPercentage = input.MaxDiscountPercentage
	settings.IncludeGSTDefault = input.IncludeGSTDefault
	settings.Currency = input.Currency
	settings.AdminAlertEmail = input.AdminAlertEmail
	settings.DiscountAlertsOn = input.DiscountAlertsOn
	settings.EnquiryAcksOn = input.EnquiryAcksOn
	settings.CompanyName = input.CompanyName
	settings.CompanyAddress = input.CompanyAddress
	settings.CompanyPhone = input.CompanyPhone
	settings.CompanyEmail = input.CompanyEmail
	settings.CompanyGSTIN = input.CompanyGSTIN
	settings.LogoPath = input.LogoPath

	if settings.MaxDiscountPercentage < 0 {
		settings.MaxDiscountPercentage = 0
	}
	if settings.MaxDiscountPercentage > 100 {
		settings.MaxDiscountPercentage = 100
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
