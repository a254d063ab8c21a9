package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SystemSettings holds the venue-wide configuration. A single row exists;
// the service layer creates it with defaults on first read.
type SystemSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Pricing policy
	MaxDiscountPercentage float64 `gorm:"type:decimal(5,2);default:10" json:"max_discount_percentage"`
	IncludeGSTDefault     bool    `gorm:"default:true" json:"include_gst_default"`
	Currency              string  `gorm:"size:10;default:'INR'" json:"currency"`

	// Alerts
	AdminAlertEmail  string `gorm:"size:255" json:"admin_alert_email"`
	DiscountAlertsOn bool   `gorm:"default:true" json:"discount_alerts_on"`
	EnquiryAcksOn    bool   `gorm:"default:true" json:"enquiry_acks_on"`

	// Letterhead used on proposal documents
	CompanyName    string  `gorm:"size:255" json:"company_name"`
	CompanyAddress *string `gorm:"type:text" json:"company_address,omitempty"`
	CompanyPhone   *string `gorm:"size:50" json:"company_phone,omitempty"`
	CompanyEmail   *string `gorm:"size:255" json:"company_email,omitempty"`
	CompanyGSTIN   *string `gorm:"size:20;column:company_gstin" json:"company_gstin,omitempty"`
	LogoPath       *string `gorm:"size:255" json:"logo_path,omitempty"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *SystemSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SystemSettings model
func (SystemSettings) TableName() string {
	return "system_settings"
}
