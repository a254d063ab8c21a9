package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Enquiry is an incoming event lead captured before any pricing happens.
// Winning an enquiry means a quotation built from it got confirmed.
type Enquiry struct {
	ID           uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID       *uuid.UUID         `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CustomerID   *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Reference    string             `gorm:"size:100;unique;not null" json:"reference"`
	ContactName  string             `gorm:"size:255;not null" json:"contact_name"`
	ContactPhone *string            `gorm:"size:50" json:"contact_phone,omitempty"`
	ContactEmail *string            `gorm:"size:255" json:"contact_email,omitempty"`
	EventType    string             `gorm:"size:100" json:"event_type"`
	EventDate    *time.Time         `gorm:"type:date" json:"event_date,omitempty"`
	GuestCount   int                `gorm:"default:0" json:"guest_count"`
	Source       string             `gorm:"size:100" json:"source"`
	Status       enum.EnquiryStatus `gorm:"default:0" json:"status"`
	Notes        *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	DeletedAt    gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User       *User       `gorm:"foreignKey:UserID" json:"-"`
	Customer   *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Quotations []Quotation `gorm:"foreignKey:EnquiryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new enquiry
func (e *Enquiry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Enquiry model
func (Enquiry) TableName() string {
	return "enquiries"
}
