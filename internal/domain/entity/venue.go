package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Venue represents a banquet property (lawn, hall complex, resort wing)
type Venue struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Location    *string        `gorm:"size:255" json:"location,omitempty"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	Active      bool           `gorm:"default:true" json:"active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Spaces []VenueSpace `gorm:"foreignKey:VenueID" json:"spaces,omitempty"`
}

// BeforeCreate generates a UUID before creating a new venue
func (v *Venue) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Venue model
func (Venue) TableName() string {
	return "venues"
}

// VenueSpace is a bookable area inside a venue with per-session hiring
// charges. A quotation line references one space for one session.
type VenueSpace struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	VenueID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"venue_id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Capacity    int            `gorm:"default:0" json:"capacity"`
	MorningRate float64        `gorm:"type:decimal(15,2);default:0" json:"morning_rate"`
	EveningRate float64        `gorm:"type:decimal(15,2);default:0" json:"evening_rate"`
	FullDayRate float64        `gorm:"type:decimal(15,2);default:0" json:"full_day_rate"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Venue Venue `gorm:"foreignKey:VenueID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new venue space
func (s *VenueSpace) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the VenueSpace model
func (VenueSpace) TableName() string {
	return "venue_spaces"
}

// SessionRate returns the hiring charge for the given session slot.
func (s *VenueSpace) SessionRate(session enum.SessionType) float64 {
	switch session {
	case enum.SessionMorning:
		return s.MorningRate
	case enum.SessionEvening:
		return s.EveningRate
	case enum.SessionFullDay:
		return s.FullDayRate
	}
	return 0
}
