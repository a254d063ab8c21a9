package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomType represents an accommodation category offered alongside the banquet
type RoomType struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Category         string         `gorm:"size:255;not null" json:"category"`
	BaseRate         float64        `gorm:"type:decimal(15,2);not null" json:"base_rate"`
	DefaultOccupancy int            `gorm:"default:2" json:"default_occupancy"`
	MaxOccupancy     int            `gorm:"default:3" json:"max_occupancy"`
	ExtraPersonRate  float64        `gorm:"type:decimal(15,2);default:0" json:"extra_person_rate"`
	RoomsAvailable   int            `gorm:"default:0" json:"rooms_available"`
	Active           bool           `gorm:"default:true" json:"active"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new room type
func (r *RoomType) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the RoomType model
func (RoomType) TableName() string {
	return "room_types"
}
