package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuPackage represents a catering package with a per-plate or per-event price
type MenuPackage struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Type        string         `gorm:"size:50;default:'veg'" json:"type"`
	Price       float64        `gorm:"type:decimal(15,2);not null" json:"price"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	Active      bool           `gorm:"default:true" json:"active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []MenuItem `gorm:"foreignKey:PackageID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new menu package
func (p *MenuPackage) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuPackage model
func (MenuPackage) TableName() string {
	return "menu_packages"
}

// MenuItem is a dish. Items with a PackageID belong to that package; items
// without one are a-la-carte additions priced via AdditionalPrice.
type MenuItem struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PackageID       *uuid.UUID     `gorm:"type:uuid;index" json:"package_id,omitempty"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Category        string         `gorm:"size:100" json:"category"`
	Price           float64        `gorm:"type:decimal(15,2);default:0" json:"price"`
	AdditionalPrice float64        `gorm:"type:decimal(15,2);default:0" json:"additional_price"`
	Active          bool           `gorm:"default:true" json:"active"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new menu item
func (i *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}
