package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/domain/enum"
	"github.com/venuedesk/venuedesk-api/internal/domain/pricing"
	"gorm.io/gorm"
)

// Quotation is the priced offer for an event. It owns the three line
// collections and caches the totalizer output; the cached totals are
// recomputed on every edit and again at submit time.
type Quotation struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	EnquiryID  *uuid.UUID `gorm:"type:uuid;index" json:"enquiry_id,omitempty"`
	Reference  string     `gorm:"size:100;unique;not null" json:"reference"`
	EventDate  time.Time  `gorm:"type:date;not null" json:"event_date"`
	GuestCount int        `gorm:"default:0" json:"guest_count"`
	IncludeGST bool       `gorm:"default:true" json:"include_gst"`

	// Discount as applied, with the server-side verdict on the ceiling.
	DiscountType         pricing.DiscountType `gorm:"size:20" json:"discount_type"`
	DiscountValue        float64              `gorm:"type:decimal(15,2);default:0" json:"discount_value"`
	DiscountAmount       float64              `gorm:"type:decimal(15,2);default:0" json:"discount_amount"`
	DiscountReason       *string              `gorm:"type:text" json:"discount_reason,omitempty"`
	DiscountExceedsLimit bool                 `gorm:"default:false" json:"discount_exceeds_limit"`

	// Cached totalizer output, whole rupees.
	VenueRentalTotal float64 `gorm:"type:decimal(15,2);default:0" json:"venue_rental_total"`
	RoomTotal        float64 `gorm:"type:decimal(15,2);default:0" json:"room_total"`
	MenuTotal        float64 `gorm:"type:decimal(15,2);default:0" json:"menu_total"`
	BanquetTotal     float64 `gorm:"type:decimal(15,2);default:0" json:"banquet_total"`
	GrandTotal       float64 `gorm:"type:decimal(15,2);default:0" json:"grand_total"`
	FinalTotal       float64 `gorm:"type:decimal(15,2);default:0" json:"final_total"`

	Status    enum.QuotationStatus `gorm:"default:0" json:"status"`
	Note      *string              `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
	DeletedAt gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	User           User                     `gorm:"foreignKey:UserID" json:"-"`
	Customer       *Customer                `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Enquiry        *Enquiry                 `gorm:"foreignKey:EnquiryID" json:"-"`
	VenueLines     []QuotationVenueLine     `gorm:"foreignKey:QuotationID" json:"venue_lines,omitempty"`
	RoomLines      []QuotationRoomLine      `gorm:"foreignKey:QuotationID" json:"room_lines,omitempty"`
	MenuSelections []QuotationMenuSelection `gorm:"foreignKey:QuotationID" json:"menu_selections,omitempty"`
}

// BeforeCreate generates a UUID before creating a new quotation
func (q *Quotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quotation model
func (Quotation) TableName() string {
	return "quotations"
}

// PricingInputs maps the persisted line collections into the pricing
// value types. This is the single translation point between storage and
// the calculators.
func (q *Quotation) PricingInputs() pricing.Inputs {
	in := pricing.Inputs{
		IncludeGST: q.IncludeGST,
		Discount: pricing.DiscountSpec{
			Type:  q.DiscountType,
			Value: q.DiscountValue,
		},
	}
	// The stored reason rides along so a recompute does not erase it
	if q.DiscountReason != nil {
		in.Discount.Reason = *q.DiscountReason
	}
	for i := range q.VenueLines {
		in.Venues = append(in.Venues, q.VenueLines[i].PricingLine())
	}
	for i := range q.RoomLines {
		in.Rooms = append(in.Rooms, q.RoomLines[i].PricingLine())
	}
	for i := range q.MenuSelections {
		in.Menus = append(in.Menus, q.MenuSelections[i].PricingSelection())
	}
	return in
}

// HasLineData reports whether any line collection survives on the record.
// When none do, the proposal renderer falls back to the cached aggregates.
func (q *Quotation) HasLineData() bool {
	return len(q.VenueLines) > 0 || len(q.RoomLines) > 0 || len(q.MenuSelections) > 0
}

// QuotationVenueLine is one venue space hired for one session on one date
type QuotationVenueLine struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	QuotationID uuid.UUID      `gorm:"type:uuid;not null;index" json:"quotation_id"`
	EventDate   time.Time      `gorm:"type:date" json:"event_date"`
	VenueName   string         `gorm:"size:255" json:"venue_name"`
	SpaceName   string         `gorm:"size:255" json:"space_name"`
	Session     string         `gorm:"size:20" json:"session"`
	SessionRate float64        `gorm:"type:decimal(15,2);default:0" json:"session_rate"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new venue line
func (l *QuotationVenueLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuotationVenueLine model
func (QuotationVenueLine) TableName() string {
	return "quotation_venue_lines"
}

// PricingLine converts the stored row to a pricing value object.
func (l *QuotationVenueLine) PricingLine() pricing.VenueLine {
	return pricing.VenueLine{
		EventDate:   l.EventDate.Format("2006-01-02"),
		Venue:       l.VenueName,
		VenueSpace:  l.SpaceName,
		Session:     l.Session,
		SessionRate: l.SessionRate,
	}
}

// QuotationRoomLine is one accommodation row on the quotation
type QuotationRoomLine struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	QuotationID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"quotation_id"`
	Category         string         `gorm:"size:255" json:"category"`
	Rate             float64        `gorm:"type:decimal(15,2);default:0" json:"rate"`
	NumberOfRooms    int            `gorm:"default:1" json:"number_of_rooms"`
	TotalOccupancy   int            `gorm:"default:0" json:"total_occupancy"`
	DefaultOccupancy int            `gorm:"default:2" json:"default_occupancy"`
	MaxOccupancy     int            `gorm:"default:0" json:"max_occupancy"`
	ExtraPersonRate  float64        `gorm:"type:decimal(15,2);default:0" json:"extra_person_rate"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new room line
func (l *QuotationRoomLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuotationRoomLine model
func (QuotationRoomLine) TableName() string {
	return "quotation_room_lines"
}

// PricingLine converts the stored row to a pricing value object.
func (l *QuotationRoomLine) PricingLine() pricing.RoomLine {
	return pricing.RoomLine{
		Category:         l.Category,
		Rate:             l.Rate,
		NumberOfRooms:    l.NumberOfRooms,
		TotalOccupancy:   l.TotalOccupancy,
		DefaultOccupancy: l.DefaultOccupancy,
		MaxOccupancy:     l.MaxOccupancy,
		ExtraPersonRate:  l.ExtraPersonRate,
	}
}

// QuotationMenuSelection is one menu package chosen on the quotation,
// optionally with a negotiated price overriding the catalog price
type QuotationMenuSelection struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	QuotationID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"quotation_id"`
	PackageID          *uuid.UUID     `gorm:"type:uuid;index" json:"package_id,omitempty"`
	PackageName        string         `gorm:"size:255" json:"package_name"`
	PackagePrice       float64        `gorm:"type:decimal(15,2);default:0" json:"package_price"`
	CustomPackagePrice *float64       `gorm:"type:decimal(15,2)" json:"custom_package_price,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []QuotationMenuItem `gorm:"foreignKey:SelectionID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new menu selection
func (s *QuotationMenuSelection) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuotationMenuSelection model
func (QuotationMenuSelection) TableName() string {
	return "quotation_menu_selections"
}

// PricingSelection converts the stored selection to a pricing value object.
func (s *QuotationMenuSelection) PricingSelection() pricing.MenuSelection {
	sel := pricing.MenuSelection{
		PackageName:        s.PackageName,
		PackagePrice:       s.PackagePrice,
		CustomPackagePrice: s.CustomPackagePrice,
	}
	if s.PackageID != nil {
		sel.PackageID = s.PackageID.String()
	}
	for _, it := range s.Items {
		sel.Items = append(sel.Items, pricing.MenuItemLine{
			Name:            it.Name,
			IsPackageItem:   it.IsPackageItem,
			Price:           it.Price,
			AdditionalPrice: it.AdditionalPrice,
			Quantity:        it.Quantity,
		})
	}
	return sel
}

// QuotationMenuItem is a dish row under a menu selection
type QuotationMenuItem struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SelectionID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"selection_id"`
	MenuItemID      *uuid.UUID     `gorm:"type:uuid" json:"menu_item_id,omitempty"`
	Name            string         `gorm:"size:255" json:"name"`
	IsPackageItem   bool           `gorm:"default:true" json:"is_package_item"`
	Price           float64        `gorm:"type:decimal(15,2);default:0" json:"price"`
	AdditionalPrice float64        `gorm:"type:decimal(15,2);default:0" json:"additional_price"`
	Quantity        int            `gorm:"default:1" json:"quantity"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new menu item row
func (i *QuotationMenuItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuotationMenuItem model
func (QuotationMenuItem) TableName() string {
	return "quotation_menu_items"
}
