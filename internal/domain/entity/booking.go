package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Booking is a confirmed quotation. The financial figures are frozen from
// the quotation at confirmation time; later catalog edits never touch them.
type Booking struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	QuotationID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex" json:"quotation_id"`
	UserID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID  *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Reference   string             `gorm:"size:100;unique;not null" json:"reference"`
	EventDate   time.Time          `gorm:"type:date;not null" json:"event_date"`
	FinalTotal  float64            `gorm:"type:decimal(15,2);default:0" json:"final_total"`
	Status      enum.BookingStatus `gorm:"default:0" json:"status"`
	Note        *string            `gorm:"type:text" json:"note,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Quotation Quotation        `gorm:"foreignKey:QuotationID" json:"quotation,omitempty"`
	User      User             `gorm:"foreignKey:UserID" json:"-"`
	Customer  *Customer        `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Payments  []BookingPayment `gorm:"foreignKey:BookingID" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new booking
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// AdvanceReceived sums the recorded payments.
func (b *Booking) AdvanceReceived() float64 {
	var total float64
	for _, p := range b.Payments {
		total += p.Amount
	}
	return total
}

// BalanceDue is the final total minus payments received, floored at zero.
func (b *Booking) BalanceDue() float64 {
	bal := b.FinalTotal - b.AdvanceReceived()
	if bal < 0 {
		return 0
	}
	return bal
}

// BookingPayment records one advance or settlement payment against a booking
type BookingPayment struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BookingID uuid.UUID      `gorm:"type:uuid;not null;index" json:"booking_id"`
	Amount    float64        `gorm:"type:decimal(15,2);not null" json:"amount"`
	Method    string         `gorm:"size:50;default:'cash'" json:"method"`
	Reference *string        `gorm:"size:255" json:"reference,omitempty"`
	PaidAt    time.Time      `json:"paid_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *BookingPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BookingPayment model
func (BookingPayment) TableName() string {
	return "booking_payments"
}
