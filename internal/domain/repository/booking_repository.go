package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/domain/entity"
	"github.com/venuedesk/venuedesk-api/internal/domain/enum"
	"github.com/venuedesk/venuedesk-api/pkg/pagination"
)

// BookingRepository defines the interface for booking data operations
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	GetByReference(ctx context.Context, reference string) (*entity.Booking, error)
	// GetByQuotationID returns the booking created from a quotation, if any
	GetByQuotationID(ctx context.Context, quotationID uuid.UUID) (*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *BookingFilterParams) ([]entity.Booking, int64, error)
	// GetWithPayments loads the booking with its payments preloaded
	GetWithPayments(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.BookingStatus) error
	GetNextReferenceNumber(ctx context.Context) (int, error)
}

// BookingFilterParams contains filtering parameters for booking queries
type BookingFilterParams struct {
	Pagination     *pagination.PaginationParams
	Search         string
	Status         *enum.BookingStatus
	CustomerID     *uuid.UUID
	EventFrom      *time.Time
	EventTo        *time.Time
	SortBy         string
	SortOrder      string
	SkipUserFilter bool // If true, returns all bookings (for admin)
}

// BookingPaymentRepository defines the interface for booking payment operations
type BookingPaymentRepository interface {
	Create(ctx context.Context, payment *entity.BookingPayment) error
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.BookingPayment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
