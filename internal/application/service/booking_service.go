package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/domain/entity"
	"github.com/venuedesk/venuedesk-api/internal/domain/enum"
	"github.com/venuedesk/venuedesk-api/internal/domain/repository"
	"github.com/venuedesk/venuedesk-api/pkg/apperror"
	"github.com/venuedesk/venuedesk-api/pkg/pagination"
	"github.com/venuedesk/venuedesk-api/pkg/utils"
)

// BookingService handles booking-related operations, including converting a
// quotation into a booking
type BookingService struct {
	bookingRepo   repository.BookingRepository
	paymentRepo   repository.BookingPaymentRepository
	quotationRepo repository.QuotationRepository
	enquiryRepo   repository.EnquiryRepository
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookingRepo repository.BookingRepository,
	paymentRepo repository.BookingPaymentRepository,
	quotationRepo repository.QuotationRepository,
	enquiryRepo repository.EnquiryRepository,
) *BookingService {
	return &BookingService{
		bookingRepo:   bookingRepo,
		paymentRepo:   paymentRepo,
		quotationRepo: quotationRepo,
		enquiryRepo:   enquiryRepo,
	}
}

// ConfirmQuotationInput represents the input for confirming a quotation
type ConfirmQuotationInput struct {
	QuotationID uuid.UUID
	UserID      uuid.UUID
	IsAdmin     bool
	Note        *string
	// Optional advance recorded at confirmation time
	AdvanceAmount float64
	AdvanceMethod string
}

// ConfirmQuotation converts a quotation into a booking. The final total is
// frozen from the quotation. Confirming twice returns the existing booking
// rather than an error, so retried requests stay safe.
func (s *BookingService) ConfirmQuotation(ctx context.Context, input *ConfirmQuotationInput) (*entity.Booking, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, input.QuotationID)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	if !input.IsAdmin && quotation.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if quotation.Status == enum.QuotationStatusCanceled {
		return nil, apperror.ErrQuotationNotEditable
	}

	existing, err := s.bookingRepo.GetByQuotationID(ctx, input.QuotationID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	// Only an offer the customer has actually received can convert
	if quotation.Status != enum.QuotationStatusSent {
		return nil, apperror.NewConflictError("Only a sent quotation can be confirmed")
	}

	nextNum, err := s.bookingRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		QuotationID: quotation.ID,
		UserID:      quotation.UserID,
		CustomerID:  quotation.CustomerID,
		Reference:   utils.FormatReference("BK", nextNum),
		EventDate:   quotation.EventDate,
		FinalTotal:  quotation.FinalTotal,
		Status:      enum.BookingStatusConfirmed,
		Note:        input.Note,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.quotationRepo.UpdateStatus(ctx, quotation.ID, enum.QuotationStatusConfirmed); err != nil {
		return nil, err
	}

	// The source enquiry is won once its quotation converts
	if quotation.EnquiryID != nil {
		if err := s.enquiryRepo.UpdateStatus(ctx, *quotation.EnquiryID, enum.EnquiryStatusWon); err != nil {
			log.Printf("Warning: failed to mark enquiry %s won: %v", quotation.EnquiryID, err)
		}
	}

	if input.AdvanceAmount > 0 {
		payment := &entity.BookingPayment{
			BookingID: booking.ID,
			Amount:    input.AdvanceAmount,
			Method:    input.AdvanceMethod,
			PaidAt:    time.Now(),
		}
		if payment.Method == "" {
			payment.Method = "cash"
		}
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			return nil, err
		}
		booking.Payments = append(booking.Payments, *payment)
	}

	return booking, nil
}

// GetBooking retrieves a booking with its payments by ID
func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := s.bookingRepo.GetWithPayments(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}
	return booking, nil
}

// ListBookingsInput represents the input for listing bookings
type ListBookingsInput struct {
	UserID     uuid.UUID
	IsAdmin    bool
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.BookingStatus
	CustomerID *uuid.UUID
	EventFrom  *time.Time
	EventTo    *time.Time
}

// ListBookings lists bookings with filtering
func (s *BookingService) ListBookings(ctx context.Context, input *ListBookingsInput) (*pagination.PaginatedResult[entity.Booking], error) {
	params := &repository.BookingFilterParams{
		Pagination:     input.Pagination,
		Search:         input.Search,
		Status:         input.Status,
		CustomerID:     input.CustomerID,
		EventFrom:      input.EventFrom,
		EventTo:        input.EventTo,
		SkipUserFilter: input.IsAdmin,
	}

	bookings, total, err := s.bookingRepo.List(ctx, input.UserID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(bookings, pag), nil
}

// UpdateBookingStatus marks a booking completed or canceled. Canceling also
// reopens the quotation so it can be revised and resent.
func (s *BookingService) UpdateBookingStatus(ctx context.Context, userID, id uuid.UUID, status enum.BookingStatus, isAdmin bool) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return apperror.NewNotFoundError("Booking")
	}

	if !isAdmin && booking.UserID != userID {
		return apperror.ErrForbidden
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	if status == enum.BookingStatusCanceled {
		if err := s.quotationRepo.UpdateStatus(ctx, booking.QuotationID, enum.QuotationStatusSent); err != nil {
			log.Printf("Warning: failed to reopen quotation for canceled booking %s: %v", booking.Reference, err)
		}
	}

	return nil
}

// RecordPaymentInput represents the input for recording a payment
type RecordPaymentInput struct {
	BookingID uuid.UUID
	UserID    uuid.UUID
	IsAdmin   bool
	Amount    float64
	Method    string
	Reference *string
	PaidAt    *time.Time
}

// RecordPayment records an advance or settlement payment against a booking
func (s *BookingService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*entity.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}

	if !input.IsAdmin && booking.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if booking.Status == enum.BookingStatusCanceled {
		return nil, apperror.NewBadRequestError("Cannot record a payment on a canceled booking")
	}

	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}

	paidAt := time.Now()
	if input.PaidAt != nil {
		paidAt = *input.PaidAt
	}

	method := input.Method
	if method == "" {
		method = "cash"
	}

	payment := &entity.BookingPayment{
		BookingID: booking.ID,
		Amount:    input.Amount,
		Method:    method,
		Reference: input.Reference,
		PaidAt:    paidAt,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return s.bookingRepo.GetWithPayments(ctx, booking.ID)
}

// DeletePayment removes a recorded payment from a booking
func (s *BookingService) DeletePayment(ctx context.Context, userID, bookingID, paymentID uuid.UUID, isAdmin bool) error {
	booking, err := s.bookingRepo.GetWithPayments(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return apperror.NewNotFoundError("Booking")
	}

	if !isAdmin && booking.UserID != userID {
		return apperror.ErrForbidden
	}

	for _, p := range booking.Payments {
		if p.ID == paymentID {
			return s.paymentRepo.Delete(ctx, paymentID)
		}
	}

	return apperror.NewNotFoundError("Payment")
}
