package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/domain/entity"
	"github.com/venuedesk/venuedesk-api/internal/domain/enum"
	domainRepo "github.com/venuedesk/venuedesk-api/internal/domain/repository"
	"gorm.io/gorm"
)

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) domainRepo.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.WithContext(ctx).
		Preload("Customer").
		First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &booking, err
}

func (r *bookingRepository) GetByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.WithContext(ctx).First(&booking, "reference = ?", reference).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &booking, err
}

func (r *bookingRepository) GetByQuotationID(ctx context.Context, quotationID uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.WithContext(ctx).First(&booking, "quotation_id = ?", quotationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &booking, err
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Booking{}, "id = ?", id).Error
}

func (r *bookingRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.BookingFilterParams) ([]entity.Booking, int64, error) {
	var bookings []entity.Booking
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Booking{})

	if !params.SkipUserFilter && userID != uuid.Nil {
		query = query.Where("user_id = ?", userID)
	}

	if params.Search != "" {
		query = query.Joins("LEFT JOIN customers ON customers.id = bookings.customer_id").
			Where("bookings.reference ILIKE ? OR customers.name ILIKE ?",
				"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("bookings.status = ?", *params.Status)
	}

	if params.CustomerID != nil {
		query = query.Where("bookings.customer_id = ?", *params.CustomerID)
	}

	query = query.Scopes(EventDateBetween(params.EventFrom, params.EventTo))

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "event_date"
	sortOrder := "ASC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder != "" && (params.SortOrder == "DESC" || params.SortOrder == "desc") {
		sortOrder = "DESC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Preload("Payments").
		Order("bookings." + sortBy + " " + sortOrder).
		Find(&bookings).Error

	return bookings, total, err
}

func (r *bookingRepository) GetWithPayments(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Payments").
		Preload("Quotation").
		First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &booking, err
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.BookingStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *bookingRepository) GetNextReferenceNumber(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&entity.Booking{}).Count(&count).Error
	return int(count) + 1, err
}

type bookingPaymentRepository struct {
	db *gorm.DB
}

// NewBookingPaymentRepository creates a new booking payment repository
func NewBookingPaymentRepository(db *gorm.DB) domainRepo.BookingPaymentRepository {
	return &bookingPaymentRepository{db: db}
}

func (r *bookingPaymentRepository) Create(ctx context.Context, payment *entity.BookingPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *bookingPaymentRepository) GetByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.BookingPayment, error) {
	var payments []entity.BookingPayment
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("paid_at ASC").
		Find(&payments).Error
	return payments, err
}

func (r *bookingPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.BookingPayment{}, "id = ?", id).Error
}
