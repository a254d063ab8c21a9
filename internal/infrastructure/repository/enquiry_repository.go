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

type enquiryRepository struct {
	db *gorm.DB
}

// NewEnquiryRepository creates a new enquiry repository
func NewEnquiryRepository(db *gorm.DB) domainRepo.EnquiryRepository {
	return &enquiryRepository{db: db}
}

func (r *enquiryRepository) Create(ctx context.Context, enquiry *entity.Enquiry) error {
	return r.db.WithContext(ctx).Create(enquiry).Error
}

func (r *enquiryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Enquiry, error) {
	var enquiry entity.Enquiry
	err := r.db.WithContext(ctx).
		Preload("Customer").
		First(&enquiry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &enquiry, err
}

func (r *enquiryRepository) GetByReference(ctx context.Context, reference string) (*entity.Enquiry, error) {
	var enquiry entity.Enquiry
	err := r.db.WithContext(ctx).First(&enquiry, "reference = ?", reference).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &enquiry, err
}

func (r *enquiryRepository) Update(ctx context.Context, enquiry *entity.Enquiry) error {
	return r.db.WithContext(ctx).Save(enquiry).Error
}

func (r *enquiryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Enquiry{}, "id = ?", id).Error
}

func (r *enquiryRepository) List(ctx context.Context, params *domainRepo.EnquiryFilterParams) ([]entity.Enquiry, int64, error) {
	var enquiries []entity.Enquiry
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Enquiry{})

	if params.Search != "" {
		query = query.Where("reference ILIKE ? OR contact_name ILIKE ? OR contact_phone ILIKE ? OR contact_email ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.Source != "" {
		query = query.Where("source = ?", params.Source)
	}

	if params.EventFrom != nil {
		query = query.Where("event_date >= ?", *params.EventFrom)
	}

	if params.EventTo != nil {
		query = query.Where("event_date <= ?", *params.EventTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder != "" && (params.SortOrder == "ASC" || params.SortOrder == "asc") {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Order(sortBy + " " + sortOrder).
		Find(&enquiries).Error

	return enquiries, total, err
}

func (r *enquiryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.EnquiryStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Enquiry{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *enquiryRepository) GetNextReferenceNumber(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&entity.Enquiry{}).Count(&count).Error
	return int(count) + 1, err
}

func (r *enquiryRepository) CountByStatus(ctx context.Context) (map[enum.EnquiryStatus]int64, error) {
	var rows []struct {
		Status enum.EnquiryStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&entity.Enquiry{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[enum.EnquiryStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
