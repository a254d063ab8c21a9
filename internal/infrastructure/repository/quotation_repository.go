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

type quotationRepository struct {
	db *gorm.DB
}

// NewQuotationRepository creates a new quotation repository
func NewQuotationRepository(db *gorm.DB) domainRepo.QuotationRepository {
	return &quotationRepository{db: db}
}

func (r *quotationRepository) Create(ctx context.Context, quotation *entity.Quotation) error {
	return r.db.WithContext(ctx).Create(quotation).Error
}

func (r *quotationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	var quotation entity.Quotation
	err := r.db.WithContext(ctx).
		Preload("Customer").
		First(&quotation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quotation, err
}

func (r *quotationRepository) GetByReference(ctx context.Context, reference string) (*entity.Quotation, error) {
	var quotation entity.Quotation
	err := r.db.WithContext(ctx).First(&quotation, "reference = ?", reference).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quotation, err
}

func (r *quotationRepository) Update(ctx context.Context, quotation *entity.Quotation) error {
	return r.db.WithContext(ctx).Save(quotation).Error
}

func (r *quotationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Quotation{}, "id = ?", id).Error
}

func (r *quotationRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.QuotationFilterParams) ([]entity.Quotation, int64, error) {
	var quotations []entity.Quotation
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Quotation{})

	if !params.SkipUserFilter && userID != uuid.Nil {
		query = query.Where("user_id = ?", userID)
	}

	if params.Search != "" {
		query = query.Joins("LEFT JOIN customers ON customers.id = quotations.customer_id").
			Where("quotations.reference ILIKE ? OR customers.name ILIKE ?",
				"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("quotations.status = ?", *params.Status)
	}

	if params.CustomerID != nil {
		query = query.Where("quotations.customer_id = ?", *params.CustomerID)
	}

	if params.EnquiryID != nil {
		query = query.Where("quotations.enquiry_id = ?", *params.EnquiryID)
	}

	query = query.Scopes(EventDateBetween(params.EventFrom, params.EventTo))

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
		Order("quotations." + sortBy + " " + sortOrder).
		Find(&quotations).Error

	return quotations, total, err
}

func (r *quotationRepository) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	var quotation entity.Quotation
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("VenueLines").
		Preload("RoomLines").
		Preload("MenuSelections.Items").
		First(&quotation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quotation, err
}

func (r *quotationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Quotation{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *quotationRepository) GetNextReferenceNumber(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&entity.Quotation{}).Count(&count).Error
	return int(count) + 1, err
}

type quotationLineRepository struct {
	db *gorm.DB
}

// NewQuotationLineRepository creates a new quotation line repository
func NewQuotationLineRepository(db *gorm.DB) domainRepo.QuotationLineRepository {
	return &quotationLineRepository{db: db}
}

func (r *quotationLineRepository) ReplaceVenueLines(ctx context.Context, quotationID uuid.UUID, lines []entity.QuotationVenueLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.QuotationVenueLine{}, "quotation_id = ?", quotationID).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		for i := range lines {
			lines[i].QuotationID = quotationID
		}
		return tx.Create(&lines).Error
	})
}

func (r *quotationLineRepository) ReplaceRoomLines(ctx context.Context, quotationID uuid.UUID, lines []entity.QuotationRoomLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.QuotationRoomLine{}, "quotation_id = ?", quotationID).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		for i := range lines {
			lines[i].QuotationID = quotationID
		}
		return tx.Create(&lines).Error
	})
}

func (r *quotationLineRepository) ReplaceMenuSelections(ctx context.Context, quotationID uuid.UUID, selections []entity.QuotationMenuSelection) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.deleteMenuSelections(tx, quotationID); err != nil {
			return err
		}
		if len(selections) == 0 {
			return nil
		}
		for i := range selections {
			selections[i].QuotationID = quotationID
		}
		// Items are created through the association
		return tx.Create(&selections).Error
	})
}

func (r *quotationLineRepository) DeleteByQuotationID(ctx context.Context, quotationID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.QuotationVenueLine{}, "quotation_id = ?", quotationID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entity.QuotationRoomLine{}, "quotation_id = ?", quotationID).Error; err != nil {
			return err
		}
		return r.deleteMenuSelections(tx, quotationID)
	})
}

func (r *quotationLineRepository) deleteMenuSelections(tx *gorm.DB, quotationID uuid.UUID) error {
	var selectionIDs []uuid.UUID
	if err := tx.Model(&entity.QuotationMenuSelection{}).
		Where("quotation_id = ?", quotationID).
		Pluck("id", &selectionIDs).Error; err != nil {
		return err
	}
	if len(selectionIDs) > 0 {
		if err := tx.Delete(&entity.QuotationMenuItem{}, "selection_id IN ?", selectionIDs).Error; err != nil {
			return err
		}
	}
	return tx.Delete(&entity.QuotationMenuSelection{}, "quotation_id = ?", quotationID).Error
}
