package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/domain/entity"
	"github.com/venuedesk/venuedesk-api/internal/domain/enum"
	"github.com/venuedesk/venuedesk-api/pkg/pagination"
)

// QuotationRepository defines the interface for quotation data operations
type QuotationRepository interface {
	Create(ctx context.Context, quotation *entity.Quotation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	GetByReference(ctx context.Context, reference string) (*entity.Quotation, error)
	Update(ctx context.Context, quotation *entity.Quotation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *QuotationFilterParams) ([]entity.Quotation, int64, error)
	// GetWithLines loads the quotation with all three line collections and
	// menu items preloaded.
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error
	GetNextReferenceNumber(ctx context.Context) (int, error)
}

// QuotationFilterParams contains filtering parameters for quotation queries
type QuotationFilterParams struct {
	Pagination     *pagination.PaginationParams
	Search         string
	Status         *enum.QuotationStatus
	CustomerID     *uuid.UUID
	EnquiryID      *uuid.UUID
	EventFrom      *time.Time
	EventTo        *time.Time
	SortBy         string
	SortOrder      string
	SkipUserFilter bool // If true, returns all quotations (for admin)
}

// QuotationLineRepository defines the interface for the quotation line
// collections. Lines are replaced wholesale on each edit rather than
// patched row by row.
type QuotationLineRepository interface {
	ReplaceVenueLines(ctx context.Context, quotationID uuid.UUID, lines []entity.QuotationVenueLine) error
	ReplaceRoomLines(ctx context.Context, quotationID uuid.UUID, lines []entity.QuotationRoomLine) error
	ReplaceMenuSelections(ctx context.Context, quotationID uuid.UUID, selections []entity.QuotationMenuSelection) error
	DeleteByQuotationID(ctx context.Context, quotationID uuid.UUID) error
}
