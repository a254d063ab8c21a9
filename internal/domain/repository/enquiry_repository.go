package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/domain/entity"
	"github.com/venuedesk/venuedesk-api/internal/domain/enum"
	"github.com/venuedesk/venuedesk-api/pkg/pagination"
)

// EnquiryRepository defines the interface for enquiry data operations
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *entity.Enquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Enquiry, error)
	GetByReference(ctx context.Context, reference string) (*entity.Enquiry, error)
	Update(ctx context.Context, enquiry *entity.Enquiry) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *EnquiryFilterParams) ([]entity.Enquiry, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.EnquiryStatus) error
	GetNextReferenceNumber(ctx context.Context) (int, error)
	// CountByStatus returns enquiry counts grouped by status for the funnel
	CountByStatus(ctx context.Context) (map[enum.EnquiryStatus]int64, error)
}

// EnquiryFilterParams contains filtering parameters for enquiry queries
type EnquiryFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.EnquiryStatus
	Source     string
	EventFrom  *time.Time
	EventTo    *time.Time
	SortBy     string
	SortOrder  string
}
