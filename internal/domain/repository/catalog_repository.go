package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/domain/entity"
	"github.com/venuedesk/venuedesk-api/pkg/pagination"
)

// VenueRepository defines the interface for venue data operations
type VenueRepository interface {
	Create(ctx context.Context, venue *entity.Venue) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error)
	// GetWithSpaces loads the venue with its spaces preloaded
	GetWithSpaces(ctx context.Context, id uuid.UUID) (*entity.Venue, error)
	Update(ctx context.Context, venue *entity.Venue) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) ([]entity.Venue, int64, error)
}

// VenueSpaceRepository defines the interface for venue space data operations
type VenueSpaceRepository interface {
	Create(ctx context.Context, space *entity.VenueSpace) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.VenueSpace, error)
	Update(ctx context.Context, space *entity.VenueSpace) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByVenue(ctx context.Context, venueID uuid.UUID) ([]entity.VenueSpace, error)
}

// RoomTypeRepository defines the interface for room type data operations
type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *entity.RoomType) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error)
	Update(ctx context.Context, roomType *entity.RoomType) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) ([]entity.RoomType, int64, error)
}

// MenuPackageRepository defines the interface for menu package data operations
type MenuPackageRepository interface {
	Create(ctx context.Context, pkg *entity.MenuPackage) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuPackage, error)
	// GetWithItems loads the package with its items preloaded
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.MenuPackage, error)
	Update(ctx context.Context, pkg *entity.MenuPackage) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) ([]entity.MenuPackage, int64, error)
}

// MenuItemRepository defines the interface for menu item data operations
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	// GetByIDs retrieves multiple items in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPackage(ctx context.Context, packageID uuid.UUID) ([]entity.MenuItem, error)
	// ListALaCarte returns items not attached to any package
	ListALaCarte(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.MenuItem, int64, error)
}
