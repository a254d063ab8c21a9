package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/domain/entity"
	domainRepo "github.com/venuedesk/venuedesk-api/internal/domain/repository"
	"github.com/venuedesk/venuedesk-api/pkg/pagination"
	"gorm.io/gorm"
)

type venueRepository struct {
	db *gorm.DB
}

// NewVenueRepository creates a new venue repository
func NewVenueRepository(db *gorm.DB) domainRepo.VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) Create(ctx context.Context, venue *entity.Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *venueRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	var venue entity.Venue
	err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &venue, err
}

func (r *venueRepository) GetWithSpaces(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	var venue entity.Venue
	err := r.db.WithContext(ctx).
		Preload("Spaces").
		First(&venue, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &venue, err
}

func (r *venueRepository) Update(ctx context.Context, venue *entity.Venue) error {
	return r.db.WithContext(ctx).Save(venue).Error
}

func (r *venueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Venue{}, "id = ?", id).Error
}

func (r *venueRepository) List(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) ([]entity.Venue, int64, error) {
	var venues []entity.Venue
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Venue{}).
		Scopes(SearchILike(search, "name", "location"))
	if activeOnly {
		query = query.Scopes(ActiveOnly)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Spaces").
		Order("name ASC").
		Find(&venues).Error

	return venues, total, err
}

type venueSpaceRepository struct {
	db *gorm.DB
}

// NewVenueSpaceRepository creates a new venue space repository
func NewVenueSpaceRepository(db *gorm.DB) domainRepo.VenueSpaceRepository {
	return &venueSpaceRepository{db: db}
}

func (r *venueSpaceRepository) Create(ctx context.Context, space *entity.VenueSpace) error {
	return r.db.WithContext(ctx).Create(space).Error
}

func (r *venueSpaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.VenueSpace, error) {
	var space entity.VenueSpace
	err := r.db.WithContext(ctx).
		Preload("Venue").
		First(&space, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &space, err
}

func (r *venueSpaceRepository) Update(ctx context.Context, space *entity.VenueSpace) error {
	return r.db.WithContext(ctx).Save(space).Error
}

func (r *venueSpaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.VenueSpace{}, "id = ?", id).Error
}

func (r *venueSpaceRepository) ListByVenue(ctx context.Context, venueID uuid.UUID) ([]entity.VenueSpace, error) {
	var spaces []entity.VenueSpace
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("name ASC").
		Find(&spaces).Error
	return spaces, err
}

type roomTypeRepository struct {
	db *gorm.DB
}

// NewRoomTypeRepository creates a new room type repository
func NewRoomTypeRepository(db *gorm.DB) domainRepo.RoomTypeRepository {
	return &roomTypeRepository{db: db}
}

func (r *roomTypeRepository) Create(ctx context.Context, roomType *entity.RoomType) error {
	return r.db.WithContext(ctx).Create(roomType).Error
}

func (r *roomTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error) {
	var roomType entity.RoomType
	err := r.db.WithContext(ctx).First(&roomType, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &roomType, err
}

func (r *roomTypeRepository) Update(ctx context.Context, roomType *entity.RoomType) error {
	return r.db.WithContext(ctx).Save(roomType).Error
}

func (r *roomTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.RoomType{}, "id = ?", id).Error
}

func (r *roomTypeRepository) List(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) ([]entity.RoomType, int64, error) {
	var roomTypes []entity.RoomType
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.RoomType{}).
		Scopes(SearchILike(search, "category"))
	if activeOnly {
		query = query.Scopes(ActiveOnly)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("category ASC").
		Find(&roomTypes).Error

	return roomTypes, total, err
}

type menuPackageRepository struct {
	db *gorm.DB
}

// NewMenuPackageRepository creates a new menu package repository
func NewMenuPackageRepository(db *gorm.DB) domainRepo.MenuPackageRepository {
	return &menuPackageRepository{db: db}
}

func (r *menuPackageRepository) Create(ctx context.Context, pkg *entity.MenuPackage) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *menuPackageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuPackage, error) {
	var pkg entity.MenuPackage
	err := r.db.WithContext(ctx).First(&pkg, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &pkg, err
}

func (r *menuPackageRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.MenuPackage, error) {
	var pkg entity.MenuPackage
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&pkg, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &pkg, err
}

func (r *menuPackageRepository) Update(ctx context.Context, pkg *entity.MenuPackage) error {
	return r.db.WithContext(ctx).Save(pkg).Error
}

func (r *menuPackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.MenuPackage{}, "id = ?", id).Error
}

func (r *menuPackageRepository) List(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) ([]entity.MenuPackage, int64, error) {
	var packages []entity.MenuPackage
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.MenuPackage{}).
		Scopes(SearchILike(search, "name", "type"))
	if activeOnly {
		query = query.Scopes(ActiveOnly)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Items").
		Order("name ASC").
		Find(&packages).Error

	return packages, total, err
}

type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository creates a new menu item repository
func NewMenuItemRepository(db *gorm.DB) domainRepo.MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *menuItemRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error) {
	if len(ids) == 0 {
		return []entity.MenuItem{}, nil
	}
	var items []entity.MenuItem
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *menuItemRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.MenuItem{}, "id = ?", id).Error
}

func (r *menuItemRepository) ListByPackage(ctx context.Context, packageID uuid.UUID) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.db.WithContext(ctx).
		Where("package_id = ?", packageID).
		Order("category ASC, name ASC").
		Find(&items).Error
	return items, err
}

func (r *menuItemRepository) ListALaCarte(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.MenuItem, int64, error) {
	var items []entity.MenuItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.MenuItem{}).
		Where("package_id IS NULL").
		Scopes(SearchILike(search, "name", "category"))

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&items).Error

	return items, total, err
}
