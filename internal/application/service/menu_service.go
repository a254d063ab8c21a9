package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/domain/entity"
	"github.com/venuedesk/venuedesk-api/internal/domain/repository"
	"github.com/venuedesk/venuedesk-api/pkg/apperror"
	"github.com/venuedesk/venuedesk-api/pkg/pagination"
)

// MenuService handles menu package and menu item catalog operations
type MenuService struct {
	packageRepo repository.MenuPackageRepository
	itemRepo    repository.MenuItemRepository
}

// NewMenuService creates a new menu service
func NewMenuService(packageRepo repository.MenuPackageRepository, itemRepo repository.MenuItemRepository) *MenuService {
	return &MenuService{
		packageRepo: packageRepo,
		itemRepo:    itemRepo,
	}
}

// CreateMenuPackageInput represents the input for creating a menu package
type CreateMenuPackageInput struct {
	Name        string
	Type        string
	Price       float64
	Description *string
	Active      bool
}

// CreateMenuPackage creates a new menu package
func (s *MenuService) CreateMenuPackage(ctx context.Context, input *CreateMenuPackageInput) (*entity.MenuPackage, error) {
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Package price cannot be negative")
	}

	pkg := &entity.MenuPackage{
		Name:        input.Name,
		Type:        input.Type,
		Price:       input.Price,
		Description: input.Description,
		Active:      input.Active,
	}
	if pkg.Type == "" {
		pkg.Type = "veg"
	}

	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		return nil, err
	}

	return pkg, nil
}

// GetMenuPackage retrieves a menu package with its items by ID
func (s *MenuService) GetMenuPackage(ctx context.Context, id uuid.UUID) (*entity.MenuPackage, error) {
	pkg, err := s.packageRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, apperror.NewNotFoundError("Menu package")
	}
	return pkg, nil
}

// ListMenuPackages lists menu packages with pagination and search
func (s *MenuService) ListMenuPackages(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) (*pagination.PaginatedResult[entity.MenuPackage], error) {
	packages, total, err := s.packageRepo.List(ctx, params, search, activeOnly)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(packages, pag), nil
}

// UpdateMenuPackageInput represents the input for updating a menu package
type UpdateMenuPackageInput struct {
	ID          uuid.UUID
	Name        string
	Type        string
	Price       float64
	Description *string
	Active      bool
}

// UpdateMenuPackage updates a menu package. Price changes never touch
// existing quotations, which copied the price when their lines were built.
func (s *MenuService) UpdateMenuPackage(ctx context.Context, input *UpdateMenuPackageInput) (*entity.MenuPackage, error) {
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Package price cannot be negative")
	}

	pkg, err := s.packageRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, apperror.NewNotFoundError("Menu package")
	}

	pkg.Name = input.Name
	pkg.Type = input.Type
	pkg.Price = input.Price
	pkg.Description = input.Description
	pkg.Active = input.Active

	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		return nil, err
	}

	return pkg, nil
}

// DeleteMenuPackage deletes a menu package
func (s *MenuService) DeleteMenuPackage(ctx context.Context, id uuid.UUID) error {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if pkg == nil {
		return apperror.NewNotFoundError("Menu package")
	}

	return s.packageRepo.Delete(ctx, id)
}

// CreateMenuItemInput represents the input for creating a menu item
type CreateMenuItemInput struct {
	PackageID       *uuid.UUID
	Name            string
	Category        string
	Price           float64
	AdditionalPrice float64
	Active          bool
}

// CreateMenuItem creates a new menu item, attached to a package or a-la-carte
func (s *MenuService) CreateMenuItem(ctx context.Context, input *CreateMenuItemInput) (*entity.MenuItem, error) {
	if input.Price < 0 || input.AdditionalPrice < 0 {
		return nil, apperror.NewBadRequestError("Item prices cannot be negative")
	}

	if input.PackageID != nil {
		pkg, err := s.packageRepo.GetByID(ctx, *input.PackageID)
		if err != nil {
			return nil, err
		}
		if pkg == nil {
			return nil, apperror.NewNotFoundError("Menu package")
		}
	}

	item := &entity.MenuItem{
		PackageID:       input.PackageID,
		Name:            input.Name,
		Category:        input.Category,
		Price:           input.Price,
		AdditionalPrice: input.AdditionalPrice,
		Active:          input.Active,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// GetMenuItem retrieves a menu item by ID
func (s *MenuService) GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// ListPackageItems lists the items belonging to a package
func (s *MenuService) ListPackageItems(ctx context.Context, packageID uuid.UUID) ([]entity.MenuItem, error) {
	pkg, err := s.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, apperror.NewNotFoundError("Menu package")
	}

	return s.itemRepo.ListByPackage(ctx, packageID)
}

// ListALaCarteItems lists items not attached to any package
func (s *MenuService) ListALaCarteItems(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.MenuItem], error) {
	items, total, err := s.itemRepo.ListALaCarte(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// UpdateMenuItemInput represents the input for updating a menu item
type UpdateMenuItemInput struct {
	ID              uuid.UUID
	PackageID       *uuid.UUID
	Name            string
	Category        string
	Price           float64
	AdditionalPrice float64
	Active          bool
}

// UpdateMenuItem updates a menu item
func (s *MenuService) UpdateMenuItem(ctx context.Context, input *UpdateMenuItemInput) (*entity.MenuItem, error) {
	if input.Price < 0 || input.AdditionalPrice < 0 {
		return nil, apperror.NewBadRequestError("Item prices cannot be negative")
	}

	item, err := s.itemRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	if input.PackageID != nil {
		pkg, err := s.packageRepo.GetByID(ctx, *input.PackageID)
		if err != nil {
			return nil, err
		}
		if pkg == nil {
			return nil, apperror.NewNotFoundError("Menu package")
		}
	}

	item.PackageID = input.PackageID
	item.Name = input.Name
	item.Category = input.Category
	item.Price = input.Price
	item.AdditionalPrice = input.AdditionalPrice
	item.Active = input.Active

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteMenuItem deletes a menu item
func (s *MenuService) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}

	return s.itemRepo.Delete(ctx, id)
}
