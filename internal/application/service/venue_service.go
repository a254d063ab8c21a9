package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/domain/entity"
	"github.com/venuedesk/venuedesk-api/internal/domain/repository"
	"github.com/venuedesk/venuedesk-api/pkg/apperror"
	"github.com/venuedesk/venuedesk-api/pkg/pagination"
)

// VenueService handles venue and venue space catalog operations
type VenueService struct {
	venueRepo repository.VenueRepository
	spaceRepo repository.VenueSpaceRepository
}

// NewVenueService creates a new venue service
func NewVenueService(venueRepo repository.VenueRepository, spaceRepo repository.VenueSpaceRepository) *VenueService {
	return &VenueService{
		venueRepo: venueRepo,
		spaceRepo: spaceRepo,
	}
}

// CreateVenueInput represents the input for creating a venue
type CreateVenueInput struct {
	Name        string
	Location    *string
	Description *string
	Active      bool
}

// CreateVenue creates a new venue
func (s *VenueService) CreateVenue(ctx context.Context, input *CreateVenueInput) (*entity.Venue, error) {
	venue := &entity.Venue{
		Name:        input.Name,
		Location:    input.Location,
		Description: input.Description,
		Active:      input.Active,
	}

	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return nil, err
	}

	return venue, nil
}

// GetVenue retrieves a venue with its spaces by ID
func (s *VenueService) GetVenue(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	venue, err := s.venueRepo.GetWithSpaces(ctx, id)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, apperror.NewNotFoundError("Venue")
	}
	return venue, nil
}

// ListVenues lists venues with pagination and search
func (s *VenueService) ListVenues(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) (*pagination.PaginatedResult[entity.Venue], error) {
	venues, total, err := s.venueRepo.List(ctx, params, search, activeOnly)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(venues, pag), nil
}

// UpdateVenueInput represents the input for updating a venue
type UpdateVenueInput struct {
	ID          uuid.UUID
	Name        string
	Location    *string
	Description *string
	Active      bool
}

// UpdateVenue updates a venue
func (s *VenueService) UpdateVenue(ctx context.Context, input *UpdateVenueInput) (*entity.Venue, error) {
	venue, err := s.venueRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, apperror.NewNotFoundError("Venue")
	}

	venue.Name = input.Name
	venue.Location = input.Location
	venue.Description = input.Description
	venue.Active = input.Active

	if err := s.venueRepo.Update(ctx, venue); err != nil {
		return nil, err
	}

	return venue, nil
}

// DeleteVenue deletes a venue. Existing quotation lines keep their copied
// venue names, so past quotations are unaffected.
func (s *VenueService) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if venue == nil {
		return apperror.NewNotFoundError("Venue")
	}

	return s.venueRepo.Delete(ctx, id)
}

// CreateVenueSpaceInput represents the input for creating a venue space
type CreateVenueSpaceInput struct {
	VenueID     uuid.UUID
	Name        string
	Capacity    int
	MorningRate float64
	EveningRate float64
	FullDayRate float64
}

// CreateVenueSpace adds a bookable space to a venue
func (s *VenueService) CreateVenueSpace(ctx context.Context, input *CreateVenueSpaceInput) (*entity.VenueSpace, error) {
	venue, err := s.venueRepo.GetByID(ctx, input.VenueID)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, apperror.NewNotFoundError("Venue")
	}

	space := &entity.VenueSpace{
		VenueID:     input.VenueID,
		Name:        input.Name,
		Capacity:    input.Capacity,
		MorningRate: input.MorningRate,
		EveningRate: input.EveningRate,
		FullDayRate: input.FullDayRate,
	}

	if err := s.spaceRepo.Create(ctx, space); err != nil {
		return nil, err
	}

	return space, nil
}

// ListVenueSpaces lists the spaces of a venue
func (s *VenueService) ListVenueSpaces(ctx context.Context, venueID uuid.UUID) ([]entity.VenueSpace, error) {
	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, apperror.NewNotFoundError("Venue")
	}

	return s.spaceRepo.ListByVenue(ctx, venueID)
}

// UpdateVenueSpaceInput represents the input for updating a venue space
type UpdateVenueSpaceInput struct {
	ID          uuid.UUID
	Name        string
	Capacity    int
	MorningRate float64
	EveningRate float64
	FullDayRate float64
}

// UpdateVenueSpace updates a venue space
func (s *VenueService) UpdateVenueSpace(ctx context.Context, input *UpdateVenueSpaceInput) (*entity.VenueSpace, error) {
	space, err := s.spaceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if space == nil {
		return nil, apperror.NewNotFoundError("Venue space")
	}

	space.Name = input.Name
	space.Capacity = input.Capacity
	space.MorningRate = input.MorningRate
	space.EveningRate = input.EveningRate
	space.FullDayRate = input.FullDayRate

	if err := s.spaceRepo.Update(ctx, space); err != nil {
		return nil, err
	}

	return space, nil
}

// DeleteVenueSpace deletes a venue space
func (s *VenueService) DeleteVenueSpace(ctx context.Context, id uuid.UUID) error {
	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if space == nil {
		return apperror.NewNotFoundError("Venue space")
	}

	return s.spaceRepo.Delete(ctx, id)
}
