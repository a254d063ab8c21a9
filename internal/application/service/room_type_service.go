package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/domain/entity"
	"github.com/venuedesk/venuedesk-api/internal/domain/repository"
	"github.com/venuedesk/venuedesk-api/pkg/apperror"
	"github.com/venuedesk/venuedesk-api/pkg/pagination"
)

// RoomTypeService handles room category catalog operations
type RoomTypeService struct {
	roomTypeRepo repository.RoomTypeRepository
}

// NewRoomTypeService creates a new room type service
func NewRoomTypeService(roomTypeRepo repository.RoomTypeRepository) *RoomTypeService {
	return &RoomTypeService{
		roomTypeRepo: roomTypeRepo,
	}
}

// RoomTypeInput represents the input for creating or updating a room type
type RoomTypeInput struct {
	Category         string
	BaseRate         float64
	DefaultOccupancy int
	MaxOccupancy     int
	ExtraPersonRate  float64
	RoomsAvailable   int
	Active           bool
}

func (in *RoomTypeInput) validate() error {
	if in.BaseRate < 0 {
		return apperror.NewBadRequestError("Base rate cannot be negative")
	}
	if in.DefaultOccupancy < 1 {
		return apperror.NewBadRequestError("Default occupancy must be at least 1")
	}
	if in.MaxOccupancy < in.DefaultOccupancy {
		return apperror.NewBadRequestError("Max occupancy cannot be below default occupancy")
	}
	return nil
}

// CreateRoomType creates a new room type
func (s *RoomTypeService) CreateRoomType(ctx context.Context, input *RoomTypeInput) (*entity.RoomType, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	roomType := &entity.RoomType{
		Category:         input.Category,
		BaseRate:         input.BaseRate,
		DefaultOccupancy: input.DefaultOccupancy,
		MaxOccupancy:     input.MaxOccupancy,
		ExtraPersonRate:  input.ExtraPersonRate,
		RoomsAvailable:   input.RoomsAvailable,
		Active:           input.Active,
	}

	if err := s.roomTypeRepo.Create(ctx, roomType); err != nil {
		return nil, err
	}

	return roomType, nil
}

// GetRoomType retrieves a room type by ID
func (s *RoomTypeService) GetRoomType(ctx context.Context, id uuid.UUID) (*entity.RoomType, error) {
	roomType, err := s.roomTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if roomType == nil {
		return nil, apperror.NewNotFoundError("Room type")
	}
	return roomType, nil
}

// ListRoomTypes lists room types with pagination and search
func (s *RoomTypeService) ListRoomTypes(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) (*pagination.PaginatedResult[entity.RoomType], error) {
	roomTypes, total, err := s.roomTypeRepo.List(ctx, params, search, activeOnly)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(roomTypes, pag), nil
}

// UpdateRoomType updates a room type
func (s *RoomTypeService) UpdateRoomType(ctx context.Context, id uuid.UUID, input *RoomTypeInput) (*entity.RoomType, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	roomType, err := s.roomTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if roomType == nil {
		return nil, apperror.NewNotFoundError("Room type")
	}

	roomType.Category = input.Category
	roomType.BaseRate = input.BaseRate
	roomType.DefaultOccupancy = input.DefaultOccupancy
	roomType.MaxOccupancy = input.MaxOccupancy
	roomType.ExtraPersonRate = input.ExtraPersonRate
	roomType.RoomsAvailable = input.RoomsAvailable
	roomType.Active = input.Active

	if err := s.roomTypeRepo.Update(ctx, roomType); err != nil {
		return nil, err
	}

	return roomType, nil
}

// DeleteRoomType deletes a room type. Quotation lines copied the category and
// rates, so existing quotations keep pricing correctly.
func (s *RoomTypeService) DeleteRoomType(ctx context.Context, id uuid.UUID) error {
	roomType, err := s.roomTypeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if roomType == nil {
		return apperror.NewNotFoundError("Room type")
	}

	return s.roomTypeRepo.Delete(ctx, id)
}
