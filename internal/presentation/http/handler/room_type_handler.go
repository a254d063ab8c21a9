package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/application/service"
	"github.com/venuedesk/venuedesk-api/internal/presentation/http/dto/response"
)

// RoomTypeHandler handles room category catalog HTTP requests
type RoomTypeHandler struct {
	roomTypeService *service.RoomTypeService
}

// NewRoomTypeHandler creates a new room type handler
func NewRoomTypeHandler(roomTypeService *service.RoomTypeService) *RoomTypeHandler {
	return &RoomTypeHandler{roomTypeService: roomTypeService}
}

// RoomTypeRequest represents the create/update room type request body
type RoomTypeRequest struct {
	Category         string  `json:"category" binding:"required,min=2,max=255"`
	BaseRate         float64 `json:"base_rate" binding:"min=0"`
	DefaultOccupancy int     `json:"default_occupancy" binding:"min=1"`
	MaxOccupancy     int     `json:"max_occupancy" binding:"min=1"`
	ExtraPersonRate  float64 `json:"extra_person_rate" binding:"min=0"`
	RoomsAvailable   int     `json:"rooms_available" binding:"min=0"`
	Active           *bool   `json:"active"`
}

func (r *RoomTypeRequest) toInput() *service.RoomTypeInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &service.RoomTypeInput{
		Category:         r.Category,
		BaseRate:         r.BaseRate,
		DefaultOccupancy: r.DefaultOccupancy,
		MaxOccupancy:     r.MaxOccupancy,
		ExtraPersonRate:  r.ExtraPersonRate,
		RoomsAvailable:   r.RoomsAvailable,
		Active:           active,
	}
}

// List handles listing room types
// @Summary List Room Types
// @Description Get all room types with pagination and search
// @Tags room-types
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /room-types [get]
func (h *RoomTypeHandler) List(c *gin.Context) {
	params := listParams(c)
	activeOnly := c.Query("active") == "true"

	result, err := h.roomTypeService.ListRoomTypes(c.Request.Context(), params, c.Query("search"), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Room types retrieved successfully", result)
}

// Get handles getting a single room type
// @Summary Get Room Type
// @Description Get a room type by ID
// @Tags room-types
// @Security BearerAuth
// @Produce json
// @Param id path string true "Room type ID"
// @Success 200 {object} response.APIResponse
// @Router /room-types/{id} [get]
func (h *RoomTypeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room type ID")
		return
	}

	roomType, err := h.roomTypeService.GetRoomType(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Room type retrieved successfully", roomType)
}

// Create handles creating a room type
// @Summary Create Room Type
// @Description Add a room category to the catalog
// @Tags room-types
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body RoomTypeRequest true "Room type data"
// @Success 201 {object} response.APIResponse
// @Router /room-types [post]
func (h *RoomTypeHandler) Create(c *gin.Context) {
	var req RoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	roomType, err := h.roomTypeService.CreateRoomType(c.Request.Context(), req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Room type created successfully", roomType)
}

// Update handles updating a room type
// @Summary Update Room Type
// @Description Update a room category in the catalog
// @Tags room-types
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Room type ID"
// @Param request body RoomTypeRequest true "Room type data"
// @Success 200 {object} response.APIResponse
// @Router /room-types/{id} [put]
func (h *RoomTypeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room type ID")
		return
	}

	var req RoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	roomType, err := h.roomTypeService.UpdateRoomType(c.Request.Context(), id, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Room type updated successfully", roomType)
}

// Delete handles deleting a room type
// @Summary Delete Room Type
// @Description Delete a room category from the catalog
// @Tags room-types
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Success 204
// @Router /room-types/{id} [delete]
func (h *RoomTypeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room type ID")
		return
	}

	if err := h.roomTypeService.DeleteRoomType(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
