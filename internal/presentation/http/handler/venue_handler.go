package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/application/service"
	"github.com/venuedesk/venuedesk-api/internal/presentation/http/dto/response"
	"github.com/venuedesk/venuedesk-api/pkg/pagination"
)

// VenueHandler handles venue catalog HTTP requests
type VenueHandler struct {
	venueService *service.VenueService
}

// NewVenueHandler creates a new venue handler
func NewVenueHandler(venueService *service.VenueService) *VenueHandler {
	return &VenueHandler{venueService: venueService}
}

// VenueRequest represents the create/update venue request body
type VenueRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

// VenueSpaceRequest represents the create/update venue space request body
type VenueSpaceRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Capacity    int     `json:"capacity" binding:"min=0"`
	MorningRate float64 `json:"morning_rate" binding:"min=0"`
	EveningRate float64 `json:"evening_rate" binding:"min=0"`
	FullDayRate float64 `json:"full_day_rate" binding:"min=0"`
}

// List handles listing venues
// @Summary List Venues
// @Description Get all venues with pagination and search
// @Tags venues
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /venues [get]
func (h *VenueHandler) List(c *gin.Context) {
	params := listParams(c)
	activeOnly := c.Query("active") == "true"

	result, err := h.venueService.ListVenues(c.Request.Context(), params, c.Query("search"), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Venues retrieved successfully", result)
}

// Get handles getting a venue with its spaces
// @Summary Get Venue
// @Description Get a venue by ID with its spaces
// @Tags venues
// @Security BearerAuth
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} response.APIResponse
// @Router /venues/{id} [get]
func (h *VenueHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid venue ID")
		return
	}

	venue, err := h.venueService.GetVenue(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Venue retrieved successfully", venue)
}

// Create handles creating a venue
// @Summary Create Venue
// @Description Add a venue to the catalog
// @Tags venues
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body VenueRequest true "Venue data"
// @Success 201 {object} response.APIResponse
// @Router /venues [post]
func (h *VenueHandler) Create(c *gin.Context) {
	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	venue, err := h.venueService.CreateVenue(c.Request.Context(), &service.CreateVenueInput{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Active:      active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Venue created successfully", venue)
}

// Update handles updating a venue
// @Summary Update Venue
// @Description Update a venue in the catalog
// @Tags venues
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param request body VenueRequest true "Venue data"
// @Success 200 {object} response.APIResponse
// @Router /venues/{id} [put]
func (h *VenueHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid venue ID")
		return
	}

	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	venue, err := h.venueService.UpdateVenue(c.Request.Context(), &service.UpdateVenueInput{
		ID:          id,
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Active:      active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Venue updated successfully", venue)
}

// Delete handles deleting a venue
// @Summary Delete Venue
// @Description Delete a venue from the catalog
// @Tags venues
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Success 204
// @Router /venues/{id} [delete]
func (h *VenueHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid venue ID")
		return
	}

	if err := h.venueService.DeleteVenue(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListSpaces handles listing the spaces of a venue
// @Summary List Venue Spaces
// @Description Get the bookable spaces of a venue
// @Tags venues
// @Security BearerAuth
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} response.APIResponse
// @Router /venues/{id}/spaces [get]
func (h *VenueHandler) ListSpaces(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid venue ID")
		return
	}

	spaces, err := h.venueService.ListVenueSpaces(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Venue spaces retrieved successfully", spaces)
}

// CreateSpace handles adding a space to a venue
// @Summary Create Venue Space
// @Description Add a bookable space to a venue
// @Tags venues
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param request body VenueSpaceRequest true "Space data"
// @Success 201 {object} response.APIResponse
// @Router /venues/{id}/spaces [post]
func (h *VenueHandler) CreateSpace(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid venue ID")
		return
	}

	var req VenueSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	space, err := h.venueService.CreateVenueSpace(c.Request.Context(), &service.CreateVenueSpaceInput{
		VenueID:     venueID,
		Name:        req.Name,
		Capacity:    req.Capacity,
		MorningRate: req.MorningRate,
		EveningRate: req.EveningRate,
		FullDayRate: req.FullDayRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Venue space created successfully", space)
}

// UpdateSpace handles updating a venue space
// @Summary Update Venue Space
// @Description Update a bookable space
// @Tags venues
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param spaceId path string true "Space ID"
// @Param request body VenueSpaceRequest true "Space data"
// @Success 200 {object} response.APIResponse
// @Router /venue-spaces/{spaceId} [put]
func (h *VenueHandler) UpdateSpace(c *gin.Context) {
	id, err := uuid.Parse(c.Param("spaceId"))
	if err != nil {
		response.BadRequest(c, "Invalid space ID")
		return
	}

	var req VenueSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	space, err := h.venueService.UpdateVenueSpace(c.Request.Context(), &service.UpdateVenueSpaceInput{
		ID:          id,
		Name:        req.Name,
		Capacity:    req.Capacity,
		MorningRate: req.MorningRate,
		EveningRate: req.EveningRate,
		FullDayRate: req.FullDayRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Venue space updated successfully", space)
}

// DeleteSpace handles deleting a venue space
// @Summary Delete Venue Space
// @Description Delete a bookable space
// @Tags venues
// @Security BearerAuth
// @Param spaceId path string true "Space ID"
// @Success 204
// @Router /venue-spaces/{spaceId} [delete]
func (h *VenueHandler) DeleteSpace(c *gin.Context) {
	id, err := uuid.Parse(c.Param("spaceId"))
	if err != nil {
		response.BadRequest(c, "Invalid space ID")
		return
	}

	if err := h.venueService.DeleteVenueSpace(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// listParams reads page/per_page query parameters with defaults
func listParams(c *gin.Context) *pagination.PaginationParams {
	params := pagination.DefaultPagination()
	if p := c.Query("page"); p != "" {
		if parsed, err := parsePositiveInt(p); err == nil {
			params.Page = parsed
		}
	}
	if pp := c.Query("per_page"); pp != "" {
		if parsed, err := parsePositiveInt(pp); err == nil {
			params.PerPage = parsed
		}
	}
	params.Validate()
	return params
}
