package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/application/service"
	"github.com/venuedesk/venuedesk-api/internal/domain/enum"
	"github.com/venuedesk/venuedesk-api/internal/presentation/http/dto/response"
	"github.com/venuedesk/venuedesk-api/pkg/pagination"
)

// EnquiryHandler handles enquiry-related HTTP requests
type EnquiryHandler struct {
	enquiryService *service.EnquiryService
}

// NewEnquiryHandler creates a new enquiry handler
func NewEnquiryHandler(enquiryService *service.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiryService: enquiryService}
}

// EnquiryRequest represents the create/update enquiry request body
type EnquiryRequest struct {
	CustomerID   *uuid.UUID `json:"customer_id"`
	ContactName  string     `json:"contact_name" binding:"required,min=2,max=255"`
	ContactPhone *string    `json:"contact_phone"`
	ContactEmail *string    `json:"contact_email" binding:"omitempty,email"`
	EventType    string     `json:"event_type"`
	EventDate    *string    `json:"event_date"`
	GuestCount   int        `json:"guest_count" binding:"min=0"`
	Source       string     `json:"source"`
	Notes        *string    `json:"notes"`
}

func (r *EnquiryRequest) parsedEventDate() (*time.Time, bool) {
	if r.EventDate == nil || *r.EventDate == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", *r.EventDate)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// List handles listing enquiries
// @Summary List Enquiries
// @Description Get all enquiries with pagination and filtering
// @Tags enquiries
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param status query int false "Status filter"
// @Success 200 {object} response.APIResponse
// @Router /enquiries [get]
func (h *EnquiryHandler) List(c *gin.Context) {
	page := 1
	perPage := 15
	if p := c.Query("page"); p != "" {
		if parsed, err := parsePositiveInt(p); err == nil {
			page = parsed
		}
	}
	if pp := c.Query("per_page"); pp != "" {
		if parsed, err := parsePositiveInt(pp); err == nil {
			perPage = parsed
		}
	}

	input := &service.ListEnquiriesInput{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
		Source: c.Query("source"),
	}

	if s := c.Query("status"); s != "" {
		if parsed, err := parseNonNegativeInt(s); err == nil {
			st := enum.EnquiryStatus(parsed)
			input.Status = &st
		}
	}
	if from := c.Query("event_from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			input.EventFrom = &t
		}
	}
	if to := c.Query("event_to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			input.EventTo = &t
		}
	}

	result, err := h.enquiryService.ListEnquiries(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Enquiries retrieved successfully", result)
}

// Get handles getting a single enquiry
// @Summary Get Enquiry
// @Description Get an enquiry by ID
// @Tags enquiries
// @Security BearerAuth
// @Produce json
// @Param id path string true "Enquiry ID"
// @Success 200 {object} response.APIResponse
// @Router /enquiries/{id} [get]
func (h *EnquiryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid enquiry ID")
		return
	}

	enquiry, err := h.enquiryService.GetEnquiry(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Enquiry retrieved successfully", enquiry)
}

// Create handles creating an enquiry
// @Summary Create Enquiry
// @Description Record a new event lead
// @Tags enquiries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body EnquiryRequest true "Enquiry data"
// @Success 201 {object} response.APIResponse
// @Router /enquiries [post]
func (h *EnquiryHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req EnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	eventDate, ok := req.parsedEventDate()
	if !ok {
		response.BadRequest(c, "Invalid event date format. Use YYYY-MM-DD")
		return
	}

	enquiry, err := h.enquiryService.CreateEnquiry(c.Request.Context(), &service.CreateEnquiryInput{
		UserID:       userID,
		CustomerID:   req.CustomerID,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		EventType:    req.EventType,
		EventDate:    eventDate,
		GuestCount:   req.GuestCount,
		Source:       req.Source,
		Notes:        req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Enquiry created successfully", enquiry)
}

// Update handles updating an enquiry
// @Summary Update Enquiry
// @Description Update an existing enquiry
// @Tags enquiries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Enquiry ID"
// @Param request body EnquiryRequest true "Enquiry data"
// @Success 200 {object} response.APIResponse
// @Router /enquiries/{id} [put]
func (h *EnquiryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid enquiry ID")
		return
	}

	var req EnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	eventDate, ok := req.parsedEventDate()
	if !ok {
		response.BadRequest(c, "Invalid event date format. Use YYYY-MM-DD")
		return
	}

	enquiry, err := h.enquiryService.UpdateEnquiry(c.Request.Context(), &service.UpdateEnquiryInput{
		ID:           id,
		CustomerID:   req.CustomerID,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		EventType:    req.EventType,
		EventDate:    eventDate,
		GuestCount:   req.GuestCount,
		Source:       req.Source,
		Notes:        req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Enquiry updated successfully", enquiry)
}

// UpdateStatus handles enquiry status changes
// @Summary Update Enquiry Status
// @Description Move an enquiry along the pipeline
// @Tags enquiries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Enquiry ID"
// @Success 200 {object} response.APIResponse
// @Router /enquiries/{id}/status [patch]
func (h *EnquiryHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid enquiry ID")
		return
	}

	var req struct {
		Status int `json:"status" binding:"min=0,max=4"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.enquiryService.UpdateEnquiryStatus(c.Request.Context(), id, enum.EnquiryStatus(req.Status)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Enquiry status updated", nil)
}

// Delete handles deleting an enquiry
// @Summary Delete Enquiry
// @Description Delete an enquiry by ID
// @Tags enquiries
// @Security BearerAuth
// @Param id path string true "Enquiry ID"
// @Success 204
// @Router /enquiries/{id} [delete]
func (h *EnquiryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid enquiry ID")
		return
	}

	if err := h.enquiryService.DeleteEnquiry(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// PromoteToCustomer handles converting the enquiry contact into a customer
// @Summary Promote Enquiry Contact
// @Description Create a customer record from the enquiry contact details
// @Tags enquiries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Enquiry ID"
// @Success 201 {object} response.APIResponse
// @Router /enquiries/{id}/promote [post]
func (h *EnquiryHandler) PromoteToCustomer(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid enquiry ID")
		return
	}

	var req struct {
		Company *string `json:"company"`
		Address *string `json:"address"`
		GSTIN   *string `json:"gstin"`
	}
	// Body is optional
	_ = c.ShouldBindJSON(&req)

	customer, err := h.enquiryService.PromoteToCustomer(c.Request.Context(), &service.PromoteToCustomerInput{
		EnquiryID: id,
		UserID:    *userID,
		Company:   req.Company,
		Address:   req.Address,
		GSTIN:     req.GSTIN,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created from enquiry", customer)
}
