package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/application/service"
	"github.com/venuedesk/venuedesk-api/internal/domain/enum"
	"github.com/venuedesk/venuedesk-api/internal/domain/pricing"
	"github.com/venuedesk/venuedesk-api/internal/presentation/http/dto/request"
	"github.com/venuedesk/venuedesk-api/internal/presentation/http/dto/response"
	"github.com/venuedesk/venuedesk-api/pkg/pagination"
)

// QuotationHandler handles quotation-related HTTP requests
type QuotationHandler struct {
	quotationService *service.QuotationService
}

// NewQuotationHandler creates a new quotation handler
func NewQuotationHandler(quotationService *service.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationService}
}

// List handles listing quotations
// @Summary List Quotations
// @Description Get all quotations with pagination and filtering
// @Tags quotations
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param status query int false "Status filter"
// @Success 200 {object} response.APIResponse
// @Router /quotations [get]
func (h *QuotationHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var filter request.QuotationFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	input := &service.ListQuotationsInput{
		UserID:  *userID,
		IsAdmin: IsAdmin(c),
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search: filter.Search,
	}
	input.Pagination.Validate()

	if filter.Status != "" {
		if parsed, err := parseNonNegativeInt(filter.Status); err == nil {
			st := enum.QuotationStatus(parsed)
			input.Status = &st
		}
	}
	if filter.CustomerID != "" {
		if id, err := uuid.Parse(filter.CustomerID); err == nil {
			input.CustomerID = &id
		}
	}
	if filter.EnquiryID != "" {
		if id, err := uuid.Parse(filter.EnquiryID); err == nil {
			input.EnquiryID = &id
		}
	}
	if filter.EventFrom != "" {
		if t, err := time.Parse("2006-01-02", filter.EventFrom); err == nil {
			input.EventFrom = &t
		}
	}
	if filter.EventTo != "" {
		if t, err := time.Parse("2006-01-02", filter.EventTo); err == nil {
			input.EventTo = &t
		}
	}

	result, err := h.quotationService.ListQuotations(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Quotations retrieved successfully", result)
}

// Get handles getting a single quotation with its lines
// @Summary Get Quotation
// @Description Get a quotation by ID
// @Tags quotations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.APIResponse
// @Router /quotations/{id} [get]
func (h *QuotationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	quotation, err := h.quotationService.GetQuotation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation retrieved successfully", quotation)
}

// Create handles creating a quotation
// @Summary Create Quotation
// @Description Create a new draft quotation with priced lines
// @Tags quotations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateQuotationRequest true "Quotation data"
// @Success 201 {object} response.APIResponse
// @Router /quotations [post]
func (h *QuotationHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		response.BadRequest(c, "Invalid event date format. Use YYYY-MM-DD")
		return
	}

	includeGST := true
	if req.IncludeGST != nil {
		includeGST = *req.IncludeGST
	}

	quotation, err := h.quotationService.CreateQuotation(c.Request.Context(), &service.CreateQuotationInput{
		UserID:     *userID,
		CustomerID: req.CustomerID,
		EnquiryID:  req.EnquiryID,
		EventDate:  eventDate,
		GuestCount: req.GuestCount.Int(),
		IncludeGST: includeGST,
		Discount: pricing.DiscountSpec{
			Type:   pricing.DiscountType(req.DiscountType),
			Value:  req.DiscountValue.Float64(),
			Reason: req.DiscountReason,
		},
		Note: req.Note,
		Lines: service.QuotationLinesInput{
			Venues: request.PricingVenueLines(req.VenueLines),
			Rooms:  request.PricingRoomLines(req.RoomLines),
			Menus:  request.PricingMenuSelections(req.MenuSelections),
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quotation created successfully", quotation)
}

// CreateFromEnquiry handles opening a draft quotation from an enquiry
// @Summary Create Quotation From Enquiry
// @Description Open a draft quotation prefilled from the enquiry contact and event details
// @Tags quotations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Enquiry ID"
// @Success 201 {object} response.APIResponse
// @Router /enquiries/{id}/quotation [post]
func (h *QuotationHandler) CreateFromEnquiry(c *gin.Context) {
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

	quotation, err := h.quotationService.CreateFromEnquiry(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quotation created successfully", quotation)
}

// Update handles updating a quotation
// @Summary Update Quotation
// @Description Replace the lines of an editable quotation and recompute totals
// @Tags quotations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param request body request.UpdateQuotationRequest true "Quotation data"
// @Success 200 {object} response.APIResponse
// @Router /quotations/{id} [put]
func (h *QuotationHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req request.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		response.BadRequest(c, "Invalid event date format. Use YYYY-MM-DD")
		return
	}

	includeGST := true
	if req.IncludeGST != nil {
		includeGST = *req.IncludeGST
	}

	quotation, err := h.quotationService.UpdateQuotation(c.Request.Context(), &service.UpdateQuotationInput{
		UserID:     *userID,
		ID:         id,
		IsAdmin:    IsAdmin(c),
		CustomerID: req.CustomerID,
		EventDate:  eventDate,
		GuestCount: req.GuestCount.Int(),
		IncludeGST: includeGST,
		Discount: pricing.DiscountSpec{
			Type:   pricing.DiscountType(req.DiscountType),
			Value:  req.DiscountValue.Float64(),
			Reason: req.DiscountReason,
		},
		Note: req.Note,
		Lines: service.QuotationLinesInput{
			Venues: request.PricingVenueLines(req.VenueLines),
			Rooms:  request.PricingRoomLines(req.RoomLines),
			Menus:  request.PricingMenuSelections(req.MenuSelections),
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation updated successfully", quotation)
}

// Delete handles deleting a quotation
// @Summary Delete Quotation
// @Description Delete a quotation by ID
// @Tags quotations
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Success 204
// @Router /quotations/{id} [delete]
func (h *QuotationHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	if err := h.quotationService.DeleteQuotation(c.Request.Context(), *userID, id, IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// CheckDiscount handles the server-side discount ceiling check
// @Summary Check Discount
// @Description Resolve a requested discount against the configured ceiling
// @Tags quotations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CheckDiscountRequest true "Discount data"
// @Success 200 {object} response.APIResponse
// @Router /quotations/check-discount [post]
func (h *QuotationHandler) CheckDiscount(c *gin.Context) {
	var req request.CheckDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.quotationService.CheckDiscount(c.Request.Context(), &service.CheckDiscountInput{
		Type:      pricing.DiscountType(req.DiscountType),
		Value:     req.DiscountValue.Float64(),
		BaseTotal: req.BaseTotal.Float64(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount checked", result)
}

// Send handles marking a quotation sent
// @Summary Send Quotation
// @Description Validate, recompute and mark a quotation as sent
// @Tags quotations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.APIResponse
// @Router /quotations/{id}/send [post]
func (h *QuotationHandler) Send(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	quotation, err := h.quotationService.SendQuotation(c.Request.Context(), *userID, id, IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation sent", quotation)
}

// UpdateStatus handles quotation status changes
// @Summary Update Quotation Status
// @Description Update the status of a quotation
// @Tags quotations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.APIResponse
// @Router /quotations/{id}/status [patch]
func (h *QuotationHandler) UpdateStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req struct {
		Status int `json:"status" binding:"min=0,max=3"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.quotationService.UpdateQuotationStatus(c.Request.Context(), *userID, id, enum.QuotationStatus(req.Status), IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation status updated", nil)
}

// Proposal handles generating the proposal PDF
// @Summary Download Proposal
// @Description Generate the proposal PDF for a quotation
// @Tags quotations
// @Security BearerAuth
// @Produce application/pdf
// @Param id path string true "Quotation ID"
// @Success 200 {file} binary
// @Router /quotations/{id}/proposal [get]
func (h *QuotationHandler) Proposal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	pdf, filename, err := h.quotationService.GenerateProposal(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "application/pdf", pdf)
}

// Helper functions for parsing query parameters
func parsePositiveInt(s string) (int, error) {
	var result int
	_, err := fmt.Sscanf(s, "%d", &result)
	if err != nil || result < 1 {
		return 1, err
	}
	return result, nil
}

func parseNonNegativeInt(s string) (int, error) {
	var result int
	_, err := fmt.Sscanf(s, "%d", &result)
	if err != nil || result < 0 {
		return 0, err
	}
	return result, nil
}
