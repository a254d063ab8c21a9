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

// BookingHandler handles booking-related HTTP requests
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// ConfirmQuotation handles converting a quotation into a booking
// @Summary Confirm Quotation
// @Description Convert a quotation into a booking, freezing its totals
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 201 {object} response.APIResponse
// @Router /quotations/{id}/confirm [post]
func (h *BookingHandler) ConfirmQuotation(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	quotationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req struct {
		Note          *string `json:"note"`
		AdvanceAmount float64 `json:"advance_amount" binding:"min=0"`
		AdvanceMethod string  `json:"advance_method"`
	}
	// Body is optional
	_ = c.ShouldBindJSON(&req)

	booking, err := h.bookingService.ConfirmQuotation(c.Request.Context(), &service.ConfirmQuotationInput{
		QuotationID:   quotationID,
		UserID:        *userID,
		IsAdmin:       IsAdmin(c),
		Note:          req.Note,
		AdvanceAmount: req.AdvanceAmount,
		AdvanceMethod: req.AdvanceMethod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quotation confirmed", booking)
}

// List handles listing bookings
// @Summary List Bookings
// @Description Get all bookings with pagination and filtering
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param status query int false "Status filter"
// @Success 200 {object} response.APIResponse
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

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

	input := &service.ListBookingsInput{
		UserID:  *userID,
		IsAdmin: IsAdmin(c),
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
	}

	if s := c.Query("status"); s != "" {
		if parsed, err := parseNonNegativeInt(s); err == nil {
			st := enum.BookingStatus(parsed)
			input.Status = &st
		}
	}
	if cid := c.Query("customer_id"); cid != "" {
		if id, err := uuid.Parse(cid); err == nil {
			input.CustomerID = &id
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

	result, err := h.bookingService.ListBookings(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bookings retrieved successfully", result)
}

// Get handles getting a single booking with payments
// @Summary Get Booking
// @Description Get a booking by ID
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.APIResponse
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Booking retrieved successfully", booking)
}

// UpdateStatus handles booking status changes
// @Summary Update Booking Status
// @Description Mark a booking completed or canceled
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.APIResponse
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	var req struct {
		Status int `json:"status" binding:"min=0,max=2"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.bookingService.UpdateBookingStatus(c.Request.Context(), *userID, id, enum.BookingStatus(req.Status), IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Booking status updated", nil)
}

// RecordPayment handles recording a payment against a booking
// @Summary Record Payment
// @Description Record an advance or settlement payment
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.APIResponse
// @Router /bookings/{id}/payments [post]
func (h *BookingHandler) RecordPayment(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	var req struct {
		Amount    float64 `json:"amount" binding:"required,gt=0"`
		Method    string  `json:"method"`
		Reference *string `json:"reference"`
		PaidAt    *string `json:"paid_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var paidAt *time.Time
	if req.PaidAt != nil && *req.PaidAt != "" {
		t, err := time.Parse("2006-01-02", *req.PaidAt)
		if err != nil {
			response.BadRequest(c, "Invalid payment date format. Use YYYY-MM-DD")
			return
		}
		paidAt = &t
	}

	booking, err := h.bookingService.RecordPayment(c.Request.Context(), &service.RecordPaymentInput{
		BookingID: id,
		UserID:    *userID,
		IsAdmin:   IsAdmin(c),
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
		PaidAt:    paidAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded", booking)
}

// DeletePayment handles removing a recorded payment
// @Summary Delete Payment
// @Description Remove a recorded payment from a booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param paymentId path string true "Payment ID"
// @Success 204
// @Router /bookings/{id}/payments/{paymentId} [delete]
func (h *BookingHandler) DeletePayment(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	paymentID, err := uuid.Parse(c.Param("paymentId"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	if err := h.bookingService.DeletePayment(c.Request.Context(), *userID, bookingID, paymentID, IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
