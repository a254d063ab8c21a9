package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/venuedesk/venuedesk-api/internal/application/service"
	"github.com/venuedesk/venuedesk-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles settings-related HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings retrieves the venue-wide settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateSettings updates the venue-wide settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req struct {
		MaxDiscountPercentage float64 `json:"max_discount_percentage" binding:"min=0,max=100"`
		IncludeGSTDefault     bool    `json:"include_gst_default"`
		Currency              string  `json:"currency"`
		AdminAlertEmail       string  `json:"admin_alert_email" binding:"omitempty,email"`
		DiscountAlertsOn      bool    `json:"discount_alerts_on"`
		EnquiryAcksOn         bool    `json:"enquiry_acks_on"`
		CompanyName           string  `json:"company_name"`
		CompanyAddress        *string `json:"company_address"`
		CompanyPhone          *string `json:"company_phone"`
		CompanyEmail          *string `json:"company_email"`
		CompanyGSTIN          *string `json:"company_gstin"`
		LogoPath              *string `json:"logo_path"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		MaxDiscountPercentage: req.MaxDiscountPercentage,
		IncludeGSTDefault:     req.IncludeGSTDefault,
		Currency:              req.Currency,
		AdminAlertEmail:       req.AdminAlertEmail,
		DiscountAlertsOn:      req.DiscountAlertsOn,
		EnquiryAcksOn:         req.EnquiryAcksOn,
		CompanyName:           req.CompanyName,
		CompanyAddress:        req.CompanyAddress,
		CompanyPhone:          req.CompanyPhone,
		CompanyEmail:          req.CompanyEmail,
		CompanyGSTIN:          req.CompanyGSTIN,
		LogoPath:              req.LogoPath,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
