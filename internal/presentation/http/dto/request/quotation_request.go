package request

import (
	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/domain/pricing"
)

// VenueLineRequest is one venue hire row in a quotation payload. Numeric
// fields use the lenient decoders because the form sends whatever the user
// typed, quoted or not.
type VenueLineRequest struct {
	EventDate   string            `json:"event_date"`
	Venue       string            `json:"venue"`
	VenueSpace  string            `json:"venue_space"`
	Session     string            `json:"session"`
	SessionRate pricing.FlexFloat `json:"session_rate"`
}

// RoomLineRequest is one accommodation row in a quotation payload
type RoomLineRequest struct {
	Category         string            `json:"category"`
	Rate             pricing.FlexFloat `json:"rate"`
	NumberOfRooms    pricing.FlexInt   `json:"number_of_rooms"`
	TotalOccupancy   pricing.FlexInt   `json:"total_occupancy"`
	DefaultOccupancy pricing.FlexInt   `json:"default_occupancy"`
	MaxOccupancy     pricing.FlexInt   `json:"max_occupancy"`
	ExtraPersonRate  pricing.FlexFloat `json:"extra_person_rate"`
}

// MenuItemRequest is one dish row in a menu selection payload
type MenuItemRequest struct {
	Name            string            `json:"name"`
	IsPackageItem   bool              `json:"is_package_item"`
	Price           pricing.FlexFloat `json:"price"`
	AdditionalPrice pricing.FlexFloat `json:"additional_price"`
	Quantity        pricing.FlexInt   `json:"quantity"`
}

// MenuSelectionRequest is one menu package block in a quotation payload
type MenuSelectionRequest struct {
	PackageID          string             `json:"package_id"`
	PackageName        string             `json:"package_name"`
	PackagePrice       pricing.FlexFloat  `json:"package_price"`
	CustomPackagePrice *pricing.FlexFloat `json:"custom_package_price"`
	Items              []MenuItemRequest  `json:"items"`
}

// CreateQuotationRequest represents a quotation creation request
type CreateQuotationRequest struct {
	CustomerID     *uuid.UUID             `json:"customer_id"`
	EnquiryID      *uuid.UUID             `json:"enquiry_id"`
	EventDate      string                 `json:"event_date" binding:"required"`
	GuestCount     pricing.FlexInt        `json:"guest_count"`
	IncludeGST     *bool                  `json:"include_gst"`
	DiscountType   string                 `json:"discount_type"`
	DiscountValue  pricing.FlexFloat      `json:"discount_value"`
	DiscountReason string                 `json:"discount_reason"`
	Note           *string                `json:"note"`
	VenueLines     []VenueLineRequest     `json:"venue_lines"`
	RoomLines      []RoomLineRequest      `json:"room_lines"`
	MenuSelections []MenuSelectionRequest `json:"menu_selections"`
}

// UpdateQuotationRequest represents a quotation update request. Lines are
// replaced wholesale, matching how the builder form submits.
type UpdateQuotationRequest struct {
	CustomerID     *uuid.UUID             `json:"customer_id"`
	EventDate      string                 `json:"event_date" binding:"required"`
	GuestCount     pricing.FlexInt        `json:"guest_count"`
	IncludeGST     *bool                  `json:"include_gst"`
	DiscountType   string                 `json:"discount_type"`
	DiscountValue  pricing.FlexFloat      `json:"discount_value"`
	DiscountReason string                 `json:"discount_reason"`
	Note           *string                `json:"note"`
	VenueLines     []VenueLineRequest     `json:"venue_lines"`
	RoomLines      []RoomLineRequest      `json:"room_lines"`
	MenuSelections []MenuSelectionRequest `json:"menu_selections"`
}

// CheckDiscountRequest represents a discount pre-check request
type CheckDiscountRequest struct {
	DiscountType  string            `json:"discount_type" binding:"required"`
	DiscountValue pricing.FlexFloat `json:"discount_value"`
	BaseTotal     pricing.FlexFloat `json:"base_total"`
}

// QuotationFilterRequest represents quotation filter parameters
type QuotationFilterRequest struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	CustomerID string `form:"customer_id"`
	EnquiryID  string `form:"enquiry_id"`
	EventFrom  string `form:"event_from"`
	EventTo    string `form:"event_to"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// PricingVenueLines converts the payload rows into pricing form
func PricingVenueLines(rows []VenueLineRequest) []pricing.VenueLine {
	lines := make([]pricing.VenueLine, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, pricing.VenueLine{
			EventDate:   r.EventDate,
			Venue:       r.Venue,
			VenueSpace:  r.VenueSpace,
			Session:     r.Session,
			SessionRate: r.SessionRate.Float64(),
		})
	}
	return lines
}

// PricingRoomLines converts the payload rows into pricing form
func PricingRoomLines(rows []RoomLineRequest) []pricing.RoomLine {
	lines := make([]pricing.RoomLine, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, pricing.RoomLine{
			Category:         r.Category,
			Rate:             r.Rate.Float64(),
			NumberOfRooms:    r.NumberOfRooms.Int(),
			TotalOccupancy:   r.TotalOccupancy.Int(),
			DefaultOccupancy: r.DefaultOccupancy.Int(),
			MaxOccupancy:     r.MaxOccupancy.Int(),
			ExtraPersonRate:  r.ExtraPersonRate.Float64(),
		})
	}
	return lines
}

// PricingMenuSelections converts the payload blocks into pricing form
func PricingMenuSelections(blocks []MenuSelectionRequest) []pricing.MenuSelection {
	sels := make([]pricing.MenuSelection, 0, len(blocks))
	for _, b := range blocks {
		sel := pricing.MenuSelection{
			PackageID:    b.PackageID,
			PackageName:  b.PackageName,
			PackagePrice: b.PackagePrice.Float64(),
		}
		if b.CustomPackagePrice != nil {
			v := b.CustomPackagePrice.Float64()
			sel.CustomPackagePrice = &v
		}
		for _, it := range b.Items {
			sel.Items = append(sel.Items, pricing.MenuItemLine{
				Name:            it.Name,
				IsPackageItem:   it.IsPackageItem,
				Price:           it.Price.Float64(),
				AdditionalPrice: it.AdditionalPrice.Float64(),
				Quantity:        it.Quantity.Int(),
			})
		}
		sels = append(sels, sel)
	}
	return sels
}
