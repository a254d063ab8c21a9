package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/domain/enum"
)

// EnquiryFunnelResult represents the lead pipeline counts
type EnquiryFunnelResult struct {
	Status enum.EnquiryStatus
	Count  int64
}

// TopCustomerResult represents a customer's booking value
type TopCustomerResult struct {
	CustomerID   uuid.UUID
	CustomerName string
	TotalValue   float64
	BookingCount int
}

// MonthlyRevenueResult represents booked revenue for a single month
type MonthlyRevenueResult struct {
	Month   time.Time
	Revenue float64
	Count   int
}

// EventTypeResult represents quotation volume grouped by event type
type EventTypeResult struct {
	EventType  string
	Count      int
	TotalValue float64
}

// AnalyticsRepository defines interface for dashboard aggregation queries
type AnalyticsRepository interface {
	// GetEnquiryFunnel returns enquiry counts per status
	GetEnquiryFunnel(ctx context.Context) ([]EnquiryFunnelResult, error)

	// GetTopCustomers returns top customers by confirmed booking value
	GetTopCustomers(ctx context.Context, limit int) ([]TopCustomerResult, error)

	// GetMonthlyRevenue returns booked revenue per month for the last N months
	GetMonthlyRevenue(ctx context.Context, months int) ([]MonthlyRevenueResult, error)

	// GetRevenueByEventType returns quotation volume and value by event type
	GetRevenueByEventType(ctx context.Context) ([]EventTypeResult, error)

	// GetTotalBookedRevenue returns total revenue from confirmed bookings
	GetTotalBookedRevenue(ctx context.Context) (float64, error)

	// GetUpcomingEventCount returns bookings with an event date in the next N days
	GetUpcomingEventCount(ctx context.Context, days int) (int64, error)

	// GetConversionRate returns won enquiries over total enquiries
	GetConversionRate(ctx context.Context) (float64, error)
}
