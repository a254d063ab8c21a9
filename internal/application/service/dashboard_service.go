package service

import (
	"context"

	"github.com/venuedesk/venuedesk-api/internal/domain/enum"
	"github.com/venuedesk/venuedesk-api/internal/domain/repository"
)

// DashboardService provides sales dashboard statistics
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
	}
}

// FunnelStage is one stage of the enquiry pipeline
type FunnelStage struct {
	Status enum.EnquiryStatus `json:"status"`
	Label  string             `json:"label"`
	Count  int64              `json:"count"`
}

// TopCustomer is a customer ranked by confirmed booking value
type TopCustomer struct {
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	TotalValue   float64 `json:"total_value"`
	BookingCount int     `json:"booking_count"`
}

// MonthlyRevenuePoint is booked revenue for one month
type MonthlyRevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Count   int     `json:"count"`
}

// EventTypePoint is quotation volume for one event type
type EventTypePoint struct {
	EventType  string  `json:"event_type"`
	Count      int     `json:"count"`
	TotalValue float64 `json:"total_value"`
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalBookedRevenue float64               `json:"total_booked_revenue"`
	UpcomingEvents     int64                 `json:"upcoming_events"`
	ConversionRate     float64               `json:"conversion_rate"`
	EnquiryFunnel      []FunnelStage         `json:"enquiry_funnel"`
	TopCustomers       []TopCustomer         `json:"top_customers"`
	MonthlyRevenue     []MonthlyRevenuePoint `json:"monthly_revenue"`
	RevenueByEventType []EventTypePoint      `json:"revenue_by_event_type"`
}

// GetDashboardStats returns the sales dashboard statistics
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	totalRevenue, err := s.analyticsRepo.GetTotalBookedRevenue(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalBookedRevenue = totalRevenue

	upcoming, err := s.analyticsRepo.GetUpcomingEventCount(ctx, 30)
	if err != nil {
		return nil, err
	}
	stats.UpcomingEvents = upcoming

	conversion, err := s.analyticsRepo.GetConversionRate(ctx)
	if err != nil {
		return nil, err
	}
	stats.ConversionRate = conversion

	funnel, err := s.analyticsRepo.GetEnquiryFunnel(ctx)
	if err != nil {
		return nil, err
	}
	// Render every stage, zero counts included, so the chart keeps its shape
	counts := make(map[enum.EnquiryStatus]int64, len(funnel))
	for _, f := range funnel {
		counts[f.Status] = f.Count
	}
	stages := []enum.EnquiryStatus{
		enum.EnquiryStatusNew,
		enum.EnquiryStatusContacted,
		enum.EnquiryStatusQuoted,
		enum.EnquiryStatusWon,
		enum.EnquiryStatusLost,
	}
	stats.EnquiryFunnel = make([]FunnelStage, 0, len(stages))
	for _, st := range stages {
		stats.EnquiryFunnel = append(stats.EnquiryFunnel, FunnelStage{
			Status: st,
			Label:  st.String(),
			Count:  counts[st],
		})
	}

	topCustomers, err := s.analyticsRepo.GetTopCustomers(ctx, 5)
	if err != nil {
		return nil, err
	}
	stats.TopCustomers = make([]TopCustomer, 0, len(topCustomers))
	for _, c := range topCustomers {
		stats.TopCustomers = append(stats.TopCustomers, TopCustomer{
			CustomerID:   c.CustomerID.String(),
			CustomerName: c.CustomerName,
			TotalValue:   c.TotalValue,
			BookingCount: c.BookingCount,
		})
	}

	monthly, err := s.analyticsRepo.GetMonthlyRevenue(ctx, 12)
	if err != nil {
		return nil, err
	}
	stats.MonthlyRevenue = make([]MonthlyRevenuePoint, 0, len(monthly))
	for _, m := range monthly {
		stats.MonthlyRevenue = append(stats.MonthlyRevenue, MonthlyRevenuePoint{
			Month:   m.Month.Format("Jan 2006"),
			Revenue: m.Revenue,
			Count:   m.Count,
		})
	}

	byType, err := s.analyticsRepo.GetRevenueByEventType(ctx)
	if err != nil {
		return nil, err
	}
	stats.RevenueByEventType = make([]EventTypePoint, 0, len(byType))
	for _, t := range byType {
		stats.RevenueByEventType = append(stats.RevenueByEventType, EventTypePoint{
			EventType:  t.EventType,
			Count:      t.Count,
			TotalValue: t.TotalValue,
		})
	}

	return stats, nil
}
