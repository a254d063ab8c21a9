package repository

import (
	"context"
	"time"

	domainRepo "github.com/venuedesk/venuedesk-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetEnquiryFunnel(ctx context.Context) ([]domainRepo.EnquiryFunnelResult, error) {
	var results []domainRepo.EnquiryFunnelResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) as count
		FROM enquiries
		WHERE deleted_at IS NULL
		GROUP BY status
		ORDER BY status
	`).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetTopCustomers(ctx context.Context, limit int) ([]domainRepo.TopCustomerResult, error) {
	var results []domainRepo.TopCustomerResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id as customer_id,
			c.name as customer_name,
			COALESCE(SUM(b.final_total), 0) as total_value,
			COUNT(b.id) as booking_count
		FROM bookings b
		JOIN customers c ON c.id = b.customer_id
		WHERE b.deleted_at IS NULL AND b.status != 2 AND b.customer_id IS NOT NULL
		GROUP BY c.id, c.name
		ORDER BY total_value DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetMonthlyRevenue(ctx context.Context, months int) ([]domainRepo.MonthlyRevenueResult, error) {
	results := make([]domainRepo.MonthlyRevenueResult, 0, months)
	now := time.Now()

	for i := months - 1; i >= 0; i-- {
		startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		endOfMonth := startOfMonth.AddDate(0, 1, 0)

		var row struct {
			Revenue float64
			Count   int
		}
		err := r.db.WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(final_total), 0) as revenue, COUNT(*) as count
			FROM bookings
			WHERE deleted_at IS NULL AND status != 2
			AND event_date >= ? AND event_date < ?
		`, startOfMonth, endOfMonth).Scan(&row).Error

		if err != nil {
			return nil, err
		}

		results = append(results, domainRepo.MonthlyRevenueResult{
			Month:   startOfMonth,
			Revenue: row.Revenue,
			Count:   row.Count,
		})
	}

	return results, nil
}

func (r *analyticsRepository) GetRevenueByEventType(ctx context.Context) ([]domainRepo.EventTypeResult, error) {
	var results []domainRepo.EventTypeResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(NULLIF(e.event_type, ''), 'Other') as event_type,
			COUNT(q.id) as count,
			COALESCE(SUM(q.final_total), 0) as total_value
		FROM quotations q
		LEFT JOIN enquiries e ON e.id = q.enquiry_id
		WHERE q.deleted_at IS NULL
		GROUP BY COALESCE(NULLIF(e.event_type, ''), 'Other')
		ORDER BY total_value DESC
	`).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetTotalBookedRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(final_total), 0)
		FROM bookings
		WHERE deleted_at IS NULL AND status != 2
	`).Scan(&revenue).Error

	return revenue, err
}

func (r *analyticsRepository) GetUpcomingEventCount(ctx context.Context, days int) (int64, error) {
	now := time.Now()
	until := now.AddDate(0, 0, days)

	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM bookings
		WHERE deleted_at IS NULL AND status = 0
		AND event_date >= ? AND event_date < ?
	`, now, until).Scan(&count).Error

	return count, err
}

func (r *analyticsRepository) GetConversionRate(ctx context.Context) (float64, error) {
	var row struct {
		Total int64
		Won   int64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) as total,
			COUNT(*) FILTER (WHERE status = 3) as won
		FROM enquiries
		WHERE deleted_at IS NULL
	`).Scan(&row).Error

	if err != nil || row.Total == 0 {
		return 0, err
	}
	return float64(row.Won) / float64(row.Total) * 100, nil
}
