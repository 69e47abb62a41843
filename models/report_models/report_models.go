package report_models

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjunkmr/hoteldesk/logger"
)

// RevenueSummary is the headline card row on the dashboard.
type RevenueSummary struct {
	TotalBookings  int     `json:"total_bookings"`
	TotalRevenue   float64 `json:"total_revenue"`
	ActiveBookings int     `json:"active_bookings"`
	TotalCustomers int     `json:"total_customers"`
}

// OccupancyRow is the booking count for one room type.
type OccupancyRow struct {
	RoomType string `json:"room_type"`
	Rooms    int    `json:"rooms"`
	Occupied int    `json:"occupied"`
}

// RoomTypeRevenueRow is the booked revenue attributed to one room type.
type RoomTypeRevenueRow struct {
	RoomType string  `json:"room_type"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// GetRevenueSummary aggregates the overall booking and revenue counters.
// Cancelled bookings are excluded from revenue.
func GetRevenueSummary(ctx context.Context, db *pgxpool.Pool) (*RevenueSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM bookings),
			(SELECT COALESCE(SUM(total_amount), 0) FROM bookings WHERE status <> 'Cancelled'),
			(SELECT COUNT(*) FROM bookings WHERE status = 'Active'),
			(SELECT COUNT(*) FROM customers)`

	var s RevenueSummary
	if err := db.QueryRow(ctx, query).Scan(&s.TotalBookings, &s.TotalRevenue, &s.ActiveBookings, &s.TotalCustomers); err != nil {
		logger.ErrorLogger.Errorf("Failed to compute revenue summary: %v", err)
		return nil, fmt.Errorf("failed to compute revenue summary: %w", err)
	}
	return &s, nil
}

// GetOccupancyByRoomType counts rooms and currently occupied rooms per type.
func GetOccupancyByRoomType(ctx context.Context, db *pgxpool.Pool) ([]OccupancyRow, error) {
	query := `
		SELECT r.room_type,
		       COUNT(DISTINCT r.id),
		       COUNT(DISTINCT b.room_id)
		FROM rooms r
		LEFT JOIN bookings b
		  ON b.room_id = r.id
		 AND b.status = 'Active'
		 AND b.check_in_date <= NOW()
		 AND b.check_out_date > NOW()
		GROUP BY r.room_type
		ORDER BY r.room_type`

	rows, err := db.Query(ctx, query)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to compute occupancy report: %v", err)
		return nil, fmt.Errorf("failed to compute occupancy report: %w", err)
	}
	defer rows.Close()

	report := make([]OccupancyRow, 0)
	for rows.Next() {
		var row OccupancyRow
		if err := rows.Scan(&row.RoomType, &row.Rooms, &row.Occupied); err != nil {
			return nil, fmt.Errorf("failed to scan occupancy row: %w", err)
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

// GetRevenueByRoomType sums booked revenue per room type, excluding
// cancelled bookings.
func GetRevenueByRoomType(ctx context.Context, db *pgxpool.Pool) ([]RoomTypeRevenueRow, error) {
	query := `
		SELECT r.room_type,
		       COUNT(b.id),
		       COALESCE(SUM(b.total_amount), 0)
		FROM rooms r
		LEFT JOIN bookings b
		  ON b.room_id = r.id
		 AND b.status <> 'Cancelled'
		GROUP BY r.room_type
		ORDER BY r.room_type`

	rows, err := db.Query(ctx, query)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to compute room type revenue: %v", err)
		return nil, fmt.Errorf("failed to compute room type revenue: %w", err)
	}
	defer rows.Close()

	report := make([]RoomTypeRevenueRow, 0)
	for rows.Next() {
		var row RoomTypeRevenueRow
		if err := rows.Scan(&row.RoomType, &row.Bookings, &row.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan revenue row: %w", err)
		}
		report = append(report, row)
	}
	return report, rows.Err()
}
