package booking_models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjunkmr/hoteldesk/logger"
)

var ErrBookingNotFound = errors.New("booking not found")

// Booking statuses.
const (
	StatusActive    = "Active"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Booking is a customer's reservation of a room for a date range. The total
// amount is fixed when the booking is created and is not recalculated if the
// dates are edited afterwards.
type Booking struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	RoomID       uuid.UUID `json:"room_id"`
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	TotalAmount  float64   `json:"total_amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BookingSummary is a booking joined with the customer and room columns the
// dashboard lists alongside it.
type BookingSummary struct {
	Booking
	CustomerName string `json:"customer_name"`
	RoomNumber   string `json:"room_number"`
	RoomType     string `json:"room_type"`
}

// NewBooking creates a new Booking struct in the Active state.
func NewBooking(customerID, roomID uuid.UUID, checkIn, checkOut time.Time, totalAmount float64) (*Booking, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID for booking: %w", err)
	}
	now := time.Now()
	return &Booking{
		ID:           id,
		CustomerID:   customerID,
		RoomID:       roomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalAmount:  totalAmount,
		Status:       StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// CreateBooking inserts a new booking record into the database.
func CreateBooking(ctx context.Context, db *pgxpool.Pool, booking *Booking) (*Booking, error) {
	logger.InfoLogger.Infof("Attempting to create booking for customer %s, room %s", booking.CustomerID, booking.RoomID)

	query := `
		INSERT INTO bookings (
			id, customer_id, room_id, check_in_date, check_out_date,
			total_amount, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id`

	var insertedID uuid.UUID
	err := db.QueryRow(ctx, query,
		booking.ID, booking.CustomerID, booking.RoomID, booking.CheckInDate, booking.CheckOutDate,
		booking.TotalAmount, booking.Status, booking.CreatedAt, booking.UpdatedAt,
	).Scan(&insertedID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to insert booking for room %s: %v", booking.RoomID, err)
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.ID = insertedID
	logger.InfoLogger.Infof("Booking %s created successfully (total %.2f)", booking.ID, booking.TotalAmount)
	return booking, nil
}

// GetAllBookings fetches every booking joined with customer and room details,
// newest first.
func GetAllBookings(ctx context.Context, db *pgxpool.Pool) ([]BookingSummary, error) {
	query := `
		SELECT b.id, b.customer_id, b.room_id, b.check_in_date, b.check_out_date,
		       b.total_amount, b.status, b.created_at, b.updated_at,
		       c.name, r.room_number, r.room_type
		FROM bookings b
		JOIN customers c ON c.id = b.customer_id
		JOIN rooms r ON r.id = b.room_id
		ORDER BY b.created_at DESC`

	rows, err := db.Query(ctx, query)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch bookings: %v", err)
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]BookingSummary, 0)
	for rows.Next() {
		var b BookingSummary
		if err := rows.Scan(
			&b.ID, &b.CustomerID, &b.RoomID, &b.CheckInDate, &b.CheckOutDate,
			&b.TotalAmount, &b.Status, &b.CreatedAt, &b.UpdatedAt,
			&b.CustomerName, &b.RoomNumber, &b.RoomType,
		); err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// GetBookingByID fetches a single booking by its ID.
func GetBookingByID(ctx context.Context, db *pgxpool.Pool, id uuid.UUID) (*Booking, error) {
	query := `
		SELECT id, customer_id, room_id, check_in_date, check_out_date,
		       total_amount, status, created_at, updated_at
		FROM bookings
		WHERE id = $1`

	var b Booking
	err := db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.CustomerID, &b.RoomID, &b.CheckInDate, &b.CheckOutDate,
		&b.TotalAmount, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		logger.ErrorLogger.Errorf("Failed to fetch booking %s: %v", id, err)
		return nil, fmt.Errorf("database error fetching booking: %w", err)
	}
	return &b, nil
}

// UpdateBooking rewrites a booking's dates, customer, room and status. The
// stored total amount is left untouched.
func UpdateBooking(ctx context.Context, db *pgxpool.Pool, booking *Booking) error {
	logger.InfoLogger.Infof("Updating booking %s", booking.ID)

	query := `
		UPDATE bookings
		SET customer_id = $2, room_id = $3, check_in_date = $4,
		    check_out_date = $5, status = $6, updated_at = NOW()
		WHERE id = $1`

	cmdTag, err := db.Exec(ctx, query,
		booking.ID, booking.CustomerID, booking.RoomID,
		booking.CheckInDate, booking.CheckOutDate, booking.Status,
	)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to update booking %s: %v", booking.ID, err)
		return fmt.Errorf("failed to update booking: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	logger.InfoLogger.Infof("Booking %s updated successfully", booking.ID)
	return nil
}

// UpdateBookingStatus updates only the status of a booking.
func UpdateBookingStatus(ctx context.Context, db *pgxpool.Pool, bookingID uuid.UUID, status string) error {
	logger.InfoLogger.Infof("Updating status for booking %s to %s", bookingID, status)

	query := `
		UPDATE bookings
		SET status = $2, updated_at = NOW()
		WHERE id = $1`

	cmdTag, err := db.Exec(ctx, query, bookingID, status)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to update booking %s status: %v", bookingID, err)
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// DeleteBooking removes a booking and, through the schema's cascade, its
// payment history.
func DeleteBooking(ctx context.Context, db *pgxpool.Pool, id uuid.UUID) error {
	cmdTag, err := db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to delete booking %s: %v", id, err)
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	logger.InfoLogger.Infof("Booking %s deleted", id)
	return nil
}
