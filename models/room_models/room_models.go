package room_models

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

var ErrRoomNotFound = errors.New("room not found")

// Room statuses as shown on the dashboard.
const (
	StatusAvailable   = "Available"
	StatusOccupied    = "Occupied"
	StatusMaintenance = "Maintenance"
)

// Room is a bookable hotel room with its nightly rate.
type Room struct {
	ID            uuid.UUID `json:"id"`
	RoomNumber    string    `json:"room_number"`
	RoomType      string    `json:"room_type"`
	PricePerNight float64   `json:"price_per_night"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewRoom creates a new Room struct.
func NewRoom(roomNumber, roomType string, pricePerNight float64, status string) (*Room, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID for room: %w", err)
	}
	if status == "" {
		status = StatusAvailable
	}
	return &Room{
		ID:            id,
		RoomNumber:    roomNumber,
		RoomType:      roomType,
		PricePerNight: pricePerNight,
		Status:        status,
		CreatedAt:     time.Now(),
	}, nil
}

// CreateRoom inserts a new room record into the database.
func CreateRoom(ctx context.Context, db *pgxpool.Pool, room *Room) (*Room, error) {
	logger.InfoLogger.Infof("Attempting to create room %s", room.RoomNumber)

	query := `
		INSERT INTO rooms (id, room_number, room_type, price_per_night, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var insertedID uuid.UUID
	err := db.QueryRow(ctx, query,
		room.ID, room.RoomNumber, room.RoomType, room.PricePerNight, room.Status, room.CreatedAt,
	).Scan(&insertedID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to insert room %s: %v", room.RoomNumber, err)
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	room.ID = insertedID
	logger.InfoLogger.Infof("Room %s (%s) created successfully", room.ID, room.RoomNumber)
	return room, nil
}

// GetAllRooms fetches every room ordered by room number.
func GetAllRooms(ctx context.Context, db *pgxpool.Pool) ([]Room, error) {
	query := `
		SELECT id, room_number, room_type, price_per_night, status, created_at
		FROM rooms
		ORDER BY room_number`

	rows, err := db.Query(ctx, query)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch rooms: %v", err)
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}
	defer rows.Close()

	return scanRooms(rows)
}

// GetRoomByID fetches a single room by its ID.
func GetRoomByID(ctx context.Context, db *pgxpool.Pool, id uuid.UUID) (*Room, error) {
	query := `
		SELECT id, room_number, room_type, price_per_night, status, created_at
		FROM rooms
		WHERE id = $1`

	var r Room
	err := db.QueryRow(ctx, query, id).Scan(
		&r.ID, &r.RoomNumber, &r.RoomType, &r.PricePerNight, &r.Status, &r.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		logger.ErrorLogger.Errorf("Failed to fetch room %s: %v", id, err)
		return nil, fmt.Errorf("database error fetching room: %w", err)
	}
	return &r, nil
}

// GetAvailableRooms fetches rooms that are not under maintenance and have no
// Active booking overlapping the requested date range.
func GetAvailableRooms(ctx context.Context, db *pgxpool.Pool, checkIn, checkOut time.Time) ([]Room, error) {
	query := `
		SELECT r.id, r.room_number, r.room_type, r.price_per_night, r.status, r.created_at
		FROM rooms r
		WHERE r.status <> $3
		  AND NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.room_id = r.id
			  AND b.status = 'Active'
			  AND b.check_in_date < $2
			  AND b.check_out_date > $1
		  )
		ORDER BY r.room_number`

	rows, err := db.Query(ctx, query, checkIn, checkOut, StatusMaintenance)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch available rooms: %v", err)
		return nil, fmt.Errorf("failed to fetch available rooms: %w", err)
	}
	defer rows.Close()

	return scanRooms(rows)
}

// UpdateRoom rewrites a room's details and status.
func UpdateRoom(ctx context.Context, db *pgxpool.Pool, room *Room) error {
	query := `
		UPDATE rooms
		SET room_number = $2, room_type = $3, price_per_night = $4, status = $5
		WHERE id = $1`

	cmdTag, err := db.Exec(ctx, query,
		room.ID, room.RoomNumber, room.RoomType, room.PricePerNight, room.Status,
	)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to update room %s: %v", room.ID, err)
		return fmt.Errorf("failed to update room: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrRoomNotFound
	}

	logger.InfoLogger.Infof("Room %s updated successfully", room.ID)
	return nil
}

// DeleteRoom removes a room record.
func DeleteRoom(ctx context.Context, db *pgxpool.Pool, id uuid.UUID) error {
	cmdTag, err := db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to delete room %s: %v", id, err)
		return fmt.Errorf("failed to delete room: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrRoomNotFound
	}

	logger.InfoLogger.Infof("Room %s deleted", id)
	return nil
}

func scanRooms(rows pgx.Rows) ([]Room, error) {
	rooms := make([]Room, 0)
	for rows.Next() {
		var r Room
		if err := rows.Scan(&r.ID, &r.RoomNumber, &r.RoomType, &r.PricePerNight, &r.Status, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan room row: %w", err)
		}
		rooms = append(rooms, r)
	}
	return rooms, rows.Err()
}
