package staff_models

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

var ErrStaffNotFound = errors.New("staff account not found")

// Staff is a front-desk operator account for the dashboard.
type Staff struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewStaff creates a new Staff struct.
func NewStaff(name, email, passwordHash string) (*Staff, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID for staff: %w", err)
	}
	return &Staff{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}, nil
}

// CreateStaff inserts a new staff account into the database.
func CreateStaff(ctx context.Context, db *pgxpool.Pool, staff *Staff) (*Staff, error) {
	logger.InfoLogger.Infof("Attempting to create staff account for %s", staff.Email)

	query := `
		INSERT INTO staff (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var insertedID uuid.UUID
	err := db.QueryRow(ctx, query,
		staff.ID, staff.Name, staff.Email, staff.PasswordHash, staff.CreatedAt,
	).Scan(&insertedID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to insert staff %s: %v", staff.Email, err)
		return nil, fmt.Errorf("failed to create staff account: %w", err)
	}

	staff.ID = insertedID
	logger.InfoLogger.Infof("Staff account %s created", staff.ID)
	return staff, nil
}

// GetStaffByEmail fetches a staff account by its login email.
func GetStaffByEmail(ctx context.Context, db *pgxpool.Pool, email string) (*Staff, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM staff
		WHERE email = $1`

	var s Staff
	err := db.QueryRow(ctx, query, email).Scan(&s.ID, &s.Name, &s.Email, &s.PasswordHash, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStaffNotFound
		}
		logger.ErrorLogger.Errorf("Failed to fetch staff %s: %v", email, err)
		return nil, fmt.Errorf("database error fetching staff: %w", err)
	}
	return &s, nil
}

// GetStaffByID fetches a staff account by its ID.
func GetStaffByID(ctx context.Context, db *pgxpool.Pool, id uuid.UUID) (*Staff, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM staff
		WHERE id = $1`

	var s Staff
	err := db.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Email, &s.PasswordHash, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStaffNotFound
		}
		logger.ErrorLogger.Errorf("Failed to fetch staff %s: %v", id, err)
		return nil, fmt.Errorf("database error fetching staff: %w", err)
	}
	return &s, nil
}
