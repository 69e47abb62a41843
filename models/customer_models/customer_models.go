package customer_models

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

var ErrCustomerNotFound = errors.New("customer not found")

// Customer is a guest registered at the front desk.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	IDProof   string    `json:"id_proof"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCustomer creates a new Customer struct.
func NewCustomer(name, phone, email, address, idProof string) (*Customer, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID for customer: %w", err)
	}
	return &Customer{
		ID:        id,
		Name:      name,
		Phone:     phone,
		Email:     email,
		Address:   address,
		IDProof:   idProof,
		CreatedAt: time.Now(),
	}, nil
}

// CreateCustomer inserts a new customer record into the database.
func CreateCustomer(ctx context.Context, db *pgxpool.Pool, customer *Customer) (*Customer, error) {
	logger.InfoLogger.Infof("Attempting to create customer record for %s", customer.Name)

	query := `
		INSERT INTO customers (id, name, phone, email, address, id_proof, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var insertedID uuid.UUID
	err := db.QueryRow(ctx, query,
		customer.ID, customer.Name, customer.Phone, customer.Email,
		customer.Address, customer.IDProof, customer.CreatedAt,
	).Scan(&insertedID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to insert customer %s: %v", customer.Name, err)
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	customer.ID = insertedID
	logger.InfoLogger.Infof("Customer %s created successfully", customer.ID)
	return customer, nil
}

// GetAllCustomers fetches every customer, newest first.
func GetAllCustomers(ctx context.Context, db *pgxpool.Pool) ([]Customer, error) {
	query := `
		SELECT id, name, phone, email, address, id_proof, created_at
		FROM customers
		ORDER BY created_at DESC`

	rows, err := db.Query(ctx, query)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch customers: %v", err)
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}
	defer rows.Close()

	customers := make([]Customer, 0)
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.IDProof, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// GetCustomerByID fetches a single customer by its ID.
func GetCustomerByID(ctx context.Context, db *pgxpool.Pool, id uuid.UUID) (*Customer, error) {
	query := `
		SELECT id, name, phone, email, address, id_proof, created_at
		FROM customers
		WHERE id = $1`

	var c Customer
	err := db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.IDProof, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		logger.ErrorLogger.Errorf("Failed to fetch customer %s: %v", id, err)
		return nil, fmt.Errorf("database error fetching customer: %w", err)
	}
	return &c, nil
}

// UpdateCustomer rewrites a customer's contact details.
func UpdateCustomer(ctx context.Context, db *pgxpool.Pool, customer *Customer) error {
	query := `
		UPDATE customers
		SET name = $2, phone = $3, email = $4, address = $5, id_proof = $6
		WHERE id = $1`

	cmdTag, err := db.Exec(ctx, query,
		customer.ID, customer.Name, customer.Phone, customer.Email,
		customer.Address, customer.IDProof,
	)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to update customer %s: %v", customer.ID, err)
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	logger.InfoLogger.Infof("Customer %s updated successfully", customer.ID)
	return nil
}

// DeleteCustomer removes a customer record.
func DeleteCustomer(ctx context.Context, db *pgxpool.Pool, id uuid.UUID) error {
	cmdTag, err := db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to delete customer %s: %v", id, err)
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	logger.InfoLogger.Infof("Customer %s deleted", id)
	return nil
}
