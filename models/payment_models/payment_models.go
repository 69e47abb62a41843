package payment_models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjunkmr/hoteldesk/billing"
	"github.com/arjunkmr/hoteldesk/logger"
	"github.com/arjunkmr/hoteldesk/models/booking_models"
)

var ErrPaymentNotFound = errors.New("payment not found")

// Payment modes offered at the desk. The column is a free-form tag, these
// are only the values the dashboard suggests.
const (
	ModeCash  = "Cash"
	ModeCard  = "Card"
	ModeUPI   = "UPI"
	ModeOther = "Other"
)

// Payment is one payment event against a booking. BalanceAmount is the
// outstanding balance as of this payment, written redundantly at record time
// and kept consistent by the recompute-on-delete procedure, its sole other
// writer.
type Payment struct {
	ID            uuid.UUID `json:"id"`
	BookingID     uuid.UUID `json:"booking_id"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMode   string    `json:"payment_mode"`
	AmountPaid    float64   `json:"amount_paid"`
	BalanceAmount float64   `json:"balance_amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewPayment creates a new Payment struct. PaymentDate defaults to now when
// the zero value is supplied.
func NewPayment(bookingID uuid.UUID, paymentMode string, amountPaid float64, paymentDate time.Time) (*Payment, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID for payment: %w", err)
	}
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}
	if paymentMode == "" {
		paymentMode = ModeCash
	}
	return &Payment{
		ID:          id,
		BookingID:   bookingID,
		PaymentDate: paymentDate,
		PaymentMode: paymentMode,
		AmountPaid:  amountPaid,
		CreatedAt:   time.Now(),
	}, nil
}

// RecordPayment validates and persists a payment inside a single transaction
// that locks the booking row first. The lock serializes the
// read-check-write sequence per booking, so two concurrent submissions
// cannot both pass the overpayment check against the same prior total.
func RecordPayment(ctx context.Context, db *pgxpool.Pool, payment *Payment) (*Payment, error) {
	logger.InfoLogger.Infof("Attempting to record payment of %.2f against booking %s", payment.AmountPaid, payment.BookingID)

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin payment transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	bookingTotal, err := lockBookingTotal(ctx, tx, payment.BookingID)
	if err != nil {
		return nil, err
	}

	prior, err := priorAmounts(ctx, tx, payment.BookingID)
	if err != nil {
		return nil, err
	}

	balanceAfter, err := billing.RecordPayment(bookingTotal, prior, payment.AmountPaid)
	if err != nil {
		// Reject before write: the row is never inserted on an
		// overpayment or invalid amount.
		return nil, err
	}
	payment.BalanceAmount = balanceAfter

	query := `
		INSERT INTO payments (
			id, booking_id, payment_date, payment_mode,
			amount_paid, balance_amount, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id`

	var insertedID uuid.UUID
	err = tx.QueryRow(ctx, query,
		payment.ID, payment.BookingID, payment.PaymentDate, payment.PaymentMode,
		payment.AmountPaid, payment.BalanceAmount, payment.CreatedAt,
	).Scan(&insertedID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to insert payment for booking %s: %v", payment.BookingID, err)
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit payment transaction: %w", err)
	}

	payment.ID = insertedID
	logger.InfoLogger.Infof("Payment %s recorded for booking %s, balance now %.2f", payment.ID, payment.BookingID, payment.BalanceAmount)
	return payment, nil
}

// GetPaymentsByBooking fetches a booking's payments oldest first. Ties on
// the payment timestamp fall back to the id, which is time-ordered, so
// recomputation stays deterministic.
func GetPaymentsByBooking(ctx context.Context, db *pgxpool.Pool, bookingID uuid.UUID) ([]Payment, error) {
	query := `
		SELECT id, booking_id, payment_date, payment_mode, amount_paid, balance_amount, created_at
		FROM payments
		WHERE booking_id = $1
		ORDER BY payment_date ASC, id ASC`

	rows, err := db.Query(ctx, query, bookingID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch payments for booking %s: %v", bookingID, err)
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}
	defer rows.Close()

	payments := make([]Payment, 0)
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.BookingID, &p.PaymentDate, &p.PaymentMode, &p.AmountPaid, &p.BalanceAmount, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// DeletePayment removes a payment and recomputes the stored balance of every
// remaining payment on the same booking, all inside one transaction holding
// the booking row lock. Deleting the last payment leaves the booking fully
// unpaid with no rows to rewrite.
func DeletePayment(ctx context.Context, db *pgxpool.Pool, paymentID uuid.UUID) error {
	logger.InfoLogger.Infof("Attempting to delete payment %s", paymentID)

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin deletion transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var bookingID uuid.UUID
	err = tx.QueryRow(ctx, `SELECT booking_id FROM payments WHERE id = $1`, paymentID).Scan(&bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPaymentNotFound
		}
		return fmt.Errorf("failed to look up payment %s: %w", paymentID, err)
	}

	bookingTotal, err := lockBookingTotal(ctx, tx, bookingID)
	if err != nil {
		return err
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM payments WHERE id = $1`, paymentID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to delete payment %s: %v", paymentID, err)
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrPaymentNotFound
	}

	remaining, err := remainingEntries(ctx, tx, bookingID)
	if err != nil {
		return err
	}

	for _, result := range billing.RecomputeBalances(bookingTotal, remaining) {
		if _, err := tx.Exec(ctx,
			`UPDATE payments SET balance_amount = $2 WHERE id = $1`,
			result.ID, result.NewBalance,
		); err != nil {
			logger.ErrorLogger.Errorf("Failed to rewrite balance for payment %s: %v", result.ID, err)
			return fmt.Errorf("failed to rewrite payment balance: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit deletion transaction: %w", err)
	}

	logger.InfoLogger.Infof("Payment %s deleted, %d sibling balances recomputed", paymentID, len(remaining))
	return nil
}

// lockBookingTotal locks the booking row for the rest of the transaction and
// returns its total amount.
func lockBookingTotal(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) (float64, error) {
	var total float64
	err := tx.QueryRow(ctx,
		`SELECT total_amount FROM bookings WHERE id = $1 FOR UPDATE`,
		bookingID,
	).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, booking_models.ErrBookingNotFound
		}
		logger.ErrorLogger.Errorf("Failed to lock booking %s: %v", bookingID, err)
		return 0, fmt.Errorf("failed to lock booking row: %w", err)
	}
	return total, nil
}

func priorAmounts(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) ([]float64, error) {
	rows, err := tx.Query(ctx,
		`SELECT amount_paid FROM payments WHERE booking_id = $1 ORDER BY payment_date ASC, id ASC`,
		bookingID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prior payments: %w", err)
	}
	defer rows.Close()

	amounts := make([]float64, 0)
	for rows.Next() {
		var amount float64
		if err := rows.Scan(&amount); err != nil {
			return nil, fmt.Errorf("failed to scan payment amount: %w", err)
		}
		amounts = append(amounts, amount)
	}
	return amounts, rows.Err()
}

func remainingEntries(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) ([]billing.LedgerEntry, error) {
	rows, err := tx.Query(ctx,
		`SELECT id, amount_paid FROM payments WHERE booking_id = $1 ORDER BY payment_date ASC, id ASC`,
		bookingID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch remaining payments: %w", err)
	}
	defer rows.Close()

	entries := make([]billing.LedgerEntry, 0)
	for rows.Next() {
		var e billing.LedgerEntry
		if err := rows.Scan(&e.ID, &e.AmountPaid); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
