package billing

import "github.com/google/uuid"

// LedgerEntry is one payment against a booking, in the order it was made.
type LedgerEntry struct {
	ID         uuid.UUID
	AmountPaid float64
}

// LedgerResult carries the recomputed balance for one payment row.
type LedgerResult struct {
	ID         uuid.UUID
	NewBalance float64
}

// RecordPayment validates a new payment against the booking total and the
// payments already made, and returns the outstanding balance after it.
// A payment that would drive the balance negative fails with ErrOverpayment
// and must not be persisted.
func RecordPayment(bookingTotal float64, priorPayments []float64, newAmount float64) (float64, error) {
	if newAmount <= 0 {
		return 0, ErrInvalidAmount
	}

	totalPaid := 0.0
	for _, amount := range priorPayments {
		totalPaid += amount
	}

	balanceAfter := roundMoney(bookingTotal - totalPaid - newAmount)
	if balanceAfter < 0 {
		return 0, ErrOverpayment
	}
	return balanceAfter, nil
}

// RecomputeBalances walks the remaining payments of a booking oldest first
// and re-derives every stored balance from scratch: after each payment the
// balance is the booking total minus the running sum paid so far. Every
// remaining row gets a result, not just those after a deleted payment, so
// any drift in earlier balances is repaired too. An empty input yields no
// updates; the booking is then simply fully unpaid.
func RecomputeBalances(bookingTotal float64, remainingOldestFirst []LedgerEntry) []LedgerResult {
	results := make([]LedgerResult, 0, len(remainingOldestFirst))

	runningPaid := 0.0
	for _, entry := range remainingOldestFirst {
		runningPaid += entry.AmountPaid
		results = append(results, LedgerResult{
			ID:         entry.ID,
			NewBalance: roundMoney(bookingTotal - runningPaid),
		})
	}
	return results
}

// OutstandingBalance is the current amount owed given the full payment
// history of a booking.
func OutstandingBalance(bookingTotal float64, payments []float64) float64 {
	paid := 0.0
	for _, amount := range payments {
		paid += amount
	}
	return roundMoney(bookingTotal - paid)
}
