package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPayment(t *testing.T) {
	t.Run("FirstPayment", func(t *testing.T) {
		balance, err := RecordPayment(5000, nil, 1000)
		require.NoError(t, err)
		assert.Equal(t, 4000.0, balance)
	})

	t.Run("RunningBalances", func(t *testing.T) {
		// Three payments of 1000, 2000, 500 against 5000 yield stored
		// balances 4000, 2000, 1500 in that order.
		b1, err := RecordPayment(5000, nil, 1000)
		require.NoError(t, err)
		assert.Equal(t, 4000.0, b1)

		b2, err := RecordPayment(5000, []float64{1000}, 2000)
		require.NoError(t, err)
		assert.Equal(t, 2000.0, b2)

		b3, err := RecordPayment(5000, []float64{1000, 2000}, 500)
		require.NoError(t, err)
		assert.Equal(t, 1500.0, b3)
	})

	t.Run("ExactSettlement", func(t *testing.T) {
		balance, err := RecordPayment(1000, []float64{600}, 400)
		require.NoError(t, err)
		assert.Equal(t, 0.0, balance)
	})

	t.Run("Overpayment", func(t *testing.T) {
		_, err := RecordPayment(1000, []float64{600}, 500)
		assert.ErrorIs(t, err, ErrOverpayment)
	})

	t.Run("ZeroAmount", func(t *testing.T) {
		_, err := RecordPayment(1000, nil, 0)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("NegativeAmount", func(t *testing.T) {
		_, err := RecordPayment(1000, nil, -50)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestRecomputeBalances(t *testing.T) {
	newEntry := func(amount float64) LedgerEntry {
		id, err := uuid.NewV7()
		require.NoError(t, err)
		return LedgerEntry{ID: id, AmountPaid: amount}
	}

	t.Run("AfterMiddleDeletion", func(t *testing.T) {
		// Payments 1000, 2000, 500 against 5000; the middle one is
		// deleted and the survivors recompute to 4000, 3500.
		first := newEntry(1000)
		third := newEntry(500)

		results := RecomputeBalances(5000, []LedgerEntry{first, third})
		require.Len(t, results, 2)
		assert.Equal(t, first.ID, results[0].ID)
		assert.Equal(t, 4000.0, results[0].NewBalance)
		assert.Equal(t, third.ID, results[1].ID)
		assert.Equal(t, 3500.0, results[1].NewBalance)
	})

	t.Run("LastBalanceEqualsTotalMinusSum", func(t *testing.T) {
		entries := []LedgerEntry{newEntry(1200), newEntry(800), newEntry(350.50)}

		results := RecomputeBalances(4000, entries)
		require.Len(t, results, 3)
		assert.Equal(t, 4000.0-1200-800-350.50, results[2].NewBalance)
	})

	t.Run("Idempotent", func(t *testing.T) {
		entries := []LedgerEntry{newEntry(1000), newEntry(2500)}

		first := RecomputeBalances(6000, entries)
		second := RecomputeBalances(6000, entries)
		assert.Equal(t, first, second)
	})

	t.Run("RepairsDriftedBalances", func(t *testing.T) {
		// Every remaining row is rewritten from scratch, so a balance
		// that drifted before the deletion comes out consistent.
		entries := []LedgerEntry{newEntry(900), newEntry(100)}

		results := RecomputeBalances(2000, entries)
		require.Len(t, results, 2)
		assert.Equal(t, 1100.0, results[0].NewBalance)
		assert.Equal(t, 1000.0, results[1].NewBalance)
	})

	t.Run("EmptyRemainder", func(t *testing.T) {
		results := RecomputeBalances(5000, nil)
		assert.Empty(t, results)
	})

	t.Run("RoundTripWithRecordPayment", func(t *testing.T) {
		// Recomputing over the full, undeleted payment list reproduces
		// the balances recordPayment stored one by one.
		total := 5000.0
		amounts := []float64{1000, 2000, 500}

		var stored []float64
		var prior []float64
		for _, amount := range amounts {
			balance, err := RecordPayment(total, prior, amount)
			require.NoError(t, err)
			stored = append(stored, balance)
			prior = append(prior, amount)
		}

		entries := make([]LedgerEntry, len(amounts))
		for i, amount := range amounts {
			entries[i] = newEntry(amount)
		}
		results := RecomputeBalances(total, entries)
		require.Len(t, results, len(stored))
		for i := range results {
			assert.Equal(t, stored[i], results[i].NewBalance)
		}
	})
}

func TestOutstandingBalance(t *testing.T) {
	assert.Equal(t, 1500.0, OutstandingBalance(5000, []float64{1000, 2000, 500}))
	assert.Equal(t, 5000.0, OutstandingBalance(5000, nil))
	assert.Equal(t, 0.0, OutstandingBalance(3500, []float64{3500}))
}
