package payment_models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	bookingID := uuid.New()

	t.Run("Defaults", func(t *testing.T) {
		payment, err := NewPayment(bookingID, "", 500, time.Time{})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, payment.ID)
		assert.Equal(t, bookingID, payment.BookingID)
		assert.Equal(t, ModeCash, payment.PaymentMode)
		assert.Equal(t, 500.0, payment.AmountPaid)
		assert.WithinDuration(t, time.Now(), payment.PaymentDate, time.Second)
	})

	t.Run("SuppliedDateKept", func(t *testing.T) {
		when := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
		payment, err := NewPayment(bookingID, ModeUPI, 250, when)
		require.NoError(t, err)
		assert.Equal(t, when, payment.PaymentDate)
		assert.Equal(t, ModeUPI, payment.PaymentMode)
	})

	t.Run("IDsAreTimeOrdered", func(t *testing.T) {
		// uuid v7 ids sort by creation time, which is what the
		// ledger's tie-break ordering relies on.
		first, err := NewPayment(bookingID, ModeCash, 100, time.Time{})
		require.NoError(t, err)
		second, err := NewPayment(bookingID, ModeCash, 100, time.Time{})
		require.NoError(t, err)
		assert.Less(t, first.ID.String(), second.ID.String())
	})
}
