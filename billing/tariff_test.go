package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxRateFor(t *testing.T) {
	cases := []struct {
		name string
		rate float64
		want float64
	}{
		{"BelowLowerThreshold", 999.99, 0},
		{"Zero", 0, 0},
		{"AtLowerThreshold", 1000, 0.05},
		{"MidTier", 2000, 0.05},
		{"AtUpperThreshold", 7500, 0.05},
		{"AboveUpperThreshold", 7500.01, 0.18},
		{"Luxury", 12000, 0.18},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TaxRateFor(tc.rate))
		})
	}
}

func TestComputeStay(t *testing.T) {
	t.Run("StandardTier", func(t *testing.T) {
		quote, err := ComputeStay(2000, 3)
		require.NoError(t, err)
		assert.Equal(t, 6000.0, quote.RoomTotal)
		assert.Equal(t, 0.05, quote.TaxRate)
		assert.Equal(t, 300.0, quote.TaxAmount)
		assert.Equal(t, 6300.0, quote.GrandTotal)
	})

	t.Run("ZeroTaxTier", func(t *testing.T) {
		quote, err := ComputeStay(800, 2)
		require.NoError(t, err)
		assert.Equal(t, 1600.0, quote.RoomTotal)
		assert.Equal(t, 0.0, quote.TaxRate)
		assert.Equal(t, 0.0, quote.TaxAmount)
		assert.Equal(t, 1600.0, quote.GrandTotal)
	})

	t.Run("LuxuryTier", func(t *testing.T) {
		quote, err := ComputeStay(8000, 1)
		require.NoError(t, err)
		assert.Equal(t, 8000.0, quote.RoomTotal)
		assert.Equal(t, 0.18, quote.TaxRate)
		assert.Equal(t, 1440.0, quote.TaxAmount)
		assert.Equal(t, 9440.0, quote.GrandTotal)
	})

	t.Run("GrandTotalIsSum", func(t *testing.T) {
		rates := []float64{0, 500, 999.99, 1000, 3333.33, 7500, 7501, 15000}
		for _, rate := range rates {
			for nights := 1; nights <= 14; nights++ {
				quote, err := ComputeStay(rate, nights)
				require.NoError(t, err)
				assert.InDelta(t, quote.RoomTotal+quote.TaxAmount, quote.GrandTotal, 0.011)
			}
		}
	})

	t.Run("ZeroNights", func(t *testing.T) {
		_, err := ComputeStay(2000, 0)
		assert.ErrorIs(t, err, ErrInvalidStay)
	})

	t.Run("NegativeNights", func(t *testing.T) {
		_, err := ComputeStay(2000, -1)
		assert.ErrorIs(t, err, ErrInvalidStay)
	})

	t.Run("NegativeRate", func(t *testing.T) {
		_, err := ComputeStay(-100, 2)
		assert.ErrorIs(t, err, ErrInvalidStay)
	})
}

func TestNights(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("ThreeNights", func(t *testing.T) {
		nights, err := Nights(day(10), day(13))
		require.NoError(t, err)
		assert.Equal(t, 3, nights)
	})

	t.Run("SingleNight", func(t *testing.T) {
		nights, err := Nights(day(10), day(11))
		require.NoError(t, err)
		assert.Equal(t, 1, nights)
	})

	t.Run("PartialDayRoundsUp", func(t *testing.T) {
		checkIn := time.Date(2025, time.March, 10, 14, 0, 0, 0, time.UTC)
		checkOut := time.Date(2025, time.March, 11, 11, 0, 0, 0, time.UTC)
		nights, err := Nights(checkIn, checkOut)
		require.NoError(t, err)
		assert.Equal(t, 1, nights)
	})

	t.Run("SameDay", func(t *testing.T) {
		_, err := Nights(day(10), day(10))
		assert.ErrorIs(t, err, ErrInvalidStay)
	})

	t.Run("CheckOutBeforeCheckIn", func(t *testing.T) {
		_, err := Nights(day(13), day(10))
		assert.ErrorIs(t, err, ErrInvalidStay)
	})
}

func TestQuoteFromTotal(t *testing.T) {
	t.Run("RecoversForwardQuote", func(t *testing.T) {
		// Post-tax per-night stays in the same bracket here, so the
		// receipt approximation lands on the original breakdown.
		forward, err := ComputeStay(2000, 3)
		require.NoError(t, err)

		inverse, err := QuoteFromTotal(forward.GrandTotal, 3)
		require.NoError(t, err)
		assert.Equal(t, forward.TaxRate, inverse.TaxRate)
		assert.InDelta(t, forward.RoomTotal, inverse.RoomTotal, 0.01)
		assert.InDelta(t, forward.TaxAmount, inverse.TaxAmount, 0.01)
	})

	t.Run("ZeroNights", func(t *testing.T) {
		_, err := QuoteFromTotal(6300, 0)
		assert.ErrorIs(t, err, ErrInvalidStay)
	})
}
