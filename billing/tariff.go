package billing

import (
	"math"
	"time"
)

// GST tiers on the nightly room rate.
const (
	gstLowerThreshold = 1000
	gstUpperThreshold = 7500

	gstRateZero     = 0.0
	gstRateStandard = 0.05
	gstRateLuxury   = 0.18
)

// StayQuote is the taxed cost breakdown for a stay.
type StayQuote struct {
	RoomTotal  float64 `json:"room_total"`
	TaxRate    float64 `json:"tax_rate"`
	TaxAmount  float64 `json:"tax_amount"`
	GrandTotal float64 `json:"grand_total"`
}

// TaxRateFor returns the GST rate bracket for a nightly rate. The tier is a
// function of the base nightly rate alone, never of an accumulated or
// averaged total.
func TaxRateFor(ratePerNight float64) float64 {
	switch {
	case ratePerNight < gstLowerThreshold:
		return gstRateZero
	case ratePerNight <= gstUpperThreshold:
		return gstRateStandard
	default:
		return gstRateLuxury
	}
}

// ComputeStay converts a nightly rate and a stay length into a taxed total.
// The tax tier is evaluated once from ratePerNight and held constant across
// all nights of the stay.
func ComputeStay(ratePerNight float64, nights int) (StayQuote, error) {
	if nights <= 0 || ratePerNight < 0 {
		return StayQuote{}, ErrInvalidStay
	}

	taxRate := TaxRateFor(ratePerNight)
	roomTotal := ratePerNight * float64(nights)
	taxAmount := ratePerNight * taxRate * float64(nights)

	return StayQuote{
		RoomTotal:  roundMoney(roomTotal),
		TaxRate:    taxRate,
		TaxAmount:  roundMoney(taxAmount),
		GrandTotal: roundMoney(roomTotal + taxAmount),
	}, nil
}

// Nights returns the number of chargeable nights between check-in and
// check-out, the ceiling of the day difference. A non-positive duration
// fails with ErrInvalidStay.
func Nights(checkIn, checkOut time.Time) (int, error) {
	if !checkOut.After(checkIn) {
		return 0, ErrInvalidStay
	}
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights <= 0 {
		return 0, ErrInvalidStay
	}
	return nights, nil
}

// QuoteFromTotal recovers a tax breakdown from a stored grand total and the
// stay length, for rendering a receipt after the fact. The implied nightly
// rate is grandTotal/nights run back through the tier table. This is an
// approximation: rounding on the stored total means the implied rate is not
// bit-exact equal to the pre-tax nightly rate the forward computation used.
func QuoteFromTotal(grandTotal float64, nights int) (StayQuote, error) {
	if nights <= 0 || grandTotal < 0 {
		return StayQuote{}, ErrInvalidStay
	}

	impliedRate := grandTotal / float64(nights)
	taxRate := TaxRateFor(impliedRate)

	// grandTotal = roomTotal * (1 + taxRate), so divide it back out.
	roomTotal := grandTotal / (1 + taxRate)

	return StayQuote{
		RoomTotal:  roundMoney(roomTotal),
		TaxRate:    taxRate,
		TaxAmount:  roundMoney(grandTotal - roomTotal),
		GrandTotal: roundMoney(grandTotal),
	}, nil
}

// roundMoney rounds to 2 decimal places, the precision of every stored
// currency column.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
