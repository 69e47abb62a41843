package booking_models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	customerID := uuid.New()
	roomID := uuid.New()
	checkIn := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC)

	booking, err := NewBooking(customerID, roomID, checkIn, checkOut, 6300)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, booking.ID)
	assert.Equal(t, customerID, booking.CustomerID)
	assert.Equal(t, roomID, booking.RoomID)
	assert.Equal(t, checkIn, booking.CheckInDate)
	assert.Equal(t, checkOut, booking.CheckOutDate)
	assert.Equal(t, 6300.0, booking.TotalAmount)
	assert.Equal(t, StatusActive, booking.Status)
	assert.False(t, booking.CreatedAt.IsZero())
	assert.Equal(t, booking.CreatedAt, booking.UpdatedAt)
}
