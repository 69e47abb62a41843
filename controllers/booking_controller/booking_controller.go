package booking_controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjunkmr/hoteldesk/billing"
	"github.com/arjunkmr/hoteldesk/logger"
	"github.com/arjunkmr/hoteldesk/models/booking_models"
	"github.com/arjunkmr/hoteldesk/models/room_models"
)

// BookingController holds dependencies for booking operations.
type BookingController struct {
	DB *pgxpool.Pool
}

// NewBookingController creates a new instance of BookingController.
func NewBookingController(db *pgxpool.Pool) *BookingController {
	return &BookingController{DB: db}
}

type createBookingRequest struct {
	CustomerID   string `json:"customer_id" binding:"required,uuid"`
	RoomID       string `json:"room_id" binding:"required,uuid"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
	// TotalAmount, when supplied, is taken as-is and the tariff
	// calculator is skipped.
	TotalAmount *float64 `json:"total_amount" binding:"omitempty,gte=0"`
}

type updateBookingRequest struct {
	CustomerID   string `json:"customer_id" binding:"omitempty,uuid"`
	RoomID       string `json:"room_id" binding:"omitempty,uuid"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Status       string `json:"booking_status" binding:"omitempty,oneof=Active Completed Cancelled"`
}

// CreateBooking opens a booking. The total amount is fixed here, either
// supplied pre-computed or derived from the room's nightly rate through the
// tariff calculator, and is not recalculated if the dates change later.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customerID, _ := uuid.Parse(req.CustomerID)
	roomID, _ := uuid.Parse(req.RoomID)

	checkIn, checkOut, err := parseStayDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nights, err := billing.Nights(checkIn, checkOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Check-out date must be after check-in date"})
		return
	}

	ctx := c.Request.Context()

	var totalAmount float64
	var quote billing.StayQuote
	if req.TotalAmount != nil {
		totalAmount = *req.TotalAmount
	} else {
		room, err := room_models.GetRoomByID(ctx, bc.DB, roomID)
		if err != nil {
			if errors.Is(err, room_models.ErrRoomNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch room"})
			return
		}

		quote, err = billing.ComputeStay(room.PricePerNight, nights)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		totalAmount = quote.GrandTotal
	}

	booking, err := booking_models.NewBooking(customerID, roomID, checkIn, checkOut, totalAmount)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to build booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	created, err := booking_models.CreateBooking(ctx, bc.DB, booking)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking": created,
		"nights":  nights,
		"quote":   quote,
	})
}

// GetBookings lists every booking with customer and room details.
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := booking_models.GetAllBookings(c.Request.Context(), bc.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking fetches one booking by ID.
func (bc *BookingController) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	booking, err := booking_models.GetBookingByID(c.Request.Context(), bc.DB, id)
	if err != nil {
		if errors.Is(err, booking_models.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking"})
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateBooking edits a booking's dates, references or status. Missing
// fields keep their stored values. The total amount is never touched here.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	booking, err := booking_models.GetBookingByID(ctx, bc.DB, id)
	if err != nil {
		if errors.Is(err, booking_models.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking"})
		return
	}

	if req.CustomerID != "" {
		booking.CustomerID, _ = uuid.Parse(req.CustomerID)
	}
	if req.RoomID != "" {
		booking.RoomID, _ = uuid.Parse(req.RoomID)
	}
	if req.CheckInDate != "" {
		if booking.CheckInDate, err = time.Parse("2006-01-02", req.CheckInDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check-in date, expected YYYY-MM-DD"})
			return
		}
	}
	if req.CheckOutDate != "" {
		if booking.CheckOutDate, err = time.Parse("2006-01-02", req.CheckOutDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check-out date, expected YYYY-MM-DD"})
			return
		}
	}
	if !booking.CheckOutDate.After(booking.CheckInDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Check-out date must be after check-in date"})
		return
	}
	if req.Status != "" {
		booking.Status = req.Status
	}

	if err := booking_models.UpdateBooking(ctx, bc.DB, booking); err != nil {
		if errors.Is(err, booking_models.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking updated successfully"})
}

type statusRequest struct {
	Status string `json:"booking_status" binding:"required,oneof=Active Completed Cancelled"`
}

// UpdateBookingStatus flips only the booking's status, the common check-out
// and cancellation action on the dashboard.
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := booking_models.UpdateBookingStatus(c.Request.Context(), bc.DB, id, req.Status); err != nil {
		if errors.Is(err, booking_models.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated successfully"})
}

// DeleteBooking removes a booking.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	if err := booking_models.DeleteBooking(c.Request.Context(), bc.DB, id); err != nil {
		if errors.Is(err, booking_models.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

func parseStayDates(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := time.Parse("2006-01-02", checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid check-in date, expected YYYY-MM-DD")
	}
	checkOut, err := time.Parse("2006-01-02", checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid check-out date, expected YYYY-MM-DD")
	}
	return checkIn, checkOut, nil
}
