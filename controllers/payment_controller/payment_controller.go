package payment_controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjunkmr/hoteldesk/billing"
	"github.com/arjunkmr/hoteldesk/logger"
	"github.com/arjunkmr/hoteldesk/models/booking_models"
	"github.com/arjunkmr/hoteldesk/models/customer_models"
	"github.com/arjunkmr/hoteldesk/models/payment_models"
	"github.com/arjunkmr/hoteldesk/models/room_models"
	"github.com/arjunkmr/hoteldesk/utils/mail"
)

// PaymentController holds dependencies for the payment ledger operations.
type PaymentController struct {
	DB *pgxpool.Pool
}

// NewPaymentController creates a new instance of PaymentController.
func NewPaymentController(db *pgxpool.Pool) *PaymentController {
	return &PaymentController{DB: db}
}

type recordPaymentRequest struct {
	BookingID   string  `json:"booking_id" binding:"required,uuid"`
	PaymentMode string  `json:"payment_mode" binding:"omitempty,oneof=Cash Card UPI Other"`
	AmountPaid  float64 `json:"amount_paid" binding:"required"`
	PaymentDate string  `json:"payment_date"`
}

// RecordPayment takes a payment against a booking. Overpayments are
// rejected before anything is written.
func (pc *PaymentController) RecordPayment(c *gin.Context) {
	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bookingID, _ := uuid.Parse(req.BookingID)

	var paymentDate time.Time
	if req.PaymentDate != "" {
		var err error
		if paymentDate, err = time.Parse(time.RFC3339, req.PaymentDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment date, expected RFC3339"})
			return
		}
	}

	payment, err := payment_models.NewPayment(bookingID, req.PaymentMode, req.AmountPaid, paymentDate)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to build payment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	recorded, err := payment_models.RecordPayment(c.Request.Context(), pc.DB, payment)
	if err != nil {
		switch {
		case errors.Is(err, booking_models.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, billing.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment amount must be greater than zero"})
		case errors.Is(err, billing.ErrOverpayment):
			c.JSON(http.StatusConflict, gin.H{"error": "Payment exceeds the outstanding balance"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	go pc.sendReceipt(recorded)

	c.JSON(http.StatusCreated, recorded)
}

// GetPaymentsByBooking lists a booking's payment history oldest first.
func (pc *PaymentController) GetPaymentsByBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	payments, err := payment_models.GetPaymentsByBooking(c.Request.Context(), pc.DB, bookingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// DeletePayment removes a payment and restores the ledger invariant over the
// remaining payments.
func (pc *PaymentController) DeletePayment(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("paymentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID"})
		return
	}

	if err := payment_models.DeletePayment(c.Request.Context(), pc.DB, paymentID); err != nil {
		switch {
		case errors.Is(err, payment_models.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		case errors.Is(err, booking_models.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted and balances recomputed"})
}

// GetReceipt summarizes a booking's cost and payment state for a printable
// receipt. The tax breakdown is recovered from the stored total through the
// inverse tariff quote, a documented approximation.
func (pc *PaymentController) GetReceipt(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	ctx := c.Request.Context()
	booking, err := booking_models.GetBookingByID(ctx, pc.DB, bookingID)
	if err != nil {
		if errors.Is(err, booking_models.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking"})
		return
	}

	payments, err := payment_models.GetPaymentsByBooking(ctx, pc.DB, bookingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	amounts := make([]float64, len(payments))
	totalPaid := 0.0
	for i, p := range payments {
		amounts[i] = p.AmountPaid
		totalPaid += p.AmountPaid
	}

	response := gin.H{
		"booking":     booking,
		"payments":    payments,
		"total_paid":  totalPaid,
		"balance_due": billing.OutstandingBalance(booking.TotalAmount, amounts),
		"tax_breakup": nil,
	}

	if nights, err := billing.Nights(booking.CheckInDate, booking.CheckOutDate); err == nil {
		if quote, err := billing.QuoteFromTotal(booking.TotalAmount, nights); err == nil {
			response["tax_breakup"] = quote
			response["nights"] = nights
		}
	}

	c.JSON(http.StatusOK, response)
}

// sendReceipt emails the customer a receipt for a recorded payment. Best
// effort: failures are logged, never surfaced to the desk.
func (pc *PaymentController) sendReceipt(payment *payment_models.Payment) {
	ctx, cancel := contextWithMailTimeout()
	defer cancel()

	booking, err := booking_models.GetBookingByID(ctx, pc.DB, payment.BookingID)
	if err != nil {
		logger.WarnLogger.Warnf("Receipt email skipped, booking %s unavailable: %v", payment.BookingID, err)
		return
	}
	customer, err := customer_models.GetCustomerByID(ctx, pc.DB, booking.CustomerID)
	if err != nil || customer.Email == "" {
		return
	}
	room, err := room_models.GetRoomByID(ctx, pc.DB, booking.RoomID)
	if err != nil {
		return
	}

	data := mail.ReceiptData{
		CustomerName:  customer.Name,
		RoomNumber:    room.RoomNumber,
		RoomType:      room.RoomType,
		CheckInDate:   booking.CheckInDate.Format("02 Jan 2006"),
		CheckOutDate:  booking.CheckOutDate.Format("02 Jan 2006"),
		TotalAmount:   fmt.Sprintf("%.2f", booking.TotalAmount),
		AmountPaid:    fmt.Sprintf("%.2f", payment.AmountPaid),
		BalanceAmount: fmt.Sprintf("%.2f", payment.BalanceAmount),
		PaymentMode:   payment.PaymentMode,
		PaymentDate:   payment.PaymentDate.Format("02 Jan 2006 15:04"),
	}

	if err := mail.SendPaymentReceipt(customer.Email, data); err != nil {
		logger.WarnLogger.Warnf("Failed to email receipt for payment %s: %v", payment.ID, err)
	}
}

func contextWithMailTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 15*time.Second)
}
