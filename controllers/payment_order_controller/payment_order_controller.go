package payment_order_controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjunkmr/hoteldesk/billing"
	"github.com/arjunkmr/hoteldesk/clients"
	"github.com/arjunkmr/hoteldesk/logger"
	"github.com/arjunkmr/hoteldesk/models/booking_models"
	"github.com/arjunkmr/hoteldesk/models/payment_models"
)

// PaymentOrderController creates gateway collect orders for card/UPI
// payments and records captured payments through the same ledger path as
// cash taken at the desk.
type PaymentOrderController struct {
	DB            *pgxpool.Pool
	Gateway       clients.PaymentGateway
	WebhookSecret string
}

// NewPaymentOrderController wires the Razorpay gateway from the
// environment. Returns nil when the gateway is not configured, in which
// case the routes are simply not registered.
func NewPaymentOrderController(db *pgxpool.Pool) *PaymentOrderController {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	webhookSecret := os.Getenv("RAZORPAY_WEBHOOK_SECRET")

	if keyID == "" || keySecret == "" || webhookSecret == "" {
		logger.WarnLogger.Warn("Razorpay credentials not configured, online payment collection disabled")
		return nil
	}

	return &PaymentOrderController{
		DB:            db,
		Gateway:       clients.NewRazorpayGateway(keyID, keySecret),
		WebhookSecret: webhookSecret,
	}
}

type createOrderRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
}

// CreateOrder opens a gateway order for a booking's full outstanding
// balance.
func (pc *PaymentOrderController) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bookingID, _ := uuid.Parse(req.BookingID)
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
	for i, p := range payments {
		amounts[i] = p.AmountPaid
	}
	balance := billing.OutstandingBalance(booking.TotalAmount, amounts)
	if balance <= 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Booking is already fully paid"})
		return
	}

	order, err := pc.Gateway.CreateOrder(map[string]interface{}{
		"amount":   int64(balance * 100), // paise
		"currency": "INR",
		"receipt":  booking.ID.String(),
		"notes": map[string]interface{}{
			"booking_id": booking.ID.String(),
		},
	})
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to create gateway order for booking %s: %v", bookingID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment gateway order creation failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking_id": booking.ID,
		"balance":    balance,
		"order":      order,
	})
}

type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID     string `json:"id"`
				Amount int64  `json:"amount"`
				Method string `json:"method"`
				Notes  struct {
					BookingID string `json:"booking_id"`
				} `json:"notes"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// Webhook handles Razorpay payment events. Captured payments are written
// into the ledger under the gateway's payment method; everything else is
// acknowledged and ignored.
func (pc *PaymentOrderController) Webhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to read webhook body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	signature := c.GetHeader("X-Razorpay-Signature")
	if signature == "" || !pc.Gateway.VerifyWebhookSignature(string(body), signature, pc.WebhookSecret) {
		logger.WarnLogger.Warn("Rejected webhook with missing or invalid signature")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		logger.ErrorLogger.Errorf("Invalid webhook payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if event.Event != "payment.captured" {
		logger.InfoLogger.Infof("Ignoring webhook event type %s", event.Event)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	entity := event.Payload.Payment.Entity
	bookingID, err := uuid.Parse(entity.Notes.BookingID)
	if err != nil {
		logger.ErrorLogger.Errorf("Webhook payment %s carries no usable booking id: %v", entity.ID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing booking reference"})
		return
	}

	mode := payment_models.ModeOther
	switch entity.Method {
	case "card":
		mode = payment_models.ModeCard
	case "upi":
		mode = payment_models.ModeUPI
	}

	payment, err := payment_models.NewPayment(bookingID, mode, float64(entity.Amount)/100, time.Time{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build payment"})
		return
	}

	recorded, err := payment_models.RecordPayment(c.Request.Context(), pc.DB, payment)
	if err != nil {
		switch {
		case errors.Is(err, booking_models.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, billing.ErrOverpayment):
			// The gateway captured more than the desk still owes,
			// usually a duplicate delivery. Acknowledge so the
			// gateway stops retrying, and leave it to the desk.
			logger.WarnLogger.Warnf("Captured payment %s exceeds balance of booking %s", entity.ID, bookingID)
			c.JSON(http.StatusOK, gin.H{"status": "overpayment ignored"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record payment"})
		}
		return
	}

	logger.InfoLogger.Infof("Gateway payment %s recorded for booking %s, balance now %.2f", entity.ID, bookingID, recorded.BalanceAmount)
	c.JSON(http.StatusOK, gin.H{"status": "recorded", "payment_id": recorded.ID})
}
