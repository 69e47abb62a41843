package payment_controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewPaymentController(nil)
	r.POST("/payments", controller.RecordPayment)
	r.GET("/payments/:bookingId", controller.GetPaymentsByBooking)
	r.DELETE("/payments/:paymentId", controller.DeletePayment)
	return r
}

func TestRecordPaymentValidation(t *testing.T) {
	r := newTestRouter()

	t.Run("MissingBookingID", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{
			"payment_mode": "Cash",
			"amount_paid":  500,
		})
		req, _ := http.NewRequest("POST", "/payments", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("MalformedBookingID", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{
			"booking_id":   "not-a-uuid",
			"payment_mode": "Cash",
			"amount_paid":  500,
		})
		req, _ := http.NewRequest("POST", "/payments", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UnknownPaymentMode", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{
			"booking_id":   "0190e2a6-155e-7e40-b1c1-6a7cf9a3a000",
			"payment_mode": "Cheque",
			"amount_paid":  500,
		})
		req, _ := http.NewRequest("POST", "/payments", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPaymentIDValidation(t *testing.T) {
	r := newTestRouter()

	t.Run("ListWithMalformedBookingID", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/payments/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("DeleteWithMalformedPaymentID", func(t *testing.T) {
		req, _ := http.NewRequest("DELETE", "/payments/123", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
