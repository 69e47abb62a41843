package booking_controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewBookingController(nil)
	r.POST("/api/bookings", controller.CreateBooking)
	r.GET("/api/bookings/:id", controller.GetBooking)
	r.PATCH("/api/bookings/:id/status", controller.UpdateBookingStatus)
	return r
}

func postBooking(r *gin.Engine, payload map[string]interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/api/bookings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingValidation(t *testing.T) {
	r := newTestRouter()
	customerID := uuid.New().String()
	roomID := uuid.New().String()

	t.Run("MissingDates", func(t *testing.T) {
		w := postBooking(r, map[string]interface{}{
			"customer_id": customerID,
			"room_id":     roomID,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("MalformedDates", func(t *testing.T) {
		w := postBooking(r, map[string]interface{}{
			"customer_id":    customerID,
			"room_id":        roomID,
			"check_in_date":  "10/03/2025",
			"check_out_date": "13/03/2025",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("CheckOutBeforeCheckIn", func(t *testing.T) {
		w := postBooking(r, map[string]interface{}{
			"customer_id":    customerID,
			"room_id":        roomID,
			"check_in_date":  "2025-03-13",
			"check_out_date": "2025-03-10",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ZeroNightStay", func(t *testing.T) {
		w := postBooking(r, map[string]interface{}{
			"customer_id":    customerID,
			"room_id":        roomID,
			"check_in_date":  "2025-03-10",
			"check_out_date": "2025-03-10",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("MalformedCustomerID", func(t *testing.T) {
		w := postBooking(r, map[string]interface{}{
			"customer_id":    "42",
			"room_id":        roomID,
			"check_in_date":  "2025-03-10",
			"check_out_date": "2025-03-13",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateBookingStatusValidation(t *testing.T) {
	r := newTestRouter()
	id := uuid.New().String()

	t.Run("UnknownStatus", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{"booking_status": "Archived"})
		req, _ := http.NewRequest("PATCH", "/api/bookings/"+id+"/status", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("MalformedID", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{"booking_status": "Completed"})
		req, _ := http.NewRequest("PATCH", "/api/bookings/nope/status", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetBookingIDValidation(t *testing.T) {
	r := newTestRouter()

	req, _ := http.NewRequest("GET", "/api/bookings/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
