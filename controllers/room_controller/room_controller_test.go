package room_controller

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
	controller := NewRoomController(nil)
	r.POST("/api/rooms", controller.CreateRoom)
	r.GET("/api/rooms/available/:checkIn/:checkOut", controller.GetAvailableRooms)
	return r
}

func TestCreateRoomValidation(t *testing.T) {
	r := newTestRouter()

	t.Run("MissingRoomNumber", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{
			"room_type":       "Deluxe",
			"price_per_night": 2000,
		})
		req, _ := http.NewRequest("POST", "/api/rooms", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{
			"room_number":     "101",
			"room_type":       "Deluxe",
			"price_per_night": 2000,
			"status":          "Closed",
		})
		req, _ := http.NewRequest("POST", "/api/rooms", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAvailableRoomsDateValidation(t *testing.T) {
	r := newTestRouter()

	t.Run("MalformedCheckIn", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/rooms/available/10-03-2025/2025-03-13", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("CheckOutNotAfterCheckIn", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/rooms/available/2025-03-13/2025-03-13", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
