package room_controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjunkmr/hoteldesk/logger"
	"github.com/arjunkmr/hoteldesk/models/room_models"
)

// RoomController holds dependencies for room CRUD operations.
type RoomController struct {
	DB *pgxpool.Pool
}

// NewRoomController creates a new instance of RoomController.
func NewRoomController(db *pgxpool.Pool) *RoomController {
	return &RoomController{DB: db}
}

type roomRequest struct {
	RoomNumber    string  `json:"room_number" binding:"required"`
	RoomType      string  `json:"room_type" binding:"required"`
	PricePerNight float64 `json:"price_per_night" binding:"required,gte=0"`
	Status        string  `json:"status" binding:"omitempty,oneof=Available Occupied Maintenance"`
}

// CreateRoom adds a room to the inventory.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := room_models.NewRoom(req.RoomNumber, req.RoomType, req.PricePerNight, req.Status)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to build room: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create room"})
		return
	}

	created, err := room_models.CreateRoom(c.Request.Context(), rc.DB, room)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create room"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetRooms lists the full room inventory.
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := room_models.GetAllRooms(c.Request.Context(), rc.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rooms"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetAvailableRooms lists rooms free over the requested date range. Dates
// come in as /available/:checkIn/:checkOut in YYYY-MM-DD form.
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	checkIn, err := time.Parse("2006-01-02", c.Param("checkIn"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check-in date, expected YYYY-MM-DD"})
		return
	}
	checkOut, err := time.Parse("2006-01-02", c.Param("checkOut"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check-out date, expected YYYY-MM-DD"})
		return
	}
	if !checkOut.After(checkIn) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Check-out date must be after check-in date"})
		return
	}

	rooms, err := room_models.GetAvailableRooms(c.Request.Context(), rc.DB, checkIn, checkOut)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch available rooms"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// UpdateRoom rewrites a room's details or status.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = room_models.StatusAvailable
	}

	room := &room_models.Room{
		ID:            id,
		RoomNumber:    req.RoomNumber,
		RoomType:      req.RoomType,
		PricePerNight: req.PricePerNight,
		Status:        req.Status,
	}

	if err := room_models.UpdateRoom(c.Request.Context(), rc.DB, room); err != nil {
		if errors.Is(err, room_models.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room updated successfully"})
}

// DeleteRoom removes a room from the inventory.
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	if err := room_models.DeleteRoom(c.Request.Context(), rc.DB, id); err != nil {
		if errors.Is(err, room_models.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}
