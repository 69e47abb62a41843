package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arjunkmr/hoteldesk/config/db"
	"github.com/arjunkmr/hoteldesk/controllers/room_controller"
	"github.com/arjunkmr/hoteldesk/middlewares/auth"
)

func RegisterRoomRoutes(router *gin.Engine) {
	roomController := room_controller.NewRoomController(db.DB)

	router.GET("/api/rooms", roomController.GetRooms)
	router.GET("/api/rooms/available/:checkIn/:checkOut", roomController.GetAvailableRooms)

	protected := router.Group("/api")
	protected.Use(auth.AuthMiddleware())
	{
		protected.POST("/rooms", roomController.CreateRoom)
		protected.PUT("/rooms/:id", roomController.UpdateRoom)
		protected.DELETE("/rooms/:id", roomController.DeleteRoom)
	}
}
