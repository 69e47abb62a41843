package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arjunkmr/hoteldesk/config/db"
	"github.com/arjunkmr/hoteldesk/controllers/booking_controller"
	"github.com/arjunkmr/hoteldesk/middlewares/auth"
)

func RegisterBookingRoutes(router *gin.Engine) {
	bookingController := booking_controller.NewBookingController(db.DB)

	router.GET("/api/bookings", bookingController.GetBookings)
	router.GET("/api/bookings/:id", bookingController.GetBooking)

	protected := router.Group("/api")
	protected.Use(auth.AuthMiddleware())
	{
		protected.POST("/bookings", bookingController.CreateBooking)
		protected.PUT("/bookings/:id", bookingController.UpdateBooking)
		protected.PATCH("/bookings/:id/status", bookingController.UpdateBookingStatus)
		protected.DELETE("/bookings/:id", bookingController.DeleteBooking)
	}
}
