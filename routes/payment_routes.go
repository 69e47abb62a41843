package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arjunkmr/hoteldesk/config/db"
	"github.com/arjunkmr/hoteldesk/controllers/payment_controller"
	"github.com/arjunkmr/hoteldesk/controllers/payment_order_controller"
	middleware "github.com/arjunkmr/hoteldesk/middlewares"
	"github.com/arjunkmr/hoteldesk/middlewares/auth"
)

func RegisterPaymentRoutes(router *gin.Engine) {
	paymentController := payment_controller.NewPaymentController(db.DB)

	router.GET("/payments/:bookingId", paymentController.GetPaymentsByBooking)
	router.GET("/api/payments/:bookingId/receipt", paymentController.GetReceipt)

	protected := router.Group("/")
	protected.Use(auth.AuthMiddleware())
	{
		protected.POST("/payments",
			middleware.NewRateLimiter("30-1m", "recordPayment"),
			paymentController.RecordPayment)
		protected.DELETE("/payments/:paymentId", paymentController.DeletePayment)
	}

	// Online collection is optional; without gateway credentials the desk
	// is cash-only.
	if orderController := payment_order_controller.NewPaymentOrderController(db.DB); orderController != nil {
		protected.POST("/api/payment-orders", orderController.CreateOrder)
		router.POST("/api/payment-orders/webhook", orderController.Webhook)
	}
}
