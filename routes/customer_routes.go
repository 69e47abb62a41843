package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arjunkmr/hoteldesk/config/db"
	"github.com/arjunkmr/hoteldesk/controllers/customer_controller"
	"github.com/arjunkmr/hoteldesk/middlewares/auth"
)

func RegisterCustomerRoutes(router *gin.Engine) {
	customerController := customer_controller.NewCustomerController(db.DB)

	router.GET("/customers", customerController.GetCustomers)
	router.GET("/customers/:id", customerController.GetCustomer)

	protected := router.Group("/")
	protected.Use(auth.AuthMiddleware())
	{
		protected.POST("/customers", customerController.CreateCustomer)
		protected.PUT("/customers/:id", customerController.UpdateCustomer)
		protected.DELETE("/customers/:id", customerController.DeleteCustomer)
	}
}
