package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arjunkmr/hoteldesk/config/db"
	"github.com/arjunkmr/hoteldesk/controllers/staff_controller"
	middleware "github.com/arjunkmr/hoteldesk/middlewares"
	"github.com/arjunkmr/hoteldesk/middlewares/auth"
)

func RegisterStaffRoutes(router *gin.Engine) {
	staffController := staff_controller.NewStaffController(db.DB)

	router.POST("/auth/register", staffController.Register)
	router.POST("/auth/login",
		middleware.NewRateLimiter("10-2m", "staffLogin"),
		staffController.Login)
	router.GET("/auth/me", auth.AuthMiddleware(), staffController.Me)
}
