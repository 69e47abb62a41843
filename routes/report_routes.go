package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arjunkmr/hoteldesk/config/db"
	"github.com/arjunkmr/hoteldesk/controllers/report_controller"
)

func RegisterReportRoutes(router *gin.Engine) {
	reportController := report_controller.NewReportController(db.DB)

	reports := router.Group("/api/reports")
	{
		reports.GET("/revenue", reportController.GetRevenueSummary)
		reports.GET("/occupancy", reportController.GetOccupancy)
		reports.GET("/room-type-revenue", reportController.GetRoomTypeRevenue)
	}
}
