package report_controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	redisclient "github.com/arjunkmr/hoteldesk/config/redis"
	"github.com/arjunkmr/hoteldesk/logger"
	"github.com/arjunkmr/hoteldesk/models/report_models"
)

// Dashboard numbers only need to be fresh to the minute.
const reportCacheTTL = 60 * time.Second

// ReportController holds dependencies for the dashboard report queries.
type ReportController struct {
	DB *pgxpool.Pool
}

// NewReportController creates a new instance of ReportController.
func NewReportController(db *pgxpool.Pool) *ReportController {
	return &ReportController{DB: db}
}

// GetRevenueSummary serves the dashboard headline counters.
func (rc *ReportController) GetRevenueSummary(c *gin.Context) {
	serveCached(c, "report:revenue", func() (interface{}, error) {
		return report_models.GetRevenueSummary(c.Request.Context(), rc.DB)
	})
}

// GetOccupancy serves room counts and current occupancy per room type.
func (rc *ReportController) GetOccupancy(c *gin.Context) {
	serveCached(c, "report:occupancy", func() (interface{}, error) {
		return report_models.GetOccupancyByRoomType(c.Request.Context(), rc.DB)
	})
}

// GetRoomTypeRevenue serves booked revenue per room type.
func (rc *ReportController) GetRoomTypeRevenue(c *gin.Context) {
	serveCached(c, "report:room_type_revenue", func() (interface{}, error) {
		return report_models.GetRevenueByRoomType(c.Request.Context(), rc.DB)
	})
}

// serveCached answers from Redis when the report is cached, otherwise
// computes it and caches the result. A missing Redis just means every
// request recomputes.
func serveCached(c *gin.Context, key string, compute func() (interface{}, error)) {
	ctx := c.Request.Context()

	rdb, redisErr := redisclient.GetRedisClient(ctx)
	if redisErr == nil {
		if cached, err := rdb.Get(ctx, key).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	report, err := compute()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute report"})
		return
	}

	if redisErr == nil {
		if payload, err := json.Marshal(report); err == nil {
			if err := rdb.Set(ctx, key, payload, reportCacheTTL).Err(); err != nil {
				logger.WarnLogger.Warnf("Failed to cache report %s: %v", key, err)
			}
		}
	}

	c.JSON(http.StatusOK, report)
}
