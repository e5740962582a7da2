package payroll

import (
	"time"

	"go-integration/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb ...*redis.Client) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	if redisClient != nil {
		r.POST("/workflows/salary-change",
			middleware.Idempotency(redisClient, 24*time.Hour),
			handler.SyncSalary,
		)
	} else {
		r.POST("/workflows/salary-change", handler.SyncSalary)
	}

	entries := r.Group("/payroll/entries")
	{
		entries.GET("", handler.GetEntries)
		entries.GET("/:id/payslip", handler.DownloadPayslip)
	}
}
