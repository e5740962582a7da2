package dashboard

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	metrics := r.Group("/dashboard/metrics")
	{
		metrics.POST("", handler.Aggregate)
		metrics.GET("/latest", handler.GetLatest)
		metrics.GET("/history", handler.GetHistory)
	}

	r.GET("/status", handler.Status)
}
