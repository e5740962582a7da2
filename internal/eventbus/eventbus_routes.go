package eventbus

import (
	"go-integration/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	events := r.Group("/events")
	{
		events.GET("", handler.GetByModule)
		events.GET("/queue", handler.GetQueue)
		events.GET("/stats", handler.GetStats)
		events.GET("/:id", handler.GetByID)
		events.POST("",
			middleware.RateLimitByIP(20, 40),
			handler.Publish,
		)
	}
}
