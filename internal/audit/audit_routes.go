package audit

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	audit := r.Group("/audit")
	{
		audit.GET("", handler.GetTrail)
		audit.GET("/summary", handler.GetSummary)
	}
}
