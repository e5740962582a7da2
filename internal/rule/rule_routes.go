package rule

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	rules := r.Group("/rules")
	{
		rules.GET("", handler.GetAll)
		rules.POST("", handler.Create)
		rules.GET("/:id", handler.GetByID)
		rules.PUT("/:id", handler.Update)
		rules.DELETE("/:id", handler.Delete)
	}
}
