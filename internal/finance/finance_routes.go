package finance

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	finance := r.Group("/finance")
	{
		finance.GET("/transactions", handler.GetTransactions)
	}
}
