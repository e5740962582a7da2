package logistics

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	logistics := r.Group("/logistics")
	{
		logistics.POST("/expenses", handler.RecordExpense)
		logistics.GET("/expenses", handler.GetExpenses)
		logistics.POST("/expenses/:id/approve", handler.ApproveExpense)
		logistics.POST("/inventory-costs", handler.RecordInventoryCostUpdate)
		logistics.GET("/inventory-costs", handler.GetInventoryCostUpdates)
		logistics.GET("/finance-summary", handler.GetFinanceSummary)
	}
}
