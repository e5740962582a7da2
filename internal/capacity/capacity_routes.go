package capacity

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	freelancers := r.Group("/freelancers/availability")
	{
		freelancers.POST("", handler.RegisterAvailability)
		freelancers.GET("", handler.GetAvailability)
	}

	requests := r.Group("/capacity-requests")
	{
		requests.POST("", handler.CreateRequest)
		requests.GET("", handler.GetRequests)
		requests.GET("/:id", handler.GetRequest)
		requests.POST("/:id/confirm", handler.ConfirmAssignment)
		requests.POST("/:id/close", handler.CloseUnfulfilled)
	}
}
