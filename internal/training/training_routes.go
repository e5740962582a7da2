package training

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/workflows/onboarding", handler.TriggerOnboarding)

	trainings := r.Group("/trainings")
	{
		trainings.GET("", handler.GetAssignments)
		trainings.PATCH("/:id/status", handler.UpdateStatus)
	}
}
