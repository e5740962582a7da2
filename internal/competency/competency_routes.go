package competency

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/workflows/course-completion", handler.ProcessCourseCompletion)

	competencies := r.Group("/competencies")
	{
		competencies.GET("/:employee_id", handler.GetMatrix)
		competencies.GET("/:employee_id/history", handler.GetHistory)
	}
}
