package competency

import (
	"net/http"

	"go-integration/internal/events"
	"go-integration/internal/shared/apperror"
	"go-integration/internal/shared/contextutil"
	"go-integration/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("competency.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("competency.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("competency request failed",
		zap.String("request_id", contextutil.GetRequestID(c.Request.Context())),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ProcessCourseCompletion(c *gin.Context) {
	var req events.CourseCompletionEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	updates, err := h.service.ProcessCourseCompletion(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, updates, &response.ListMeta{Total: len(updates)})
}

func (h *Handler) GetMatrix(c *gin.Context) {
	matrix, err := h.service.GetMatrix(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, matrix, &response.ListMeta{Total: len(matrix)})
}

func (h *Handler) GetHistory(c *gin.Context) {
	updates, err := h.service.GetUpdates(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updates, &response.ListMeta{Total: len(updates)})
}
