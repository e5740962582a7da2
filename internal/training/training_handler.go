package training

import (
	"net/http"

	"go-integration/internal/events"
	"go-integration/internal/shared/apperror"
	"go-integration/internal/shared/contextutil"
	"go-integration/internal/shared/response"
	trainingerrors "go-integration/internal/training/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("training.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("training.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("training request failed",
		zap.String("request_id", contextutil.GetRequestID(c.Request.Context())),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) TriggerOnboarding(c *gin.Context) {
	var req events.EmployeeOnboardingEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	assignments, err := h.service.TriggerOnboarding(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, OnboardingResponse{
		EmployeeID:  req.EmployeeID,
		Assignments: assignments,
	}, &response.ListMeta{Total: len(assignments)})
}

func (h *Handler) GetAssignments(c *gin.Context) {
	assignments, err := h.service.GetAssignments(c.Request.Context(), c.Query("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, assignments, &response.ListMeta{Total: len(assignments)})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, trainingerrors.ErrInvalidStatus)
		return
	}

	ok, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), Status(req.Status))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if !ok {
		h.writeServiceError(c, trainingerrors.ErrAssignmentNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id"), "status": req.Status}, nil)
}
