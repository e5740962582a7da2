package capacity

import (
	"net/http"

	capacityerrors "go-integration/internal/capacity/errors"
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
	l := zap.L().Named("capacity.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("capacity.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("capacity request failed",
		zap.String("request_id", contextutil.GetRequestID(c.Request.Context())),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) RegisterAvailability(c *gin.Context) {
	var req Availability
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	a, err := h.service.RegisterAvailability(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, a, nil)
}

func (h *Handler) GetAvailability(c *gin.Context) {
	list, err := h.service.GetAvailability(c.Request.Context(), c.Query("freelancer_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, list, &response.ListMeta{Total: len(list)})
}

func (h *Handler) CreateRequest(c *gin.Context) {
	var req CreateRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	created, err := h.service.CreateRequest(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created, nil)
}

func (h *Handler) GetRequests(c *gin.Context) {
	var q RequestQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if q.Status != "" && !q.Status.Valid() {
		h.writeServiceError(c, capacityerrors.ErrInvalidStatus)
		return
	}

	list, err := h.service.GetRequests(c.Request.Context(), q.Status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, list, &response.ListMeta{Total: len(list)})
}

func (h *Handler) GetRequest(c *gin.Context) {
	req, ok, err := h.service.GetRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if !ok {
		h.writeServiceError(c, capacityerrors.ErrRequestNotFound)
		return
	}

	response.Success(c, http.StatusOK, req, nil)
}

func (h *Handler) ConfirmAssignment(c *gin.Context) {
	var body ConfirmRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")

	ok, err := h.service.ConfirmAssignment(ctx, id, body.FreelancerID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if !ok {
		h.writeServiceError(c, h.explainRejection(c, id))
		return
	}

	req, _, _ := h.service.GetRequest(ctx, id)
	response.Success(c, http.StatusOK, req, nil)
}

func (h *Handler) CloseUnfulfilled(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	ok, err := h.service.CloseUnfulfilled(ctx, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if !ok {
		if _, found, _ := h.service.GetRequest(ctx, id); !found {
			h.writeServiceError(c, capacityerrors.ErrRequestNotFound)
			return
		}
		h.writeServiceError(c, capacityerrors.ErrRequestNotOpen)
		return
	}

	req, _, _ := h.service.GetRequest(ctx, id)
	response.Success(c, http.StatusOK, req, nil)
}

func (h *Handler) explainRejection(c *gin.Context, id string) error {
	if _, found, _ := h.service.GetRequest(c.Request.Context(), id); !found {
		return capacityerrors.ErrRequestNotFound
	}
	return capacityerrors.ErrFreelancerNotMatched
}
