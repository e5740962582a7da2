package dashboard

import (
	"net/http"
	"strconv"

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
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("dashboard request failed",
		zap.String("request_id", contextutil.GetRequestID(c.Request.Context())),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Aggregate(c *gin.Context) {
	m, err := h.service.Aggregate(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, m, nil)
}

func (h *Handler) GetLatest(c *gin.Context) {
	m, err := h.service.GetLatest(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, m, nil)
}

func (h *Handler) GetHistory(c *gin.Context) {
	limit := DefaultHistoryQuery
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.writeServiceError(c, apperror.InvalidField("limit"))
			return
		}
		limit = n
	}

	list := h.service.GetHistory(limit)
	response.Success(c, http.StatusOK, list, &response.ListMeta{Total: len(list), Limit: limit})
}

func (h *Handler) Status(c *gin.Context) {
	st, err := h.service.Status(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, st, nil)
}
