package eventbus

import (
	"net/http"
	"strconv"

	"go-integration/internal/domain"
	eventbuserrors "go-integration/internal/eventbus/errors"
	"go-integration/internal/shared/apperror"
	"go-integration/internal/shared/contextutil"
	"go-integration/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	bus    Bus
	logger *zap.Logger
}

func NewHandler(bus Bus, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("eventbus.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("eventbus.handler")
	}
	return &Handler{bus: bus, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("eventbus request failed",
		zap.String("request_id", contextutil.GetRequestID(c.Request.Context())),
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Publish(c *gin.Context) {
	var req PublishEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	draft := req.toDraft()
	if draft.Metadata.UserID == "" {
		draft.Metadata.UserID = c.GetString("user_id")
	}
	if draft.Metadata.TenantID == "" {
		draft.Metadata.TenantID = c.GetString("tenant_id")
	}

	id, err := h.bus.Publish(c.Request.Context(), draft)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, PublishEventResponse{ID: id}, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	event, ok := h.bus.GetEvent(c.Param("id"))
	if !ok {
		h.writeError(c, eventbuserrors.ErrEventNotFound)
		return
	}

	response.Success(c, http.StatusOK, event, nil)
}

func (h *Handler) GetByModule(c *gin.Context) {
	module, ok := domain.ParseModule(c.Query("module"))
	if !ok {
		h.writeError(c, apperror.ErrInvalidModule)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultModuleLimit)))
	if limit < 1 {
		limit = DefaultModuleLimit
	}

	events := h.bus.GetEventsByModule(module, limit)
	response.Success(c, http.StatusOK, events, &response.ListMeta{Total: len(events), Limit: limit})
}

func (h *Handler) GetQueue(c *gin.Context) {
	queue := h.bus.GetEventQueue()
	response.Success(c, http.StatusOK, queue, &response.ListMeta{Total: len(queue)})
}

func (h *Handler) GetStats(c *gin.Context) {
	response.Success(c, http.StatusOK, h.bus.Stats(), nil)
}
