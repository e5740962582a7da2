package rule

import (
	"net/http"

	ruleerrors "go-integration/internal/rule/errors"
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
	l := zap.L().Named("rule.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rule.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("rule request failed",
		zap.String("request_id", contextutil.GetRequestID(c.Request.Context())),
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	rule, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, rule, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	rules, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rules, &response.ListMeta{Total: len(rules)})
}

func (h *Handler) GetByID(c *gin.Context) {
	rule, ok, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if !ok {
		h.writeServiceError(c, ruleerrors.ErrRuleNotFound)
		return
	}

	response.Success(c, http.StatusOK, rule, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	rule, ok, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if !ok {
		h.writeServiceError(c, ruleerrors.ErrRuleNotFound)
		return
	}

	response.Success(c, http.StatusOK, rule, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	ok, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if !ok {
		h.writeServiceError(c, ruleerrors.ErrRuleNotFound)
		return
	}

	c.Status(http.StatusNoContent)
}
