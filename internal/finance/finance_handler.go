package finance

import (
	"net/http"

	"go-integration/internal/domain"
	"go-integration/internal/shared/apperror"
	"go-integration/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("finance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("finance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("finance request failed", zap.String("path", c.FullPath()), zap.Error(err))
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetTransactions(c *gin.Context) {
	var module domain.Module
	if v := c.Query("module"); v != "" {
		m, ok := domain.ParseModule(v)
		if !ok {
			h.writeServiceError(c, apperror.ErrInvalidModule)
			return
		}
		module = m
	}

	txs, err := h.service.GetTransactions(c.Request.Context(), module)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, txs, &response.ListMeta{Total: len(txs)})
}
