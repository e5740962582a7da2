package logistics

import (
	"net/http"

	logisticserrors "go-integration/internal/logistics/errors"
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
	l := zap.L().Named("logistics.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("logistics.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("logistics request failed",
		zap.String("request_id", contextutil.GetRequestID(c.Request.Context())),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) RecordExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	expense, tx, err := h.service.RecordExpense(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, RecordExpenseResponse{Expense: expense, TransactionID: tx.ID}, nil)
}

func (h *Handler) GetExpenses(c *gin.Context) {
	var q ExpenseQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	filter, err := q.toFilter()
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	list, err := h.service.GetExpenses(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, list, &response.ListMeta{Total: len(list)})
}

// ApproveExpense falls back to the authenticated user when the body names no
// approver.
func (h *Handler) ApproveExpense(c *gin.Context) {
	var req ApproveExpenseRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
	}
	ctx := c.Request.Context()
	if req.ApprovedBy == "" {
		req.ApprovedBy = contextutil.GetUserID(ctx)
	}

	id := c.Param("id")
	ok, err := h.service.ApproveExpense(ctx, id, req.ApprovedBy)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	expense, found, err := h.service.GetExpense(ctx, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if !found {
		h.writeServiceError(c, logisticserrors.ErrExpenseNotFound)
		return
	}
	if !ok {
		h.writeServiceError(c, logisticserrors.ErrExpenseNotPending)
		return
	}

	response.Success(c, http.StatusOK, expense, nil)
}

func (h *Handler) RecordInventoryCostUpdate(c *gin.Context) {
	var req CreateCostUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	update, tx, err := h.service.RecordInventoryCostUpdate(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	res := RecordCostUpdateResponse{Update: update}
	if tx != nil {
		res.TransactionID = tx.ID
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) GetInventoryCostUpdates(c *gin.Context) {
	list, err := h.service.GetInventoryCostUpdates(c.Request.Context(), c.Query("item_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, list, &response.ListMeta{Total: len(list)})
}

func (h *Handler) GetFinanceSummary(c *gin.Context) {
	summary, err := h.service.GetFinanceSummary(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, summary, nil)
}
