package payroll

import (
	"fmt"
	"net/http"

	"go-integration/internal/events"
	payrollerrors "go-integration/internal/payroll/errors"
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
	l := zap.L().Named("payroll.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payroll request failed",
		zap.String("request_id", contextutil.GetRequestID(c.Request.Context())),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) SyncSalary(c *gin.Context) {
	var req events.SalaryChangeEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	entry, err := h.service.SyncSalary(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, SalarySyncResponse{Entry: entry}, nil)
}

func (h *Handler) GetEntries(c *gin.Context) {
	entries, err := h.service.GetEntries(c.Request.Context(), c.Query("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, entries, &response.ListMeta{Total: len(entries)})
}

func (h *Handler) DownloadPayslip(c *gin.Context) {
	entry, ok, err := h.service.GetEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if !ok {
		h.writeServiceError(c, payrollerrors.ErrPayrollEntryNotFound)
		return
	}

	pdf, err := renderPayslipPDF(entry)
	if err != nil {
		h.writeServiceError(c, payrollerrors.ErrPayslipGeneration)
		return
	}

	filename := fmt.Sprintf("payslip-%s-%d-%02d.pdf", entry.EmployeeID, entry.Period.Year, entry.Period.Month)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
