package payrollerrors

import (
	"net/http"

	"go-integration/internal/shared/apperror"
)

var (
	ErrPayrollEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll entry not found",
		http.StatusNotFound,
	)
	ErrInvalidSalary = apperror.New(
		apperror.CodeInvalidInput,
		"New salary must be greater than zero",
		http.StatusBadRequest,
	)
	ErrPayslipGeneration = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate payslip",
		http.StatusInternalServerError,
	)
)
