package auditerrors

import (
	"net/http"

	"go-integration/internal/shared/apperror"
)

var (
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must not be after end_date",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Dates must be RFC3339 or YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
