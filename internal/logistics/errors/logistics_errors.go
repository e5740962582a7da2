package logisticserrors

import (
	"net/http"

	"go-integration/internal/shared/apperror"
)

var (
	ErrExpenseNotFound = apperror.New(
		apperror.CodeNotFound,
		"Logistics expense not found",
		http.StatusNotFound,
	)
	ErrExpenseNotPending = apperror.New(
		apperror.CodeInvalidState,
		"Only pending expenses can be approved",
		http.StatusConflict,
	)
	ErrInvalidExpenseType = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid expense type",
		http.StatusBadRequest,
	)
	ErrInvalidMovementType = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid inventory movement type",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Dates must be RFC3339 or YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrApproverRequired = apperror.New(
		apperror.CodeInvalidInput,
		"approved_by is required",
		http.StatusBadRequest,
	)
)
