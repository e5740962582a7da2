package financeerrors

import (
	"net/http"

	"go-integration/internal/shared/apperror"
)

var (
	ErrInvalidTransactionType = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid transaction type",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Transaction amount must not be negative",
		http.StatusBadRequest,
	)
)
