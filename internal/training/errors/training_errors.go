package trainingerrors

import (
	"net/http"

	"go-integration/internal/shared/apperror"
)

var (
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Training assignment not found",
		http.StatusNotFound,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid training status",
		http.StatusBadRequest,
	)
)
