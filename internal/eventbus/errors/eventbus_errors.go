package eventbuserrors

import (
	"net/http"

	"go-integration/internal/shared/apperror"
)

var (
	ErrEventNotFound = apperror.New(
		apperror.CodeNotFound,
		"Event not found",
		http.StatusNotFound,
	)
	ErrEventTypeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Event type is required",
		http.StatusBadRequest,
	)
	ErrInvalidSourceModule = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid source module",
		http.StatusBadRequest,
	)
	ErrInvalidTargetModule = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid target module",
		http.StatusBadRequest,
	)
	ErrInvalidPriority = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid event priority",
		http.StatusBadRequest,
	)
)
