package capacityerrors

import (
	"net/http"

	"go-integration/internal/shared/apperror"
)

var (
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Capacity request not found",
		http.StatusNotFound,
	)
	ErrFreelancerNotMatched = apperror.New(
		apperror.CodeInvalidState,
		"Freelancer is not among the matched candidates",
		http.StatusConflict,
	)
	ErrRequestNotOpen = apperror.New(
		apperror.CodeInvalidState,
		"Only open capacity requests can be closed",
		http.StatusConflict,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid capacity request status",
		http.StatusBadRequest,
	)
)
