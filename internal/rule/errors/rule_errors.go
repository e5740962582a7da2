package ruleerrors

import (
	"net/http"

	"go-integration/internal/shared/apperror"
)

var (
	ErrRuleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Integration rule not found",
		http.StatusNotFound,
	)
	ErrRuleNameExists = apperror.New(
		apperror.CodeConflict,
		"An integration rule with the same name already exists",
		http.StatusConflict,
	)
	ErrInvalidOperator = apperror.New(
		apperror.CodeInvalidInput,
		"Unsupported condition operator",
		http.StatusBadRequest,
	)
	ErrInvalidActionType = apperror.New(
		apperror.CodeInvalidInput,
		"Unsupported action type",
		http.StatusBadRequest,
	)
	ErrInvalidSeedFile = apperror.New(
		apperror.CodeInvalidInput,
		"Rule seed file is invalid",
		http.StatusBadRequest,
	)
)
