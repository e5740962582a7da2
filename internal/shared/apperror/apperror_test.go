package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"go-integration/internal/shared/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		httpErr := apperror.ToHTTP(apperror.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, apperror.CodeNotFound, httpErr.Code)
		assert.Nil(t, httpErr.Details)
	})

	t.Run("wrapped app error keeps cause as details", func(t *testing.T) {
		err := apperror.Wrap(errors.New("boom"), apperror.CodeConflict, "conflict", http.StatusConflict)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, "boom", httpErr.Details)
	})

	t.Run("plain error is internal", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("db down"))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "db down")
	})
}

func TestIs(t *testing.T) {
	assert.True(t, apperror.Is(apperror.ErrInvalidModule, apperror.CodeInvalidInput))
	assert.False(t, apperror.Is(errors.New("x"), apperror.CodeInvalidInput))
}

func TestRequiredField(t *testing.T) {
	err := apperror.RequiredField("Employee Id")
	assert.Equal(t, "Employee Id is required", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
}

func TestMapValidationError_UsesRequestFieldNames(t *testing.T) {
	apperror.Init()
	apperror.Init()

	type payload struct {
		RequiredSkills []string `json:"required_skills" binding:"required"`
	}
	type query struct {
		Status string `form:"expense_status" binding:"required"`
	}

	tests := []struct {
		name string
		obj  any
		want string
	}{
		{"json body", &payload{}, "Required Skills is required"},
		{"query string", &query{}, "Expense Status is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apperror.MapValidationError(binding.Validator.ValidateStruct(tt.obj))

			var appErr *apperror.AppError
			if assert.True(t, errors.As(err, &appErr)) {
				assert.Equal(t, tt.want, appErr.Message)
				assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
			}
		})
	}
}
