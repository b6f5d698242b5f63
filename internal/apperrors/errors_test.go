package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	messages := []string{"meal 42 not found", "", "database row missing", "No meals found for the date 2024-06-05"}

	for _, m := range messages {
		err := NewNotFoundError(m)
		assert.Equal(t, http.StatusNotFound, err.StatusCode())
		assert.Equal(t, m, err.Error())
		assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
	}
}

func TestNotFoundf(t *testing.T) {
	err := NotFoundf("meal %d not found", 42)
	assert.Equal(t, "meal 42 not found", err.Error())
	assert.Equal(t, http.StatusNotFound, err.StatusCode())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"not found", NewNotFoundError("x"), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", NewNotFoundError("x")), http.StatusNotFound},
		{"validation", NewValidationError("date", "bad"), http.StatusBadRequest},
		{"unauthorized", NewUnauthorizedError("Invalid secret key"), http.StatusUnauthorized},
		{"conflict", NewConflictError("meal", "exists"), http.StatusConflict},
		{"timeout", NewTimeoutError("list meals"), http.StatusGatewayTimeout},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "date: bad", NewValidationError("date", "bad").Error())
	assert.Equal(t, "bad", NewValidationError("", "bad").Error())
	assert.Equal(t, "unauthorized", NewUnauthorizedError("").Error())
	assert.Equal(t, "Meal already exists for the date", NewConflictError("meal", "Meal already exists for the date").Error())
	assert.Equal(t, "meal conflict", NewConflictError("meal", "").Error())
	assert.Equal(t, "operation timed out: list", NewTimeoutError("list").Error())
}
