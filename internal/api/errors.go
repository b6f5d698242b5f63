package api

import (
	"errors"
	"net/http"

	"github.com/sunrintoday/mealapi/internal/apperrors"
)

// handleServiceError is the boundary that turns any handler error into an
// HTTP response. The status comes from apperrors.HTTPStatus.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		renderError(w, r, status, err, "validation_error", validationErr.Message, validationErr.Field)
		return
	}

	renderError(w, r, status, err, errorCode(status), err.Error(), "")
}

func errorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusGatewayTimeout:
		return "timeout"
	default:
		return "internal_error"
	}
}
