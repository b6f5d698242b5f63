package api

import (
	"encoding/json"
	"net/http"

	"github.com/nhalm/canonlog"
)

func renderJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func renderError(w http.ResponseWriter, r *http.Request, statusCode int, err error, code, message, param string) {
	canonlog.AddRequestError(r.Context(), err)
	sanitizedMessage := sanitizeErrorMessage(message, statusCode)
	renderJSON(w, statusCode, NewErrorResponse(statusCode, code, sanitizedMessage, param))
}

// sanitizeErrorMessage hides server-side details such as SQL errors.
// Client errors carry messages written by the service layer and pass
// through verbatim.
func sanitizeErrorMessage(message string, statusCode int) string {
	switch {
	case statusCode < 500:
		return message
	case statusCode == http.StatusGatewayTimeout:
		return "The request timed out"
	default:
		return "An internal error occurred"
	}
}

func Success(w http.ResponseWriter, data any) {
	renderJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	renderJSON(w, http.StatusCreated, data)
}
