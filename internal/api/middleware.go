package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/sunrintoday/mealapi/internal/apperrors"
)

const headerAPIKey = "KEY"

// requireAPIKey rejects requests whose KEY header does not match key.
// An empty key rejects every request.
func requireAPIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(headerAPIKey)
			if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				handleServiceError(w, r, apperrors.NewUnauthorizedError("Invalid secret key"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
