package middleware

import (
	"net/http"

	"github.com/angelmondragon/storefront-backend/api/responses"
)

// ErrorDetail toggles internal messages and error chains in error bodies.
func ErrorDetail(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(responses.WithDebug(r.Context(), true)))
		})
	}
}
