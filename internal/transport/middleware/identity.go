package middleware

import (
	"net/http"

	"github.com/plantworks/facilityops/internal"
)

// Identity stamps the X-User-ID header onto the request context so
// handlers can resolve the acting user without re-reading headers.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID := r.Header.Get("X-User-ID"); userID != "" {
			r = r.WithContext(internal.ContextWithUserID(r.Context(), userID))
		}
		next.ServeHTTP(w, r)
	})
}
