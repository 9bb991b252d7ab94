package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"partner-portal-backend/internal/domain"
)

// AdminAuth gates the admin surface behind a shared-secret bearer token.
// Any mismatch yields the same generic 401 with no further detail.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			presented, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				writeError(w, domain.ErrUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
