package middleware

import (
	"net/http"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/pkg/logger"
)

// UserContext tags the request logger with the authenticated user. It must
// run after the token gate.
func UserContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := internal.PrincipalFromContext(r.Context())
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		ctx := logger.With(r.Context(), "user_id", p.UserID, "username", p.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
