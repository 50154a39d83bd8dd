package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/frahmantamala/crms/internal/transport"
	"github.com/frahmantamala/crms/pkg/logger"
)

const panicMessage = "Internal server error"

// RecoveryMiddleware answers a panicking request with a 500 in the usual
// {"error": ...} envelope. The panic value is logged with the trace-scoped
// logger when RequestID has already run, and never reaches the client.
func RecoveryMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				lg, ok := logger.Lookup(r.Context())
				if !ok {
					lg = base
				}
				lg.ErrorContext(r.Context(), "handler panicked",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()))

				transport.NewBaseHandler(lg).WriteError(w, http.StatusInternalServerError, panicMessage)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
