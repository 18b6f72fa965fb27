package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/frahmantamala/expense-ledger/internal"
)

// RecoveryMiddleware converts handler panics into a generic 500. The panic
// value and stack stay in the log; the response body never carries them.
func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						"error", rec,
						"method", r.Method,
						"url", r.URL.String(),
						"stack", string(debug.Stack()))

					appErr := internal.NewInternalError("internal server error", nil)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(appErr.StatusCode)
					if encErr := json.NewEncoder(w).Encode(appErr); encErr != nil {
						logger.Error("failed to encode error response", "error", encErr)
					}
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
