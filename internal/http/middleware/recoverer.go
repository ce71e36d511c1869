package middleware

import (
	"net/http"

	"github.com/kaptureops/lead-intake/pkg/logging"
)

// Recoverer converts panics into the generic server-error response. Internal
// detail is logged, never written to the caller.
func Recoverer(logger *logging.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						"panic", rec,
						"method", r.Method,
						"path", r.URL.Path,
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"error":"Server error"}` + "\n"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
