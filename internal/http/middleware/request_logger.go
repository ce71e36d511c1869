package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/kaptureops/lead-intake/pkg/logging"
)

// RequestLogger emits structured start/complete logs for every HTTP request.
// The request id attached by chi's RequestID middleware is bound to both
// records, and the completion record carries the response status so a lead
// submission can be correlated end to end from the logs alone.
func RequestLogger(logger *logging.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLogger := logger.With(
				"request_id", chimiddleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
			)
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			reqLogger.Info("request started", "remote_ip", r.RemoteAddr)
			next.ServeHTTP(ww, r)
			reqLogger.Info("request completed",
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
