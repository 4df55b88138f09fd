package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/wayfarer-app/wayfarer/common/trace"
)

// statusRecorder captures the status code written by a handler so the access
// log and request counter can report it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// requestLog attaches a request ID to the context and emits one structured
// access-log line per request.
func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx, requestID := trace.Ensure(r.Context())
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		httpRequests.WithLabelValues(r.Method, statusClass(rec.status)).Inc()

		s.logger.Info("http: request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote", r.RemoteAddr,
		)
	})
}

// statusClass collapses a status code to its class ("2xx", "4xx", ...) to
// keep metric cardinality low.
func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}
