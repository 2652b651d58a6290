package http

import (
	"net/http"
	"time"

	"github.com/meshdrive/meshdrive/internal/logger"
)

// withLogging emits one access-log line per request with method, URI, status,
// response size, and wall time.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
