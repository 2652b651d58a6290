package http

import (
	"net/http"

	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID stamps every request with a trace id, honoring one supplied by
// the caller, and attaches a request-scoped logger carrying it so all
// downstream log lines of the same request correlate.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		reqLogger := h.logger.With().Str("trace_id", traceID).Logger()
		r = r.WithContext(reqLogger.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
