package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/faithdive/faith-dive/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

var traceIDs = utils.NewUUIDGenerator()

func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx = utils.ContextWithTraceID(ctx, traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
