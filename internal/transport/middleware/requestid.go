package middleware

import (
	"context"
	"net/http"

	"github.com/taskmetrics/task-incentive/pkg/logger"

	"github.com/google/uuid"
)

type ctxKey string

const traceIDKey ctxKey = "traceID"

// TraceID returns the trace ID stored by RequestID, or "" when absent.
func TraceID(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey).(string); ok {
		return id
	}
	return ""
}

func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.With(r.Context(), "traceID", traceID)
		ctx = context.WithValue(ctx, traceIDKey, traceID)

		// propagate back to response
		w.Header().Set("X-Trace-ID", traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
