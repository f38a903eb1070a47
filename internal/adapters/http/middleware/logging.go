package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/phonebook/internal/platform/logging"
)

// Logging returns middleware that gives each request a child logger carrying
// its request and correlation IDs, stores it in the context for handlers, and
// logs the outcome once the handler returns.
//
// Directory changes (POST, PUT, PATCH, DELETE) complete at info level, reads
// at debug. Client errors are warnings and server errors are errors whatever
// the method.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			if child.Enabled(ctx, slog.LevelDebug) {
				attrs := RedactHeaders(r.Header)
				args := make([]any, 0, len(attrs)+2)
				args = append(args, slog.String("method", r.Method), slog.String("path", r.URL.Path))
				for _, a := range attrs {
					args = append(args, a)
				}
				child.DebugContext(ctx, "request started", args...)
			}

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			child.Log(ctx, completionLevel(r.Method, rec.status), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rec.status),
				slog.Int64("bytes", rec.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func completionLevel(method string, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	}
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
