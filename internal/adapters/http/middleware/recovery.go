package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/phonebook/internal/adapters/http/dto"
)

// errInternalServer is what the client sees instead of the panic value.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that turns a handler panic into a logged error
// and a generic 500 problem response, so one bad request cannot take the
// directory and its unsaved changes down with it. When the handler already
// started its response only the log entry is written. http.ErrAbortHandler
// is re-raised for net/http to handle.
//
// Recovery is outermost, so the request ID is read back from the response
// header RequestID sets.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}
				logPanic(logger, r, w.Header().Get(headerRequestID), v)
				if !rec.sent {
					dto.WriteErrorResponse(rec, r, errInternalServer)
				}
			}()
			next.ServeHTTP(rec, r)
		})
	}
}

func logPanic(logger *slog.Logger, r *http.Request, requestID string, v any) {
	logger.ErrorContext(r.Context(), "panic recovered",
		slog.String("panic", fmt.Sprint(v)),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("request_id", requestID),
		slog.String("stack", string(debug.Stack())),
	)
}
