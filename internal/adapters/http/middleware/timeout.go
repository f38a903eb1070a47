package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/phonebook/internal/adapters/http/dto"
	"github.com/jsamuelsen11/phonebook/internal/platform/logging"
)

// Timeout returns middleware that bounds each request by timeout. The handler
// sees the deadline on its context, so a save it triggers gives up before
// touching the file. When the deadline passes first the client gets a 504
// problem response and anything the handler writes later is dropped with
// http.ErrHandlerTimeout.
//
// A store mutation the handler already made is not rolled back; the 504 only
// tells the client the outcome is unknown.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			buf := &bufferedResponse{header: make(http.Header)}
			done := make(chan struct{})
			go func() {
				defer close(done)
				next.ServeHTTP(buf, r.WithContext(ctx))
			}()

			select {
			case <-done:
				buf.copyTo(w)
			case <-ctx.Done():
				buf.expire()
				logging.FromContext(r.Context()).WarnContext(r.Context(), "request timed out",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Duration("timeout", timeout),
				)
				dto.WriteProblem(w, r, http.StatusGatewayTimeout, "request exceeded "+timeout.String())
			}
		})
	}
}

// bufferedResponse holds the handler's response until Timeout decides which
// side answers the client. The handler goroutine and the timeout path share
// it, so every method takes mu.
type bufferedResponse struct {
	mu      sync.Mutex
	header  http.Header
	body    bytes.Buffer
	status  int
	expired bool
}

func (b *bufferedResponse) Header() http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.header
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.expired || b.status != 0 {
		return
	}
	b.status = code
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.expired {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

// expire marks the response as abandoned; later writes fail.
func (b *bufferedResponse) expire() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.expired = true
}

// copyTo sends the buffered response to w. A handler that wrote nothing
// yields an implicit 200.
func (b *bufferedResponse) copyTo(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()

	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if b.body.Len() > 0 {
		_, _ = w.Write(b.body.Bytes())
	}
}
