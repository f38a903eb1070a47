package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/phonebook/internal/platform/telemetry"
)

// Chain folds middlewares into one, first argument outermost. Nil entries
// are skipped so optional layers can be left out positionally.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			if middlewares[i] == nil {
				continue
			}
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// Stack describes the middleware the phonebook API runs behind.
type Stack struct {
	Logger  *slog.Logger
	Metrics *telemetry.Metrics
	// Limiter throttles the API; nil disables throttling.
	Limiter *rate.Limiter
	// RequestTimeout bounds each request; zero disables the deadline.
	RequestTimeout time.Duration
}

// Middlewares returns the stack outermost first:
// Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, RateLimit,
// Timeout.
func (s Stack) Middlewares() []func(http.Handler) http.Handler {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mws := []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(s.Metrics),
		Logging(logger),
		RateLimit(s.Limiter),
	}
	if s.RequestTimeout > 0 {
		mws = append(mws, Timeout(s.RequestTimeout))
	}
	return mws
}
