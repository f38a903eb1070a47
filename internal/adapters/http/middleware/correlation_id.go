package middleware

import (
	"context"
	"net/http"
)

const headerCorrelationID = "X-Correlation-ID"

// WithCorrelationID returns a copy of ctx carrying the correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationIDFromContext returns the correlation ID stored in ctx, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	return idFrom(ctx, correlationIDKey)
}

// CorrelationID returns middleware that ties a request to a wider unit of
// work, such as a batch import calling the API many times. A well-formed
// X-Correlation-ID is kept; otherwise the request ID stands in, so it must
// run after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return propagateID(headerCorrelationID, correlationIDKey, func(r *http.Request) string {
		return RequestIDFromContext(r.Context())
	})
}
