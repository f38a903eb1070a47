package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const headerRequestID = "X-Request-ID"

// maxIDLength bounds request and correlation IDs taken from client headers.
const maxIDLength = 128

type idKey int

const (
	requestIDKey idKey = iota
	correlationIDKey
)

// WithRequestID returns a copy of ctx carrying the request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID stored in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	return idFrom(ctx, requestIDKey)
}

// RequestID returns middleware that assigns each request an X-Request-ID.
// A well-formed ID sent by the client is kept; otherwise a UUID is minted.
// The ID goes into the request context and back out as a response header.
func RequestID() func(http.Handler) http.Handler {
	return propagateID(headerRequestID, requestIDKey, func(*http.Request) string {
		return uuid.NewString()
	})
}

// propagateID is the shared shape of the ID middlewares: take the header if
// it is well formed, else ask fallback, then store and echo the result.
func propagateID(header string, key idKey, fallback func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if !validID(id) {
				id = fallback(r)
			}
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), key, id)))
		})
	}
}

func idFrom(ctx context.Context, key idKey) string {
	id, _ := ctx.Value(key).(string)
	return id
}

// validID accepts non-empty printable ASCII up to maxIDLength so client
// values cannot smuggle control characters into the logs.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for i := range len(id) {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}
