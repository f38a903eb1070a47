package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/phonebook/internal/adapters/http/dto"
	"github.com/jsamuelsen11/phonebook/internal/platform/logging"
)

// RateLimit returns middleware that rejects requests with 429 Too Many
// Requests once limiter has no tokens left. The limiter is shared by all
// clients. A nil limiter disables the check.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := limiter.Reserve()
			if !res.OK() {
				reject(w, r, 1)
				return
			}
			if delay := res.Delay(); delay > 0 {
				res.Cancel()
				reject(w, r, int(math.Ceil(delay.Seconds())))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// NewLimiter builds a limiter from a rate and burst size. A non-positive
// rate returns nil, which RateLimit treats as unlimited.
func NewLimiter(requestsPerSecond float64, burst int) *rate.Limiter {
	if requestsPerSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}

func reject(w http.ResponseWriter, r *http.Request, retryAfter int) {
	logging.FromContext(r.Context()).WarnContext(r.Context(), "request throttled",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
	w.Header().Set("Retry-After", strconv.Itoa(max(retryAfter, 1)))
	dto.WriteProblem(w, r, http.StatusTooManyRequests, "rate limit exceeded")
}
