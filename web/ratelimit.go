package web

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/oopsididitagain335/futurecommon/config"
)

// rateLimit wraps a handler with a token-bucket limiter. The form endpoint
// is unauthenticated, so a modest global bucket keeps a single misbehaving
// client from flooding the review channel.
func rateLimit(cfg config.RateLimit) func(http.Handler) http.Handler {
	lim := rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !lim.Allow() {
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
