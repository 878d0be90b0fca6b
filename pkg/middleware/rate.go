// Package middleware provides the HTTP middleware stack for orderdesk.
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/shashiranjanraj/orderdesk/pkg/response"
)

// limiter tracks a fixed-window request count per client IP. Windows are
// evicted once expired so the map stays bounded on long-running servers.
type limiter struct {
	max    int
	window time.Duration

	mu      sync.Mutex
	counts  map[string]int
	resetAt time.Time
}

func newLimiter(max int, window time.Duration) *limiter {
	return &limiter{
		max:     max,
		window:  window,
		counts:  make(map[string]int),
		resetAt: time.Now().Add(window),
	}
}

func (l *limiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.After(l.resetAt) {
		l.counts = make(map[string]int)
		l.resetAt = now.Add(l.window)
	}

	l.counts[ip]++
	return l.counts[ip] <= l.max
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	return r.RemoteAddr
}

// RateLimit limits each client IP to max requests per window. The limit is
// typically sourced from config.RateLimitPerMinute at wiring time.
func RateLimit(max int, window time.Duration) func(http.Handler) http.Handler {
	l := newLimiter(max, window)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.allow(clientIP(r)) {
				response.Error(w, http.StatusTooManyRequests, "Too Many Requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
