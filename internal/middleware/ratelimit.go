package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"linxblog/internal/apperror"
)

const throttled = "ThrottlerException: Too Many Requests"

// RateLimiter counts requests per client in fixed windows.
type RateLimiter struct {
	counters *cache.Cache
	limit    int
	window   time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counters: cache.New(window, 2*window),
		limit:    limit,
		window:   window,
	}
}

// Allow records a hit for key and returns the hits left in the current window.
func (l *RateLimiter) Allow(key string) (bool, int) {
	if err := l.counters.Add(key, 1, l.window); err == nil {
		return true, l.limit - 1
	}

	hits, err := l.counters.IncrementInt(key, 1)
	if err != nil {
		// window expired between Add and IncrementInt
		l.counters.Set(key, 1, l.window)
		hits = 1
	}

	if hits > l.limit {
		return false, 0
	}

	return true, l.limit - hits
}

// RateLimit answers 429 once a client exceeds its budget. A non-positive
// limit disables throttling.
func RateLimit(l *RateLimiter) Middleware {
	return func(next http.Handler) http.Handler {
		if l.limit <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, remaining := l.Allow(clientIP(r))

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if !allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(l.window.Seconds())))
				apperror.Write(w, apperror.TooManyRequests(throttled))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
