package httpx

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jobtrail/jobtrail-api/internal/core"
)

// RateLimitConfig configures the rate limiting middleware for one route.
type RateLimitConfig struct {
	// Name scopes the limiter key so each route gets its own budget.
	Name string
	// Limit is the number of requests allowed per window. Zero or
	// negative disables limiting.
	Limit int
	// WindowSeconds is advertised to throttled clients via Retry-After.
	WindowSeconds int
	Logger        *slog.Logger
}

// RateLimit returns a middleware enforcing a fixed-window request budget
// per client. Authenticated requests are keyed by user ID, anonymous
// requests by client IP. When the limiter backend is unavailable the
// request is allowed through; throttling is protection, not a
// correctness guarantee.
func RateLimit(limiter core.RateLimiter, cfg RateLimitConfig) func(http.Handler) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	windowSeconds := cfg.WindowSeconds
	if windowSeconds <= 0 {
		windowSeconds = 60
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil || cfg.Limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			key := cfg.Name + ":" + clientKey(r)
			allowed, err := limiter.Allow(r.Context(), key, cfg.Limit)
			if err != nil {
				logger.WarnContext(r.Context(), "rate limiter unavailable",
					slog.String("route", cfg.Name),
					slog.Any("error", err))
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				w.Header().Set("Retry-After", strconv.Itoa(windowSeconds))
				WriteError(w, ErrorParams{
					Code:    http.StatusTooManyRequests,
					ErrCode: "rate_limited",
					Err:     errors.New("rate limit exceeded, retry later"),
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientKey identifies the caller for rate limiting purposes: the
// session user ID when authenticated, otherwise the client IP.
func clientKey(r *http.Request) string {
	if session, ok := GetUserSessionFromContext(r.Context()); ok {
		return "user:" + session.UserID
	}
	return "ip:" + clientIP(r)
}

// clientIP extracts the remote IP, stripping the port when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
