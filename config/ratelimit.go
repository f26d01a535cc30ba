package config

import "time"

// RateLimitConfig contains per-client rate limits for the metrics
// endpoints. Limits are enforced per client network address over a
// fixed window, backed by Redis.
type RateLimitConfig struct {
	// Enabled toggles rate limiting globally. Disabled limits still
	// register routes but never reject requests.
	Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`

	// TitleBreakdownPerWindow caps calls to the per-title response rate
	// endpoint within one window.
	TitleBreakdownPerWindow int `env:"RATE_LIMIT_TITLE_BREAKDOWN" envDefault:"2"`

	// DashboardPerWindow caps calls to the dashboard metrics endpoint
	// within one window.
	DashboardPerWindow int `env:"RATE_LIMIT_DASHBOARD" envDefault:"5"`

	// Window is the fixed rate-limit window.
	Window time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}

// Sanitize applies guardrails to rate limit configuration values.
func (r *RateLimitConfig) Sanitize() {
	if r.TitleBreakdownPerWindow < 1 {
		r.TitleBreakdownPerWindow = 1
	}
	if r.DashboardPerWindow < 1 {
		r.DashboardPerWindow = 1
	}
	if r.Window <= 0 {
		r.Window = time.Minute
	}
}
