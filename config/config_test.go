package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAuthModeUnmarshalText(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    AuthMode
		expectError bool
	}{
		{name: "oauth", input: "oauth", expected: AuthModeOAuth},
		{name: "mock", input: "mock", expected: AuthModeMock},
		{name: "uppercase", input: "OAUTH", expected: AuthModeOAuth},
		{name: "mixed case", input: "Mock", expected: AuthModeMock},
		{name: "invalid", input: "saml", expectError: true},
		{name: "empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mode AuthMode
			err := mode.UnmarshalText([]byte(tt.input))
			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error for input %q, got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if mode != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, mode)
			}
		})
	}
}

func TestAppConfigDefaults(t *testing.T) {
	var cfg AppConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.HTTP.Addr)
	}
	if cfg.Postgres.Port != 5432 {
		t.Errorf("expected default db port 5432, got %d", cfg.Postgres.Port)
	}
	if cfg.Auth.Mode != AuthModeOAuth {
		t.Errorf("expected default auth mode oauth, got %q", cfg.Auth.Mode)
	}
	if cfg.Auth.SessionTTL != 24*time.Hour {
		t.Errorf("expected default session TTL 24h, got %s", cfg.Auth.SessionTTL)
	}
	if cfg.RateLimit.TitleBreakdownPerWindow != 2 {
		t.Errorf("expected title breakdown limit 2, got %d", cfg.RateLimit.TitleBreakdownPerWindow)
	}
	if cfg.RateLimit.DashboardPerWindow != 5 {
		t.Errorf("expected dashboard limit 5, got %d", cfg.RateLimit.DashboardPerWindow)
	}
	if cfg.RateLimit.Window != time.Minute {
		t.Errorf("expected 1m window, got %s", cfg.RateLimit.Window)
	}
}

func TestSanitizeGuardrails(t *testing.T) {
	cfg := AppConfig{
		Auth: AuthConfig{
			SessionTTL:  -1,
			AdminEmails: []string{" Admin@Example.com ", "", "ops@example.com"},
		},
		RateLimit: RateLimitConfig{
			TitleBreakdownPerWindow: 0,
			DashboardPerWindow:      -3,
			Window:                  0,
		},
	}
	cfg.Sanitize()

	if cfg.Auth.SessionTTL != 24*time.Hour {
		t.Errorf("expected session TTL clamped to 24h, got %s", cfg.Auth.SessionTTL)
	}
	want := []string{"admin@example.com", "ops@example.com"}
	if len(cfg.Auth.AdminEmails) != len(want) {
		t.Fatalf("expected %d admin emails, got %d", len(want), len(cfg.Auth.AdminEmails))
	}
	for i, e := range want {
		if cfg.Auth.AdminEmails[i] != e {
			t.Errorf("admin email %d: expected %q, got %q", i, e, cfg.Auth.AdminEmails[i])
		}
	}
	if cfg.RateLimit.TitleBreakdownPerWindow != 1 {
		t.Errorf("expected limit clamped to 1, got %d", cfg.RateLimit.TitleBreakdownPerWindow)
	}
	if cfg.RateLimit.DashboardPerWindow != 1 {
		t.Errorf("expected limit clamped to 1, got %d", cfg.RateLimit.DashboardPerWindow)
	}
	if cfg.RateLimit.Window != time.Minute {
		t.Errorf("expected window clamped to 1m, got %s", cfg.RateLimit.Window)
	}
}
