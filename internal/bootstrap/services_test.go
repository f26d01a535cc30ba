package bootstrap

import (
	"io"
	"log/slog"
	"testing"

	"github.com/jobtrail/jobtrail-api/config"
)

func TestNewServicesBuildsContainer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	services := NewServices(&ServiceDeps{
		Config: &config.AppConfig{},
		Logger: logger,
	})

	if services.Metrics == nil {
		t.Fatal("NewServices() returned nil metrics service")
	}
	if services.Emails == nil {
		t.Fatal("NewServices() returned nil email service")
	}

	// Optional collaborators stay nil without Redis or metrics config.
	if services.Auth != nil {
		t.Errorf("expected nil auth service without redis, got %v", services.Auth)
	}
	if services.Limiter != nil {
		t.Errorf("expected nil rate limiter without redis, got %v", services.Limiter)
	}
	if services.MetricsSink != nil {
		t.Errorf("expected nil metrics sink when disabled, got %v", services.MetricsSink)
	}
}
