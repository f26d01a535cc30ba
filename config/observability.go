package config

import "strings"

// ObservabilityConfig groups metrics emission configuration.
type ObservabilityConfig struct {
	Metrics MetricsConfig `envPrefix:"METRICS_"`
}

// MetricsConfig controls StatsD metric emission. Metrics are emitted
// over UDP and are best-effort; a missing sink never fails requests.
type MetricsConfig struct {
	Enabled bool `env:"ENABLED" envDefault:"false"`

	// StatsdAddress is the host:port of a StatsD-compatible sink.
	StatsdAddress string `env:"STATSD_ADDR" envDefault:""`
}

// IsEnabled reports whether metrics should actually be emitted.
func (m MetricsConfig) IsEnabled() bool {
	return m.Enabled && strings.TrimSpace(m.StatsdAddress) != ""
}
