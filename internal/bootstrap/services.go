package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/jobtrail/jobtrail-api/config"
	redisadapter "github.com/jobtrail/jobtrail-api/internal/adapters/redis"
	"github.com/jobtrail/jobtrail-api/internal/core"
	"github.com/jobtrail/jobtrail-api/internal/data"
	"github.com/jobtrail/jobtrail-api/internal/domain/metrics"
	"github.com/jobtrail/jobtrail-api/internal/observability/statsd"
	"github.com/jobtrail/jobtrail-api/internal/service"
	"github.com/jobtrail/jobtrail-api/internal/service/titles"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Metrics     *service.MetricsService
	Emails      *service.EmailService
	Auth        *service.AuthService
	Limiter     core.RateLimiter
	MetricsSink *statsd.Client
}

// ServiceDeps contains external dependencies for building services.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices wires repositories and adapters into the application services.
func NewServices(deps *ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.AppConfig{}
	}

	repo := data.NewEmailRepo(deps.DB)

	normalizer := titles.NewNormalizer()
	aggregator := metrics.NewAggregator(metrics.AggregatorOptions{
		Normalize: normalizer.Normalize,
		Logger:    logger,
	})

	return ServiceContainer{
		Metrics: service.NewMetricsService(service.MetricsServiceOptions{
			Repo:       repo,
			Aggregator: aggregator,
			Now:        (&data.RealTimeProvider{}).Now,
		}),
		Emails: service.NewEmailService(service.EmailServiceOptions{
			Repo: repo,
		}),
		Auth: BuildAuthService(AuthBuildConfig{
			Auth:        cfg.Auth,
			RedisClient: deps.RedisClient,
			Logger:      logger,
		}),
		Limiter:     buildRateLimiter(cfg.RateLimit, deps.RedisClient, logger),
		MetricsSink: buildMetricsSink(cfg.Observability.Metrics, logger),
	}
}

// buildRateLimiter returns a Redis-backed fixed-window limiter, or nil
// when rate limiting is disabled or Redis is unavailable. A nil limiter
// leaves the rate-limit middleware inert.
func buildRateLimiter(cfg config.RateLimitConfig, client redis.UniversalClient, logger *slog.Logger) core.RateLimiter {
	if !cfg.Enabled {
		logger.Info("rate limiting disabled by config")
		return nil
	}
	if client == nil {
		logger.Warn("rate limiting disabled: redis client not configured")
		return nil
	}
	return redisadapter.NewRateLimiter(client, cfg.Window)
}

// buildMetricsSink configures the StatsD client when metrics are enabled.
func buildMetricsSink(cfg config.MetricsConfig, logger *slog.Logger) *statsd.Client {
	if !cfg.IsEnabled() {
		return nil
	}
	client, err := statsd.NewClient(statsd.Config{
		Enabled: true,
		Address: cfg.StatsdAddress,
		Prefix:  "jobtrail",
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to initialise statsd client", "error", err)
		return nil
	}
	return client
}
