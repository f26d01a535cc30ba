package httpx

import (
	"log/slog"
	"net/http"

	"github.com/jobtrail/jobtrail-api/internal/core"
)

// Fixed-window budgets for the expensive analytics endpoints, per
// client per minute.
const (
	titleBreakdownLimitPerMin = 2
	dashboardLimitPerMin      = 5
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Metrics      MetricsServiceInterface
	Emails       EmailServiceInterface
	Auth         AuthServiceInterface
	Limiter      core.RateLimiter
	RateLimits   RouteBudgets
	CookieDomain string
	Logger       *slog.Logger // Logger for HTTP errors (optional)
}

// RouteBudgets overrides the per-route request budgets. Zero fields
// fall back to the package defaults.
type RouteBudgets struct {
	TitleBreakdown int
	Dashboard      int
	WindowSeconds  int
}

func (b RouteBudgets) titleBreakdown() int {
	if b.TitleBreakdown > 0 {
		return b.TitleBreakdown
	}
	return titleBreakdownLimitPerMin
}

func (b RouteBudgets) dashboard() int {
	if b.Dashboard > 0 {
		return b.Dashboard
	}
	return dashboardLimitPerMin
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	metricsHandlers := &MetricsHandlers{Svc: services.Metrics, Logger: services.Logger}
	emailHandlers := &EmailHandlers{Svc: services.Emails, Logger: services.Logger}

	registerMetricsRoutes(mux, metricsHandlers, services)
	registerEmailRoutes(mux, emailHandlers, services)

	if services.Auth != nil {
		authHandlers := &AuthHandlers{
			Svc:          services.Auth,
			CookieDomain: services.CookieDomain,
			Logger:       services.Logger,
		}
		registerAuthRoutes(mux, authHandlers)
	}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return mux
}

// authWrap returns a no-op wrapper when auth is nil, otherwise applies RequireAuth.
func (s RouterServices) authWrap() func(http.Handler) http.Handler {
	if s.Auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return RequireAuth(s.Auth)
}

// limitWrap builds a rate limiting wrapper for one named route.
func (s RouterServices) limitWrap(name string, limit int) func(http.Handler) http.Handler {
	return RateLimit(s.Limiter, RateLimitConfig{
		Name:          name,
		Limit:         limit,
		WindowSeconds: s.RateLimits.WindowSeconds,
		Logger:        s.Logger,
	})
}

func registerMetricsRoutes(mux *http.ServeMux, h *MetricsHandlers, services RouterServices) {
	auth := services.authWrap()

	// Auth runs before the limiter so budgets are keyed per user.
	titleLimit := services.limitWrap("metrics:title-breakdown", services.RateLimits.titleBreakdown())
	mux.Handle("GET /api/metrics/response-rate-by-title",
		auth(titleLimit(http.HandlerFunc(h.ResponseRateByTitle))))

	mux.Handle("GET /api/metrics/response-rate",
		auth(http.HandlerFunc(h.ResponseRate)))

	dashLimit := services.limitWrap("metrics:dashboard", services.RateLimits.dashboard())
	mux.Handle("GET /api/metrics/dashboard",
		auth(dashLimit(http.HandlerFunc(h.Dashboard))))
}

func registerEmailRoutes(mux *http.ServeMux, h *EmailHandlers, services RouterServices) {
	auth := services.authWrap()
	mux.Handle("GET /api/emails", auth(http.HandlerFunc(h.List)))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth/login", h.Login)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/me", h.Me)
}
