package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jobtrail/jobtrail-api/internal/domain/model"
)

// MetricsServiceInterface defines the interface for metrics operations.
type MetricsServiceInterface interface {
	ResponseRateByTitle(ctx context.Context, userID string) ([]model.TitleResponseRate, error)
	OverallResponseRate(ctx context.Context, userID string) (model.ResponseRateValue, error)
	Dashboard(ctx context.Context, userID string) (*model.DashboardMetrics, error)
}

// MetricsHandlers provides HTTP handlers for the analytics endpoints.
// All endpoints are scoped to the authenticated user's own data.
type MetricsHandlers struct {
	Svc    MetricsServiceInterface
	Logger *slog.Logger
}

func (h *MetricsHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// ResponseRateByTitle handles the per-title response rate breakdown.
// GET /api/metrics/response-rate-by-title.
// Responds with the bare list: [{"title": ..., "rate": ...}, ...].
func (h *MetricsHandlers) ResponseRateByTitle(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		writeSessionRequired(w)
		return
	}

	rates, err := h.Svc.ResponseRateByTitle(r.Context(), session.UserID)
	if err != nil {
		h.renderMetricsError(w, r, metricsFailure{Stage: "response_rate_by_title", UserID: session.UserID, Err: err})
		return
	}
	if rates == nil {
		rates = []model.TitleResponseRate{}
	}
	WriteJSON(w, http.StatusOK, rates)
}

// ResponseRate handles the overall response rate endpoint.
// GET /api/metrics/response-rate.
// Responds with {"value": <percentage>}.
func (h *MetricsHandlers) ResponseRate(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		writeSessionRequired(w)
		return
	}

	rate, err := h.Svc.OverallResponseRate(r.Context(), session.UserID)
	if err != nil {
		h.renderMetricsError(w, r, metricsFailure{Stage: "overall_response_rate", UserID: session.UserID, Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, rate)
}

// Dashboard handles the dashboard summary endpoint.
// GET /api/metrics/dashboard.
func (h *MetricsHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		writeSessionRequired(w)
		return
	}

	dash, err := h.Svc.Dashboard(r.Context(), session.UserID)
	if err != nil {
		h.renderMetricsError(w, r, metricsFailure{Stage: "dashboard_metrics", UserID: session.UserID, Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, dash)
}

// metricsFailure carries the context a failed computation is logged with.
type metricsFailure struct {
	Stage  string
	UserID string
	Err    error
}

// renderMetricsError logs a failed metrics computation with its user and
// stage, then renders the mapped JSON error. The 500 body stays generic;
// the log line is where the detail lives.
func (h *MetricsHandlers) renderMetricsError(w http.ResponseWriter, r *http.Request, f metricsFailure) {
	h.logger().ErrorContext(r.Context(), "metrics computation failed",
		slog.String("stage", f.Stage),
		slog.String("user_id", f.UserID),
		slog.Any("error", f.Err))
	RenderError(w, f.Err)
}

// writeSessionRequired reports a missing session on a route that should
// have been guarded by RequireAuth.
func writeSessionRequired(w http.ResponseWriter) {
	WriteError(w, ErrorParams{
		Code:    http.StatusUnauthorized,
		ErrCode: "authentication_required",
		Err:     errors.New("authentication required"),
	})
}
