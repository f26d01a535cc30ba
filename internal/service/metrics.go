package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jobtrail/jobtrail-api/internal/core"
	"github.com/jobtrail/jobtrail-api/internal/domain/metrics"
	"github.com/jobtrail/jobtrail-api/internal/domain/model"
)

// MetricsServiceOptions groups dependencies for MetricsService.
type MetricsServiceOptions struct {
	Repo       core.EmailRepository
	Aggregator *metrics.Aggregator
	Now        func() time.Time // Optional: defaults to time.Now
}

// MetricsService loads a user's email records and hands them to the
// domain aggregator. All computations are scoped to a single user.
type MetricsService struct {
	repo core.EmailRepository
	agg  *metrics.Aggregator
	now  func() time.Time
}

// NewMetricsService constructs a new MetricsService.
func NewMetricsService(opts MetricsServiceOptions) *MetricsService {
	if opts.Repo == nil {
		panic("MetricsService requires a Repo")
	}
	if opts.Aggregator == nil {
		panic("MetricsService requires an Aggregator")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &MetricsService{repo: opts.Repo, agg: opts.Aggregator, now: now}
}

// ResponseRateByTitle computes the per-job-title response rate
// breakdown for a user.
func (s *MetricsService) ResponseRateByTitle(ctx context.Context, userID string) ([]model.TitleResponseRate, error) {
	emails, err := s.repo.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list emails: %w", err)
	}
	return s.agg.ResponseRateByTitle(emails), nil
}

// OverallResponseRate computes the overall response rate for a user.
// It reads through a fresh snapshot so emails ingested moments ago are
// included.
func (s *MetricsService) OverallResponseRate(ctx context.Context, userID string) (model.ResponseRateValue, error) {
	emails, err := s.repo.ListAllByUserLatest(ctx, userID)
	if err != nil {
		return model.ResponseRateValue{}, fmt.Errorf("list emails: %w", err)
	}
	return s.agg.OverallResponseRate(emails), nil
}

// Dashboard computes the dashboard summary for a user as of now.
func (s *MetricsService) Dashboard(ctx context.Context, userID string) (*model.DashboardMetrics, error) {
	emails, err := s.repo.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list emails: %w", err)
	}
	return s.agg.Dashboard(emails, s.now()), nil
}
