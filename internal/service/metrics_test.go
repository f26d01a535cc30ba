package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jobtrail/jobtrail-api/internal/data"
	"github.com/jobtrail/jobtrail-api/internal/domain/metrics"
	"github.com/jobtrail/jobtrail-api/internal/domain/model"
	"github.com/jobtrail/jobtrail-api/internal/mocks"
)

func newTestMetricsService(t *testing.T, now time.Time) (*MetricsService, *mocks.MockEmailRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockEmailRepository(ctrl)
	svc := NewMetricsService(MetricsServiceOptions{
		Repo:       repo,
		Aggregator: metrics.NewAggregator(metrics.AggregatorOptions{}),
		Now:        data.NewFixedTimeProvider(now).Now,
	})
	return svc, repo
}

func metricEmail(company, title, status string, received *time.Time) *model.UserEmail {
	e := &model.UserEmail{
		UserID:            "user-1",
		ApplicationStatus: status,
		ReceivedAt:        received,
	}
	if company != "" {
		e.CompanyName = &company
	}
	if title != "" {
		e.JobTitle = &title
	}
	return e
}

func TestMetricsService_ResponseRateByTitle(t *testing.T) {
	t.Parallel()

	svc, repo := newTestMetricsService(t, time.Now())

	emails := []*model.UserEmail{
		metricEmail("Acme", "software engineer", "application confirmation", nil),
		metricEmail("Acme", "software engineer", "interview invitation", nil),
		metricEmail("Globex", "software engineer", "rejection", nil),
	}
	repo.EXPECT().ListAllByUser(gomock.Any(), "user-1").Return(emails, nil)

	rates, err := svc.ResponseRateByTitle(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, "Software Engineer", rates[0].Title)
	assert.InDelta(t, 50.0, rates[0].Rate, 0.001)
}

func TestMetricsService_ResponseRateByTitle_RepoError(t *testing.T) {
	t.Parallel()

	svc, repo := newTestMetricsService(t, time.Now())
	repo.EXPECT().ListAllByUser(gomock.Any(), "user-1").Return(nil, errors.New("db down"))

	_, err := svc.ResponseRateByTitle(context.Background(), "user-1")
	assert.Error(t, err)
}

func TestMetricsService_OverallResponseRate_UsesLatestSnapshot(t *testing.T) {
	t.Parallel()

	svc, repo := newTestMetricsService(t, time.Now())

	emails := []*model.UserEmail{
		metricEmail("Acme", "", "application confirmation", nil),
		metricEmail("Acme", "", "interview invitation", nil),
		metricEmail("Globex", "", "rejection", nil),
	}
	repo.EXPECT().ListAllByUserLatest(gomock.Any(), "user-1").Return(emails, nil)

	rate, err := svc.OverallResponseRate(context.Background(), "user-1")
	require.NoError(t, err)
	assert.InDelta(t, 50.0, rate.Value, 0.001)
}

func TestMetricsService_Dashboard(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, repo := newTestMetricsService(t, now)

	recent := now.AddDate(0, 0, -2)
	emails := []*model.UserEmail{
		metricEmail("Acme", "swe", "application confirmation", &recent),
		metricEmail("Acme", "swe", "interview invitation", nil),
	}
	repo.EXPECT().ListAllByUser(gomock.Any(), "user-1").Return(emails, nil)

	dash, err := svc.Dashboard(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, dash.TotalApplications)
	assert.Equal(t, 1, dash.ApplicationsLast7Days)
	assert.Len(t, dash.ApplicationsPerWeek, 12)
	assert.Len(t, dash.ApplicationsPerMonth, 6)
}

func TestMetricsService_Dashboard_RepoError(t *testing.T) {
	t.Parallel()

	svc, repo := newTestMetricsService(t, time.Now())
	repo.EXPECT().ListAllByUser(gomock.Any(), "user-1").Return(nil, errors.New("db down"))

	_, err := svc.Dashboard(context.Background(), "user-1")
	assert.Error(t, err)
}
