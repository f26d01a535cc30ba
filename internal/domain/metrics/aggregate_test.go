package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/jobtrail/jobtrail-api/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

// email builds a UserEmail for tests. Empty company/title map to nil pointers.
func email(company, title, status string, received *time.Time) *model.UserEmail {
	e := &model.UserEmail{ApplicationStatus: status, ReceivedAt: received}
	if company != "" {
		e.CompanyName = strPtr(company)
	}
	if title != "" {
		e.JobTitle = strPtr(title)
	}
	return e
}

func newTestAggregator() *Aggregator {
	return NewAggregator(AggregatorOptions{})
}

func TestOverallResponseRate_EmptyInput(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()

	got := agg.OverallResponseRate(nil)
	assert.Equal(t, 0.0, got.Value)
}

func TestOverallResponseRate_ConfirmationPlusInterview(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()

	emails := []*model.UserEmail{
		email("CompanyA", "Engineer", "application confirmation", nil),
		email("CompanyA", "Engineer", "interview invitation", nil),
	}

	got := agg.OverallResponseRate(emails)
	assert.Equal(t, 100.0, got.Value)
}

func TestOverallResponseRate_ConfirmationOnlyIsNotAResponse(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()

	emails := []*model.UserEmail{
		email("CompanyB", "Engineer", "application confirmation", nil),
	}

	got := agg.OverallResponseRate(emails)
	assert.Equal(t, 0.0, got.Value)
}

func TestOverallResponseRate_UnknownOnlyApplicationsExcluded(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()

	// CompanyC only ever saw "unknown" statuses: it must not appear in
	// any denominator. CompanyD responded, so the rate is 100 over the
	// single valid application.
	emails := []*model.UserEmail{
		email("CompanyC", "Engineer", "unknown", nil),
		email("CompanyC", "Engineer", "  Unknown  ", nil),
		email("CompanyD", "Engineer", "application confirmation", nil),
		email("CompanyD", "Engineer", "interview invitation", nil),
	}

	got := agg.OverallResponseRate(emails)
	assert.Equal(t, 100.0, got.Value)
}

func TestOverallResponseRate_BlankStatusesIgnored(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()

	// A blank status neither counts as a response nor keeps the
	// application valid on its own.
	emails := []*model.UserEmail{
		email("CompanyE", "Engineer", "application confirmation", nil),
		email("CompanyE", "Engineer", "", nil),
		email("CompanyF", "Engineer", "", nil),
	}

	got := agg.OverallResponseRate(emails)
	assert.Equal(t, 0.0, got.Value)
}

func TestOverallResponseRate_WithinBounds(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()

	emails := []*model.UserEmail{
		email("A", "", "application confirmation", nil),
		email("B", "", "rejection", nil),
		email("C", "", "interview invitation", nil),
		email("D", "", "offer made", nil),
		email("E", "", "unknown", nil),
	}

	got := agg.OverallResponseRate(emails)
	assert.GreaterOrEqual(t, got.Value, 0.0)
	assert.LessOrEqual(t, got.Value, 100.0)
	// Of the 4 valid applications, C and D responded.
	assert.Equal(t, 50.0, got.Value)
}

func TestOverallResponseRate_StatusesTrimmedAndLowercased(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()

	emails := []*model.UserEmail{
		email("A", "", "  Application Confirmation  ", nil),
		email("A", "", "REJECTION", nil),
	}

	got := agg.OverallResponseRate(emails)
	assert.Equal(t, 0.0, got.Value)
}

func TestOverallResponseRate_EmailsWithoutCompanyIgnored(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()

	emails := []*model.UserEmail{
		email("", "", "interview invitation", nil),
	}

	got := agg.OverallResponseRate(emails)
	assert.Equal(t, 0.0, got.Value)
}

func TestResponseRateByTitle_GroupsByDisplayTitle(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()

	emails := []*model.UserEmail{
		email("CompanyA", "software engineer", "application confirmation", nil),
		email("CompanyA", "software engineer", "interview invitation", nil),
		email("CompanyB", "software engineer", "application confirmation", nil),
		email("CompanyC", "data analyst", "rejection", nil),
	}

	got := agg.ResponseRateByTitle(emails)
	require.Len(t, got, 2)

	// Encounter order is preserved: software engineer first.
	assert.Equal(t, "Software Engineer", got[0].Title)
	assert.Equal(t, 50.0, got[0].Rate)
	assert.Equal(t, "Data Analyst", got[1].Title)
	assert.Equal(t, 0.0, got[1].Rate)
}

func TestResponseRateByTitle_PrefersStoredNormalizedTitle(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()

	e := email("CompanyA", "Sr. SWE II", "interview invitation", nil)
	e.NormalizedJobTitle = strPtr("software engineer")

	got := agg.ResponseRateByTitle([]*model.UserEmail{e})
	require.Len(t, got, 1)
	assert.Equal(t, "Software Engineer", got[0].Title)
	assert.Equal(t, 100.0, got[0].Rate)
}

func TestResponseRateByTitle_OnTheFlyNormalization(t *testing.T) {
	t.Parallel()
	agg := NewAggregator(AggregatorOptions{
		Normalize: func(title string) (string, error) {
			return "Backend Engineer", nil
		},
	})

	emails := []*model.UserEmail{
		email("CompanyA", "be engineer", "interview invitation", nil),
	}

	got := agg.ResponseRateByTitle(emails)
	require.Len(t, got, 1)
	assert.Equal(t, "Backend Engineer", got[0].Title)
}

func TestResponseRateByTitle_NormalizationFailureFallsBack(t *testing.T) {
	t.Parallel()
	agg := NewAggregator(AggregatorOptions{
		Normalize: func(title string) (string, error) {
			return "", errors.New("normalizer unavailable")
		},
	})

	emails := []*model.UserEmail{
		email("CompanyA", "staff engineer", "interview invitation", nil),
	}

	// The error is swallowed; the raw title is title-cased instead.
	got := agg.ResponseRateByTitle(emails)
	require.Len(t, got, 1)
	assert.Equal(t, "Staff Engineer", got[0].Title)
}

func TestResponseRateByTitle_EmptyNormalizationResultFallsBack(t *testing.T) {
	t.Parallel()
	agg := NewAggregator(AggregatorOptions{
		Normalize: func(title string) (string, error) {
			return "   ", nil
		},
	})

	emails := []*model.UserEmail{
		email("CompanyA", "product manager", "interview invitation", nil),
	}

	got := agg.ResponseRateByTitle(emails)
	require.Len(t, got, 1)
	assert.Equal(t, "Product Manager", got[0].Title)
}

func TestResponseRateByTitle_ExcludesUnknownAndMissingTitles(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()

	emails := []*model.UserEmail{
		email("CompanyA", "unknown", "interview invitation", nil),
		email("CompanyB", "Unknown", "interview invitation", nil),
		email("CompanyC", "", "interview invitation", nil),
		email("CompanyD", "engineer", "interview invitation", nil),
	}

	got := agg.ResponseRateByTitle(emails)
	require.Len(t, got, 1)
	assert.Equal(t, "Engineer", got[0].Title)
}

func TestResponseRateByTitle_TwoDecimalRounding(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()

	// 1 response out of 3 applications sharing a title: 33.33%.
	emails := []*model.UserEmail{
		email("A", "engineer", "interview invitation", nil),
		email("B", "engineer", "application confirmation", nil),
		email("C", "engineer", "rejection", nil),
	}

	got := agg.ResponseRateByTitle(emails)
	require.Len(t, got, 1)
	assert.Equal(t, 33.33, got[0].Rate)
}

func TestResponseRateByTitle_EmptyInput(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()

	got := agg.ResponseRateByTitle(nil)
	assert.Empty(t, got)
}

func TestGroupByCompany_FirstSeenTitleWins(t *testing.T) {
	t.Parallel()

	emails := []*model.UserEmail{
		email("CompanyA", "first title", "application confirmation", nil),
		email("CompanyA", "second title", "interview invitation", nil),
	}

	apps := groupByCompany(emails, true)
	require.Len(t, apps, 1)
	require.NotNil(t, apps[0].jobTitle)
	assert.Equal(t, "first title", *apps[0].jobTitle)
}

func TestTitleCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Software Engineer", titleCase("software engineer"))
	assert.Equal(t, "Swe", titleCase("SWE"))
	assert.Equal(t, "Data Analyst Ii", titleCase("data analyst ii"))
}
