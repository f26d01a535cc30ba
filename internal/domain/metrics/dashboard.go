package metrics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jobtrail/jobtrail-api/internal/domain/model"
)

const (
	weekBucketCount  = 12
	monthBucketCount = 6
)

// Dashboard computes the summary metrics for a user's job search as of
// now. Emails classified "false positive" never count toward any
// metric. Unlike the response-rate operations, the company grouping
// here keeps "unknown" statuses, and TotalApplications counts emails,
// not deduplicated applications.
func (a *Aggregator) Dashboard(emails []*model.UserEmail, now time.Time) *model.DashboardMetrics {
	filtered := make([]*model.UserEmail, 0, len(emails))
	for _, e := range emails {
		if e.Status() != model.StatusFalsePositive {
			filtered = append(filtered, e)
		}
	}

	apps := groupByCompany(filtered, false)

	out := &model.DashboardMetrics{
		TotalApplications:      len(filtered),
		ApplicationsLast7Days:  countReceivedSince(filtered, now.AddDate(0, 0, -7)),
		ApplicationsLast30Days: countReceivedSince(filtered, now.AddDate(0, 0, -30)),
		ApplicationsByStatus:   statusCounts(filtered),
		InterviewRate:          round1(appShare(apps, model.StatusInterviewInvite, model.StatusAssessmentSent)),
		OfferRate:              round1(appShare(apps, model.StatusOfferMade)),
		AvgTimeToResponse:      round1(avgTimeToResponse(apps)),
		ActiveApplications:     countActive(apps),
		ApplicationsPerWeek:    weeklySeries(filtered, now),
		ApplicationsPerMonth:   monthlySeries(filtered, now),
	}
	return out
}

// countReceivedSince counts emails received at or after the cutoff.
func countReceivedSince(emails []*model.UserEmail, cutoff time.Time) int {
	n := 0
	for _, e := range emails {
		if e.ReceivedAt != nil && !e.ReceivedAt.Before(cutoff) {
			n++
		}
	}
	return n
}

// statusCounts tallies emails by their trimmed raw status string.
// Casing is preserved so the breakdown mirrors what the classifier wrote.
func statusCounts(emails []*model.UserEmail) map[string]int {
	counts := make(map[string]int)
	for _, e := range emails {
		counts[strings.TrimSpace(e.ApplicationStatus)]++
	}
	return counts
}

// appShare returns the percentage of applications carrying at least one
// of the given statuses. Returns 0 for an empty application set.
func appShare(apps []*application, statuses ...string) float64 {
	if len(apps) == 0 {
		return 0.0
	}
	n := 0
	for _, app := range apps {
		if app.hasAnyStatus(statuses...) {
			n++
		}
	}
	return float64(n) / float64(len(apps)) * 100
}

// avgTimeToResponse averages, across applications that received an
// application confirmation and at least one other distinct status, the
// gap in days between the first two received emails. Only positive
// gaps contribute; returns 0 when no application qualifies.
func avgTimeToResponse(apps []*application) float64 {
	var gaps []float64
	for _, app := range apps {
		if !app.hasStatus(model.StatusConfirmation) || len(app.statuses) <= 1 {
			continue
		}

		dates := make([]time.Time, 0, len(app.received))
		for _, d := range app.received {
			if d != nil {
				dates = append(dates, *d)
			}
		}
		if len(dates) < 2 {
			continue
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

		days := dates[1].Sub(dates[0]).Hours() / 24
		if days > 0 {
			gaps = append(gaps, days)
		}
	}

	if len(gaps) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, g := range gaps {
		sum += g
	}
	return sum / float64(len(gaps))
}

// countActive counts applications with no terminal status: not
// rejected, no offer, not withdrawn, no hiring freeze.
func countActive(apps []*application) int {
	n := 0
	for _, app := range apps {
		if !app.hasAnyStatus(
			model.StatusRejection,
			model.StatusOfferMade,
			model.StatusWithdrew,
			model.StatusHiringFreeze,
		) {
			n++
		}
	}
	return n
}

// weekLabel formats an ISO year/week pair, e.g. "2025-W07".
func weekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// weeklySeries builds exactly 12 ISO-week buckets ending at the current
// week, oldest first. Weeks with no received emails report zero.
func weeklySeries(emails []*model.UserEmail, now time.Time) []model.WeekBucket {
	counts := make(map[string]int)
	for _, e := range emails {
		if e.ReceivedAt != nil {
			counts[weekLabel(*e.ReceivedAt)]++
		}
	}

	series := make([]model.WeekBucket, 0, weekBucketCount)
	for i := weekBucketCount - 1; i >= 0; i-- {
		label := weekLabel(now.AddDate(0, 0, -7*i))
		series = append(series, model.WeekBucket{Week: label, Count: counts[label]})
	}
	return series
}

// monthlySeries builds exactly 6 month buckets, stepping back from now
// in fixed 30-day increments (not calendar months), oldest first.
// Counts are keyed by the calendar year-month of each bucket date.
func monthlySeries(emails []*model.UserEmail, now time.Time) []model.MonthBucket {
	counts := make(map[string]int)
	for _, e := range emails {
		if e.ReceivedAt != nil {
			counts[e.ReceivedAt.Format("2006-01")]++
		}
	}

	series := make([]model.MonthBucket, 0, monthBucketCount)
	for i := monthBucketCount - 1; i >= 0; i-- {
		d := now.AddDate(0, 0, -30*i)
		series = append(series, model.MonthBucket{
			Month: d.Format("Jan 2006"),
			Count: counts[d.Format("2006-01")],
		})
	}
	return series
}
