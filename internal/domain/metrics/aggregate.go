// Package metrics computes job-application analytics from a user's
// classified email records. It is pure domain logic: callers fetch the
// records and hand them in, together with the current time where a
// computation is time-relative.
package metrics

import (
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/jobtrail/jobtrail-api/internal/domain/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeFunc normalizes a raw job title into a canonical display
// form. Implementations may fail; the aggregator treats normalization
// as best-effort and falls back to title-casing the raw string.
type NormalizeFunc func(title string) (string, error)

// AggregatorOptions groups dependencies for Aggregator.
type AggregatorOptions struct {
	Normalize NormalizeFunc // Optional: on-the-fly title normalization
	Logger    *slog.Logger  // Optional: structured logger
}

// Aggregator derives response/interview/offer rates and time series
// from flat lists of email records. Zero-valued results, never errors,
// are returned for empty inputs.
type Aggregator struct {
	normalize NormalizeFunc
	logger    *slog.Logger
}

// NewAggregator constructs an Aggregator.
func NewAggregator(opts AggregatorOptions) *Aggregator {
	return &Aggregator{
		normalize: opts.Normalize,
		logger:    opts.Logger,
	}
}

func (a *Aggregator) log() *slog.Logger {
	if a != nil && a.logger != nil {
		return a.logger
	}
	return slog.Default()
}

// application is the transient per-company aggregate. Applications are
// keyed by company name alone: two simultaneous openings at the same
// employer collapse into one application (long-standing upstream
// behavior, kept as-is).
type application struct {
	company         string
	jobTitle        *string
	normalizedTitle *string
	statuses        map[string]struct{}
	received        []*time.Time
}

func (app *application) hasStatus(status string) bool {
	_, ok := app.statuses[status]
	return ok
}

// hasResponse reports whether the application saw any engagement beyond
// the automated confirmation or a rejection.
func (app *application) hasResponse() bool {
	for s := range app.statuses {
		if s != model.StatusConfirmation && s != model.StatusRejection {
			return true
		}
	}
	return false
}

// hasAnyStatus reports whether any of the given statuses is present.
func (app *application) hasAnyStatus(statuses ...string) bool {
	for _, s := range statuses {
		if app.hasStatus(s) {
			return true
		}
	}
	return false
}

// groupByCompany folds emails into per-company applications, preserving
// first-seen company order. When dropUnknown is set, blank statuses and
// statuses equal to "unknown" are not accumulated; otherwise every
// status lands in the set as-is. Emails without a company name are
// skipped entirely.
func groupByCompany(emails []*model.UserEmail, dropUnknown bool) []*application {
	byCompany := make(map[string]*application)
	var ordered []*application

	for _, e := range emails {
		company := e.Company()
		if company == "" {
			continue
		}

		app, ok := byCompany[company]
		if !ok {
			app = &application{
				company:         company,
				jobTitle:        e.JobTitle,
				normalizedTitle: e.NormalizedJobTitle,
				statuses:        make(map[string]struct{}),
			}
			byCompany[company] = app
			ordered = append(ordered, app)
		}

		app.received = append(app.received, e.ReceivedAt)

		status := e.Status()
		if dropUnknown && (status == "" || status == model.StatusUnknown) {
			continue
		}
		app.statuses[status] = struct{}{}
	}

	return ordered
}

// validApplications filters out applications whose status set is empty,
// i.e. those that only ever carried "unknown" or missing statuses.
func validApplications(apps []*application) []*application {
	valid := apps[:0:0]
	for _, app := range apps {
		if len(app.statuses) > 0 {
			valid = append(valid, app)
		}
	}
	return valid
}

// OverallResponseRate computes the share of valid applications that
// received a response, as a percentage rounded to 1 decimal place.
// Returns 0.0 when there are no emails or no valid applications.
func (a *Aggregator) OverallResponseRate(emails []*model.UserEmail) model.ResponseRateValue {
	if len(emails) == 0 {
		return model.ResponseRateValue{Value: 0.0}
	}

	valid := validApplications(groupByCompany(emails, true))
	if len(valid) == 0 {
		return model.ResponseRateValue{Value: 0.0}
	}

	responses := 0
	for _, app := range valid {
		if app.hasResponse() {
			responses++
		}
	}

	rate := float64(responses) / float64(len(valid)) * 100
	return model.ResponseRateValue{Value: round1(rate)}
}

// titleBucket accumulates totals for one display job title.
type titleBucket struct {
	total     int
	responses int
}

// ResponseRateByTitle computes response rates per display job title,
// rounded to 2 decimal places. Applications without a usable job title
// ("unknown" or missing) are excluded. Output order follows first-seen
// display titles; map iteration order is never exposed.
func (a *Aggregator) ResponseRateByTitle(emails []*model.UserEmail) []model.TitleResponseRate {
	valid := validApplications(groupByCompany(emails, true))

	buckets := make(map[string]*titleBucket)
	var titles []string

	for _, app := range valid {
		if app.jobTitle == nil {
			continue
		}
		rawTitle := *app.jobTitle
		if rawTitle == "" || strings.ToLower(rawTitle) == model.StatusUnknown {
			continue
		}

		display := a.displayTitle(rawTitle, app.normalizedTitle)

		b, ok := buckets[display]
		if !ok {
			b = &titleBucket{}
			buckets[display] = b
			titles = append(titles, display)
		}
		b.total++
		if app.hasResponse() {
			b.responses++
		}
	}

	rates := make([]model.TitleResponseRate, 0, len(titles))
	for _, title := range titles {
		b := buckets[title]
		rates = append(rates, model.TitleResponseRate{
			Title: title,
			Rate:  round2(float64(b.responses) / float64(b.total) * 100),
		})
	}
	return rates
}

// displayTitle resolves the display form of a job title: the stored
// normalized title when present, else best-effort on-the-fly
// normalization, else the title-cased raw title. Normalization
// failures are logged and swallowed.
func (a *Aggregator) displayTitle(rawTitle string, normalized *string) string {
	if normalized != nil && strings.TrimSpace(*normalized) != "" {
		return titleCase(*normalized)
	}

	if a.normalize != nil {
		result, err := a.normalize(rawTitle)
		if err != nil {
			a.log().Warn("job title normalization failed",
				slog.String("title", rawTitle),
				slog.Any("error", err))
			return titleCase(rawTitle)
		}
		if strings.TrimSpace(result) != "" {
			return result
		}
	}

	return titleCase(rawTitle)
}

// titleCase capitalizes each word of a title. A fresh Caser is built
// per call; Casers are stateful and must not be shared across goroutines.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// round1 rounds to 1 decimal place, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
