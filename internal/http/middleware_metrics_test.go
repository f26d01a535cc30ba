package httpx

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink captures emitted metrics for assertions.
type recordingSink struct {
	mu      sync.Mutex
	counts  []recordedMetric
	timings []recordedMetric
}

type recordedMetric struct {
	name string
	tags map[string]string
}

func (s *recordingSink) Count(name string, _ int64, tags map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts = append(s.counts, recordedMetric{name: name, tags: tags})
}

func (s *recordingSink) Gauge(string, float64, map[string]string) {}

func (s *recordingSink) Timing(name string, _ time.Duration, tags map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timings = append(s.timings, recordedMetric{name: name, tags: tags})
}

func TestMetrics_EmitsCountAndTiming(t *testing.T) {
	sink := &recordingSink{}
	handler := Metrics(sink)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/metrics/dashboard", nil))

	require.Len(t, sink.counts, 1)
	assert.Equal(t, "http.requests", sink.counts[0].name)
	assert.Equal(t, map[string]string{
		"method": "GET",
		"route":  "/api/metrics/dashboard",
		"status": "404",
	}, sink.counts[0].tags)

	require.Len(t, sink.timings, 1)
	assert.Equal(t, "http.request_duration", sink.timings[0].name)
}

func TestMetrics_NilSinkPassesThrough(t *testing.T) {
	handler := Metrics(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
