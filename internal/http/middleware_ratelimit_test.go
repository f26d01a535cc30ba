package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeLimiter is an in-memory fixed-window counter for tests.
type fakeLimiter struct {
	mu     sync.Mutex
	counts map[string]int
	err    error
	keys   []string
}

func newFakeLimiter() *fakeLimiter {
	return &fakeLimiter{counts: make(map[string]int)}
}

func (f *fakeLimiter) Allow(_ context.Context, key string, limit int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	f.counts[key]++
	f.keys = append(f.keys, key)
	return f.counts[key] <= limit, nil
}

func TestRateLimit_BlocksOverBudget(t *testing.T) {
	limiter := newFakeLimiter()
	handler := RateLimit(limiter, RateLimitConfig{Name: "test", Limit: 2, Logger: testLogger()})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "rate_limited")
}

func TestRateLimit_KeysByUserWhenAuthenticated(t *testing.T) {
	limiter := newFakeLimiter()
	handler := RateLimit(limiter, RateLimitConfig{Name: "test", Limit: 5, Logger: testLogger()})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(SetSessionInContext(r.Context(), testSession("alice")))
	handler.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, []string{"test:user:alice"}, limiter.keys)
}

func TestRateLimit_KeysByIPWhenAnonymous(t *testing.T) {
	limiter := newFakeLimiter()
	handler := RateLimit(limiter, RateLimitConfig{Name: "test", Limit: 5, Logger: testLogger()})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.1.2.3:54321"
	handler.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, []string{"test:ip:10.1.2.3"}, limiter.keys)
}

func TestRateLimit_FailsOpenOnLimiterError(t *testing.T) {
	limiter := newFakeLimiter()
	limiter.err = errors.New("redis down")
	handler := RateLimit(limiter, RateLimitConfig{Name: "test", Limit: 1, Logger: testLogger()})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_DisabledWithoutLimiter(t *testing.T) {
	handler := RateLimit(nil, RateLimitConfig{Name: "test", Limit: 1, Logger: testLogger()})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
