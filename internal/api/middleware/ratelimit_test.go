package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"scamintel-lab/internal/config"
)

type fakeLimitStore struct {
	allowed   bool
	remaining int64
	reset     time.Time
	err       error
	calls     int
}

func (f *fakeLimitStore) CheckRateLimit(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, time.Time, error) {
	f.calls++
	return f.allowed, f.remaining, f.reset, f.err
}

func rateLimitedHandler(store *fakeLimitStore, rpm int) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return RateLimiter(store, config.RateLimitConfig{Enabled: true, RequestsPerMinute: rpm})(next)
}

func TestRateLimiter_AllowedSetsHeaders(t *testing.T) {
	reset := time.Now().Add(30 * time.Second)
	store := &fakeLimitStore{allowed: true, remaining: 9, reset: reset}
	h := rateLimitedHandler(store, 60)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/analyze", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if store.calls != 1 {
		t.Errorf("store called %d times, want 1", store.calls)
	}
	if got := w.Header().Get("X-RateLimit-Limit"); got != "60" {
		t.Errorf("X-RateLimit-Limit = %q", got)
	}
	if got := w.Header().Get("X-RateLimit-Remaining"); got != "9" {
		t.Errorf("X-RateLimit-Remaining = %q", got)
	}
	if got := w.Header().Get("X-RateLimit-Reset"); got != strconv.FormatInt(reset.Unix(), 10) {
		t.Errorf("X-RateLimit-Reset = %q", got)
	}
}

func TestRateLimiter_BlockedReturns429(t *testing.T) {
	store := &fakeLimitStore{allowed: false, remaining: 0, reset: time.Now().Add(45 * time.Second)}
	h := rateLimitedHandler(store, 60)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/analyze", nil))

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("Retry-After header missing")
	}
	if got := w.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Errorf("X-RateLimit-Remaining = %q", got)
	}
}

func TestRateLimiter_StoreErrorAllowsRequest(t *testing.T) {
	store := &fakeLimitStore{err: errors.New("redis down")}
	h := rateLimitedHandler(store, 60)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/analyze", nil))

	if w.Code != http.StatusOK {
		t.Errorf("store failure must not block requests, status = %d", w.Code)
	}
	if w.Header().Get("X-RateLimit-Limit") != "" {
		t.Error("headers must not be set when the counter is unavailable")
	}
}

func TestRateLimiter_SkipsPreflight(t *testing.T) {
	store := &fakeLimitStore{allowed: false}
	h := rateLimitedHandler(store, 60)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/v1/analyze", nil))

	if w.Code != http.StatusOK {
		t.Errorf("OPTIONS must bypass limiting, status = %d", w.Code)
	}
	if store.calls != 0 {
		t.Errorf("store called %d times for preflight", store.calls)
	}
}
