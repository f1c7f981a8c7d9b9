package rest

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(rps float64, now *time.Time) *RateLimiter {
	rl := NewRateLimiter(rps)
	rl.now = func() time.Time { return *now }
	rl.lastRefill = *now
	return rl
}

func TestRateLimiter_Burst(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	rl := newTestLimiter(5, &now)

	for i := range 5 {
		assert.True(t, rl.Allow(), "request %d", i+1)
	}
	assert.False(t, rl.Allow())
}

func TestRateLimiter_Refill(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	rl := newTestLimiter(10, &now)

	for range 10 {
		rl.Allow()
	}
	require.False(t, rl.Allow())

	now = now.Add(100 * time.Millisecond)
	assert.True(t, rl.Allow())
	assert.False(t, rl.Allow())
}

func TestRateLimiter_MaxTokensCapped(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	rl := newTestLimiter(5, &now)
	now = now.Add(10 * time.Second)

	allowed := 0
	for range 10 {
		if rl.Allow() {
			allowed++
		}
	}
	assert.Equal(t, 5, allowed)
}

func TestRateLimitMiddleware_Rejects(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	handler := RateLimitMiddleware(newTestLimiter(1, &now))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/risk/score", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request", entry["msg"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/v1/risk/score", entry["path"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, "10.0.0.1:5000", entry["remote_addr"])
	assert.Contains(t, entry, "duration_ms")
}
