package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func request(h http.Handler, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_BurstThenReject(t *testing.T) {
	h := rateLimitWith(newIPRateLimiter(0.001, 2))(okHandler())

	assert.Equal(t, http.StatusOK, request(h, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, request(h, "10.0.0.1:1235").Code)

	rec := request(h, "10.0.0.1:1236")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"too many requests"}`, rec.Body.String())
}

func TestRateLimit_PerIP(t *testing.T) {
	h := rateLimitWith(newIPRateLimiter(0.001, 1))(okHandler())

	assert.Equal(t, http.StatusOK, request(h, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, request(h, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, request(h, "10.0.0.2:1234").Code)
}

func TestRateLimit_RemoteAddrWithoutPort(t *testing.T) {
	h := rateLimitWith(newIPRateLimiter(0.001, 1))(okHandler())

	assert.Equal(t, http.StatusOK, request(h, "10.0.0.9").Code)
	assert.Equal(t, http.StatusTooManyRequests, request(h, "10.0.0.9").Code)
}

func TestIPRateLimiter_Evict(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := newIPRateLimiter(1, 1)
	rl.now = func() time.Time { return now }

	rl.getLimiter("10.0.0.1")
	now = now.Add(5 * time.Minute)
	rl.getLimiter("10.0.0.2")
	now = now.Add(6 * time.Minute)

	assert.Equal(t, 1, rl.evict(visitorTTL))
	assert.NotContains(t, rl.visitors, "10.0.0.1")
	assert.Contains(t, rl.visitors, "10.0.0.2")
}

func TestIPRateLimiter_ReusesLimiter(t *testing.T) {
	rl := newIPRateLimiter(1, 1)
	assert.Same(t, rl.getLimiter("10.0.0.1"), rl.getLimiter("10.0.0.1"))
}
