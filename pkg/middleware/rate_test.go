package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/orderdesk/pkg/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitBlocksAfterMax(t *testing.T) {
	h := middleware.RateLimit(2, time.Minute)(okHandler())

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/order", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do().Code)
	assert.Equal(t, http.StatusOK, do().Code)

	rec := do()
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"Too Many Requests"}`, rec.Body.String())
}

func TestRateLimitTracksClientsSeparately(t *testing.T) {
	h := middleware.RateLimit(1, time.Minute)(okHandler())

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/order", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1:5000"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:5000"))

	// A different client still has its own budget.
	assert.Equal(t, http.StatusOK, do("10.0.0.2:5000"))
}

func TestRateLimitHonoursForwardedFor(t *testing.T) {
	h := middleware.RateLimit(1, time.Minute)(okHandler())

	do := func(fwd string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/order", nil)
		req.RemoteAddr = "127.0.0.1:9999"
		req.Header.Set("X-Forwarded-For", fwd)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("203.0.113.7"))
	assert.Equal(t, http.StatusTooManyRequests, do("203.0.113.7"))
	assert.Equal(t, http.StatusOK, do("203.0.113.8"))
}
