package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Gnaveen516/Trade-Opportunities-API/internal/auth"
	"github.com/Gnaveen516/Trade-Opportunities-API/internal/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

func newTestRouter(keyring auth.Keyring, limiter *ratelimit.Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", Auth(keyring), RateLimit(limiter), func(c *gin.Context) {
		c.String(http.StatusOK, Identity(c))
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func testKeyring() auth.Keyring {
	return auth.NewStaticKeyring(map[string]string{"tok-1": "u1"})
}

func testLimiter(maxRequests int) *ratelimit.Limiter {
	return ratelimit.New(ratelimit.NewMemoryStore(), time.Minute, maxRequests)
}

func TestAuth_MissingHeader(t *testing.T) {
	r := newTestRouter(testKeyring(), testLimiter(5))

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestAuth_UnknownToken(t *testing.T) {
	r := newTestRouter(testKeyring(), testLimiter(5))

	w := doRequest(r, "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidTokenResolvesIdentity(t *testing.T) {
	r := newTestRouter(testKeyring(), testLimiter(5))

	w := doRequest(r, "tok-1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())
}

func TestRateLimit_RejectsWithRetryAfter(t *testing.T) {
	r := newTestRouter(testKeyring(), testLimiter(1))

	w := doRequest(r, "tok-1")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, "tok-1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEqual(t, "", w.Header().Get("Retry-After"))
}
