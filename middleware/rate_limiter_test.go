package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"staffplan/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddlewareUsesConfiguredLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	prev := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 2
	defer func() { config.AppConfig.MaxRequestsPerMin = prev }()

	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Distinct IP so the lazily created limiter picks up the configured value.
	do := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", "198.51.100.7")
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusTooManyRequests, do())
}

func TestRateLimitMiddlewareDefaultsWithoutConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	prev := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 0
	defer func() { config.AppConfig.MaxRequestsPerMin = prev }()

	assert.Equal(t, 100, requestsPerMinute())
}
