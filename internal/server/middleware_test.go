package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"sportcenter/internal/logger"
)

func newTestRouter(mw ...gin.HandlerFunc) *gin.Engine {
	logger.Init()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(mw...)
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func get(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMetricsMiddleware(t *testing.T) {
	router := newTestRouter(MetricsMiddleware())
	assert.Equal(t, http.StatusOK, get(router).Code)
}

func TestRequestLoggingMiddleware(t *testing.T) {
	router := newTestRouter(RequestLoggingMiddleware())
	assert.Equal(t, http.StatusOK, get(router).Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	router := newTestRouter(RateLimitMiddleware(1, 2))

	// burst of 2 admits the first two requests, then 429 until refill
	assert.Equal(t, http.StatusOK, get(router).Code)
	assert.Equal(t, http.StatusOK, get(router).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(router).Code)
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	router := newTestRouter(corsMiddleware())

	req := httptest.NewRequest("OPTIONS", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
