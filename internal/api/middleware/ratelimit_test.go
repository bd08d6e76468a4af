package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/KeisukeTTTT/estate-management/internal/api/middleware"
)

func setupTestEngine(t *testing.T, refillRate, bucketSize int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	r := gin.New()
	rateLimiter := middleware.NewRateLimiterMiddleware(ctx, refillRate, bucketSize, zap.NewNop())
	r.Use(middleware.CORSMiddleware())
	r.Use(rateLimiter.Limit())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	return r
}

func get(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterMiddleware_Limit(t *testing.T) {
	router := setupTestEngine(t, 1, 1)

	assert.Equal(t, http.StatusOK, get(router, "1.2.3.4:12345").Code)
	// Second request immediately should fail
	assert.Equal(t, http.StatusTooManyRequests, get(router, "1.2.3.4:12345").Code)
	// Another client has its own bucket
	assert.Equal(t, http.StatusOK, get(router, "5.6.7.8:12345").Code)
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	router := setupTestEngine(t, 10, 10)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestLogger(zap.NewNop()))
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	assert.Equal(t, http.StatusTeapot, get(r, "1.1.1.1:1").Code)
}
