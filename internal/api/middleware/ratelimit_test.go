package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	infraRedis "seekreviews/internal/infra/redis"
	"seekreviews/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type incrFunc func(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)

func setupRateLimitTest(t *testing.T, incr incrFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, logger.Init("error", "console", "stdout", ""))

	// 客户端只是非 nil 占位，计数走注入的 incr，不会真正连 Redis
	prevClient := infraRedis.Client
	prevIncr := fixedWindowIncr
	infraRedis.Client = goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1"})
	fixedWindowIncr = incr
	t.Cleanup(func() {
		infraRedis.Client = prevClient
		fixedWindowIncr = prevIncr
	})

	r := gin.New()
	r.GET("/ping", RateLimit("test", 2, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimitAllowsUnderLimit(t *testing.T) {
	r := setupRateLimitTest(t, func(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
		return 1, time.Minute, nil
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitRejectsOverLimit(t *testing.T) {
	r := setupRateLimitTest(t, func(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
		return 3, 30 * time.Second, nil
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestRateLimitRetryAfterAtLeastOneSecond(t *testing.T) {
	r := setupRateLimitTest(t, func(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
		return 3, 200 * time.Millisecond, nil
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

// Redis 出错时放行，限流不应把服务打挂
func TestRateLimitFailsOpenOnRedisError(t *testing.T) {
	r := setupRateLimitTest(t, func(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
		return 0, 0, errors.New("connection refused")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitSkipsWithoutRedis(t *testing.T) {
	called := false
	r := setupRateLimitTest(t, func(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
		called = true
		return 0, 0, nil
	})
	infraRedis.Client = nil

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, called)
}
