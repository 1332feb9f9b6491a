package middleware

import (
	"fmt"
	"strconv"
	"time"

	"seekreviews/internal/api/response"
	infraRedis "seekreviews/internal/infra/redis"
	"seekreviews/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// fixedWindowIncr 窗口计数函数，测试中可替换
var fixedWindowIncr = infraRedis.FixedWindowIncr

// RateLimit 基于 Redis 固定窗口计数的限流中间件，按客户端 IP 计数。
// Redis 不可用时放行，限流不应把服务打挂
func RateLimit(scope string, max int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if infraRedis.Get() == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", scope, c.ClientIP())
		count, ttl, err := fixedWindowIncr(c.Request.Context(), key, window)
		if err != nil {
			logger.Warn("Rate limit check failed, allowing request",
				zap.String("scope", scope),
				zap.Error(err),
			)
			c.Next()
			return
		}

		if count > int64(max) {
			retryAfter := int64(ttl.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.TooManyRequests(c, "Too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
