package middleware

import (
	"net/http"

	"mechshare/internal/utils"
	"mechshare/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware 按客户端IP限流
// limiter为nil时(未启用Redis)直接放行
func RateLimitMiddleware(limiter *ratelimit.RedisLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			// Redis不可用时不阻断请求
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "请求过于频繁，请稍后再试")
			c.Abort()
			return
		}

		c.Next()
	}
}
