package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/photo-share/api-go/logger"
	"github.com/photo-share/api-go/utils"
	"github.com/redis/go-redis/v9"
)

// RateLimit is a fixed-window redis limiter keyed by user (falling back to
// client IP). With a nil client it is a no-op, so the API stays usable when
// redis is down or not configured.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		who := c.ClientIP()
		if user := utils.GetUser(c); user != nil {
			who = strconv.FormatUint(uint64(user.UserID), 10)
		}
		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), who)

		ctx := c.Request.Context()
		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			// limiter failure never blocks traffic
			logger.Get().Warn().Err(err).Str("key", key).Msg("rate limiter unavailable")
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			c.Header("Retry-After", strconv.Itoa(int(window/time.Second)))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}
