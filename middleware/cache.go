package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheControlMiddleware marks responses as cacheable for maxAge.
// Per-user payloads must use the "private" visibility.
func CacheControlMiddleware(visibility string, maxAge time.Duration) gin.HandlerFunc {
	directive := visibility + ", max-age=" + strconv.Itoa(int(maxAge.Seconds()))
	return func(c *gin.Context) {
		c.Header("Cache-Control", directive)
		c.Next()
	}
}
