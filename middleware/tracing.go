package middleware

import (
	"main/utils"

	"github.com/gin-gonic/gin"
)

const requestIDHeader = "X-Request-ID"

// RequestTracingMiddleware tags each request with an ID for log
// correlation. An ID supplied by an upstream proxy is kept.
func RequestTracingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = utils.GenerateID()
		}

		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}
