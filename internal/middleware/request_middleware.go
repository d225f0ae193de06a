package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestID attaches a unique identifier to every request and echoes it in
// the response headers for correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("requestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// RequestLogger logs one structured line per request.
func RequestLogger(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		lgr.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestID", c.GetString("requestID")).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("clientIP", c.ClientIP()).
			Msg("request")
	}
}
