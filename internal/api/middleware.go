package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/accesslens/accesslens/internal/logger"
)

// RequestLogging logs method, path, status and duration for every request.
// Bodies are never logged: generation requests carry persona data, which
// must stay out of logs.
func RequestLogging(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request handled", map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"durationMs": time.Since(start).Milliseconds(),
		})
	}
}
