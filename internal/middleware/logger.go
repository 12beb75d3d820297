package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tradelens/internal/logger"
)

// RequestLogger logs one structured line per request once the handler chain
// has finished: method, route, status, latency, response size and the
// request ID injected by RequestID.
//
// Behavior:
//   - Captures the start time before the chain runs.
//   - Logs at info level, or at warn with the last gin error when one was recorded.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RequestLogger())
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := logger.With("http")
		evt := log.Info()
		if len(c.Errors) > 0 {
			evt = log.Warn().Str("error", c.Errors.Last().Error())
		}

		rid, _ := c.Get(RequestIDKey)
		evt.
			Str("request_id", toString(rid)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", c.FullPath()).
			Int("status", c.Writer.Status()).
			Int("bytes", c.Writer.Size()).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
