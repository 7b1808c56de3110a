package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// Logger 访问日志
// 5xx记为error,4xx记为warn,其余info
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()

		var event *zerolog.Event
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		default:
			event = log.Info()
		}

		ctx := c.Request.Context()
		event.
			Str("request_id", c.GetString(ContextKeyRequestID)).
			Str("trace_id", tracing.ExtractTraceID(ctx)).
			Str("span_id", tracing.ExtractSpanID(ctx)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", c.Request.URL.RawQuery).
			Int("status", status).
			Dur("latency_ms", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("HTTP Request")
	}
}
