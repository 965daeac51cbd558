package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"mini-news-api/internal/logger"
)

// Logger returns a Gin middleware that writes one structured log line per request.
// Server errors are logged at error level, client errors at warn.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := c.Writer.Status()

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.Int("size", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		ctx := c.Request.Context()
		switch {
		case status >= 500:
			logger.ErrorContext(ctx, "HTTP request", attrs...)
		case status >= 400:
			logger.WarnContext(ctx, "HTTP request", attrs...)
		default:
			logger.InfoContext(ctx, "HTTP request", attrs...)
		}
	}
}
