package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"mini-news-api/internal/logger"
)

// Connector establishes the store connection on first use.
type Connector interface {
	Connect(ctx context.Context) error
}

// RequireDatabase returns a Gin middleware that makes sure the store is
// connected before a request reaches a handler. A failed connection ends the
// request with 500; the next request tries again. exposeErrors includes the
// connection error in the response.
func RequireDatabase(db Connector, exposeErrors bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Connect(c.Request.Context()); err != nil {
			logger.ErrorContext(c.Request.Context(), "Database connection failed",
				slog.String("error", err.Error()))

			detail := "Internal Server Error"
			if exposeErrors {
				detail = err.Error()
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Database connection failed",
				"error":   detail,
			})
			return
		}

		c.Next()
	}
}
