// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mini-news-api/internal/metrics"
)

// UnmatchedRoute is the path label for requests that matched no route.
const UnmatchedRoute = "unmatched"

// Metrics records request count, duration and in-flight gauges per route
// pattern. Requests to /metrics and to any of skipPaths are not recorded.
func Metrics(skipPaths ...string) gin.HandlerFunc {
	skip := map[string]struct{}{"/metrics": {}}
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.FullPath()]; ok {
			c.Next()
			return
		}

		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		path := routeLabel(c)
		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// routeLabel keeps label cardinality bounded: raw paths of unmatched
// requests are never used.
func routeLabel(c *gin.Context) string {
	if path := c.FullPath(); path != "" {
		return path
	}
	return UnmatchedRoute
}
