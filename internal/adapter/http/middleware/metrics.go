package middleware

import (
	"time"

	"github.com/idyweb/Wallet-Service-with-Paystack/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records a request counter and latency sample for every served
// request. Paths are labelled by route template so cardinality stays
// bounded; requests that match no route share a single label.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
