package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"petcare/internal/transport/http/response"
)

// ConcurrencyLimit caps in-flight requests so the small storage pool is
// never overrun; exhaustion surfaces as 503 rather than pool timeouts.
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c, 1); err != nil {
			response.Error(c, http.StatusServiceUnavailable, response.MsgInternal)
			c.Abort()
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
