package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petcare/internal/transport/http/response"
)

// MaxBodyBytes caps the request body size.
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Err() != nil && !c.Writer.Written() {
			response.Error(c, http.StatusBadRequest, "richiesta troppo grande")
			c.Abort()
		}
	}
}
