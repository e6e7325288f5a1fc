package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"petcare/internal/seed"
	"petcare/internal/transport/http/response"
)

// EnsureReady runs the lazy store initialization before every request.
// API routes fail closed on an unready store; page routes render anyway
// so the landing page stays up while the database recovers.
func EnsureReady(init *seed.Initializer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := init.EnsureReady(c.Request.Context()); err != nil {
			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				response.Error(c, http.StatusInternalServerError, response.MsgInternal)
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
