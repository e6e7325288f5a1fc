package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"petcare/internal/core/auth"
	"petcare/internal/transport/http/response"
)

const ctxAdminSession = "adminSession"

// AdminSession verifies the signed session cookie. API callers get a
// JSON 401; page requests are redirected to the login form. The parsed
// claims are stored in the context so handlers never consult globals.
func AdminSession(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, err := c.Cookie(auth.CookieName)
		if err == nil && tok != "" {
			if claims, verr := sessions.Verify(tok); verr == nil {
				c.Set(ctxAdminSession, claims)
				c.Next()
				return
			}
		}
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			response.Error(c, http.StatusUnauthorized, response.MsgUnauthorized)
			c.Abort()
			return
		}
		c.Redirect(http.StatusFound, "/admin/login")
		c.Abort()
	}
}

// AdminClaims returns the verified session claims set by AdminSession.
func AdminClaims(c *gin.Context) (*auth.SessionClaims, bool) {
	v, ok := c.Get(ctxAdminSession)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.SessionClaims)
	return claims, ok
}
