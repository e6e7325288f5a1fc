package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"petcare/internal/core/auth"
	"petcare/internal/service"
	"petcare/internal/transport/http/middleware"
	"petcare/internal/transport/http/response"
)

type Admin struct {
	admin    *service.Admin
	sessions *auth.Sessions
	log      *zap.Logger
}

func NewAdmin(admin *service.Admin, sessions *auth.Sessions, log *zap.Logger) *Admin {
	return &Admin{admin: admin, sessions: sessions, log: log}
}

func (h *Admin) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{})
}

// Login handles the credential form. A failed attempt re-renders the
// form with the generic message; no lockout, no rate limiting beyond the
// global middleware.
func (h *Admin) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if !h.admin.CheckCredentials(username, password) {
		c.HTML(http.StatusOK, "admin_login.html", gin.H{
			"Error": response.MsgBadCredentials,
		})
		return
	}

	tok, err := h.sessions.Issue()
	if err != nil {
		h.log.Error("errore emissione sessione admin", zap.Error(err))
		c.HTML(http.StatusOK, "admin_login.html", gin.H{
			"Error": response.MsgInternal,
		})
		return
	}
	c.SetCookie(auth.CookieName, tok, int(h.sessions.TTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (h *Admin) Dashboard(c *gin.Context) {
	data := gin.H{}
	if claims, ok := middleware.AdminClaims(c); ok && claims.ExpiresAt != nil {
		data["SessionExpiry"] = claims.ExpiresAt.Format("15:04")
	}
	c.HTML(http.StatusOK, "admin_dashboard.html", data)
}

func (h *Admin) Logout(c *gin.Context) {
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	h.log.Info("admin logout")
	c.Redirect(http.StatusFound, "/admin/login")
}

func (h *Admin) Stats(c *gin.Context) {
	stats, err := h.admin.Stats()
	if err != nil {
		h.log.Error("errore statistiche admin", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, response.MsgStatsFailed)
		return
	}
	c.JSON(http.StatusOK, stats)
}
