package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"petcare/internal/core/auth"
	"petcare/internal/seed"
	"petcare/internal/service"
	"petcare/internal/transport/http/handler"
	mdw "petcare/internal/transport/http/middleware"
	"petcare/internal/transport/http/response"
	"petcare/internal/web"
)

type Deps struct {
	Log      *zap.Logger
	DB       *gorm.DB
	Init     *seed.Initializer
	Sessions *auth.Sessions

	Directory *service.Directory
	Accounts  *service.Accounts
	Bookings  *service.Bookings
	Admin     *service.Admin

	Debug bool
}

// NewEngine assembles the single public+admin engine.
func NewEngine(d Deps) *gin.Engine {
	if d.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.SetHTMLTemplate(web.Templates())

	r.Use(
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(d.Log),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
		mdw.EnsureReady(d.Init),
	)

	healthH := handler.NewHealth(d.DB, d.Log)
	pagesH := handler.NewPages()
	prosH := handler.NewProfessionals(d.Directory)
	accountsH := handler.NewAccounts(d.Accounts)
	bookingsH := handler.NewBookings(d.Bookings)
	adminH := handler.NewAdmin(d.Admin, d.Sessions, d.Log)

	r.GET("/", pagesH.Landing)
	r.GET("/health", healthH.Check)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/professionals", prosH.List)
		api.GET("/professionals/:id", prosH.Get)
		api.POST("/register", accountsH.Register)
		api.POST("/bookings", bookingsH.Create)

		apiAdmin := api.Group("/admin")
		apiAdmin.Use(mdw.AdminSession(d.Sessions))
		apiAdmin.GET("/stats", adminH.Stats)
	}

	admin := r.Group("/admin")
	{
		admin.GET("/login", adminH.LoginPage)
		admin.POST("/login", adminH.Login)
		admin.GET("/logout", adminH.Logout)

		adminAuthed := admin.Group("")
		adminAuthed.Use(mdw.AdminSession(d.Sessions))
		adminAuthed.GET("/dashboard", adminH.Dashboard)
	}

	// API 404s stay JSON; everything else falls back to the landing page.
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			response.Error(c, http.StatusNotFound, response.MsgEndpointNotFound)
			return
		}
		pagesH.NotFoundLanding(c)
	})

	return r
}
