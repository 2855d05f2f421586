package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/akwaflow/website/config"
	"github.com/akwaflow/website/controllers"
	"github.com/akwaflow/website/middleware"
	"github.com/akwaflow/website/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB, cfg config.AppConfig) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	// cors.New panics when no origin setting is present at all; an empty list
	// means the caller skipped configuration, not that every origin is banned.
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = origins
	}
	r.Use(cors.New(corsCfg))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("akwaflow_session", store))

	r.Use(middleware.BodySizeLimit(config.MaxContentLength))

	r.Static("/static", "./static")

	blogController := controllers.NewBlogController(db)
	contactController := controllers.NewContactController(db, cfg)
	adminAuthController := controllers.NewAdminAuthController(db)
	adminPostController := controllers.NewAdminPostController(db, cfg)
	adminContactController := controllers.NewAdminContactController(db)

	r.GET("/", blogController.Home)
	r.GET("/blog/:id", blogController.GetPost)
	r.GET("/api/blogs", blogController.Feed)
	r.POST("/contact", contactController.Submit)

	login := r.Group("/admin")
	login.Use(middleware.RateLimitMiddleware(cfg.LoginRateLimitPerMinute))
	login.GET("/login", adminAuthController.LoginForm)
	login.POST("/login", adminAuthController.Login)

	r.GET("/admin/logout", adminAuthController.Logout)

	admin := r.Group("/admin")
	admin.Use(middleware.AdminRequired())
	admin.GET("", adminAuthController.Dashboard)
	admin.GET("/posts", adminPostController.List)
	admin.GET("/posts/new", adminPostController.NewForm)
	admin.POST("/posts/new", adminPostController.Create)
	admin.GET("/posts/edit/:id", adminPostController.EditForm)
	admin.POST("/posts/edit/:id", adminPostController.Update)
	admin.GET("/posts/delete/:id", adminPostController.Delete)
	admin.GET("/contacts", adminContactController.List)
	admin.GET("/contacts/read/:id", adminContactController.MarkRead)
	admin.GET("/contacts/delete/:id", adminContactController.Delete)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "page not found")
	})

	return r
}
