package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "pdfcheck/docs"
	"pdfcheck/internal/config"
	"pdfcheck/internal/handler"
	"pdfcheck/internal/middleware"
	"pdfcheck/internal/service"
)

// Handlers groups the HTTP handlers the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Analysis  *handler.AnalysisHandler
	History   *handler.HistoryHandler
	Checklist *handler.ChecklistHandler
	Health    *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, logger *zap.Logger, authSvc service.AuthService, h Handlers) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = cfg.Upload.MaxBytes()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	if !cfg.Server.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/logout", h.Auth.Logout)

	// Protected routes - require a valid session
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc, cfg.Auth.CookieName))

	protected.POST("/checklists/generate", h.Analysis.GenerateChecklist)
	protected.POST("/analyses", h.Analysis.RunAnalysis)

	history := protected.Group("/history")
	history.GET("", h.History.List)
	history.GET("/:id", h.History.GetByID)
	history.DELETE("/:id", h.History.Delete)
	history.GET("/:id/export", h.History.Export)

	saved := protected.Group("/saved-checklists")
	saved.GET("", h.Checklist.List)
	saved.POST("", h.Checklist.Create)
	saved.POST("/import", h.Checklist.Import)
	saved.POST("/export", h.Checklist.Export)
	saved.GET("/:id", h.Checklist.GetByID)
	saved.DELETE("/:id", h.Checklist.Delete)

	return r
}
