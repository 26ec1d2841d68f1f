package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/arkhipovds/leadbox/internal/config"
	"github.com/arkhipovds/leadbox/internal/server/http/handlers"
	"github.com/arkhipovds/leadbox/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CRMFacade, checker handlers.HealthChecker, logger *slog.Logger, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	if len(cfg.AllowedOrigins) > 0 {
		engine.Use(middleware.CORS(cfg.AllowedOrigins))
	}

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler()
	leadHandler := handlers.NewLeadHandler(facade)
	healthHandler := handlers.NewHealthHandler(checker)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)
	api.POST("/users", authHandler.Register)
	api.POST("/token", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/users/me", userHandler.Me)
	authed.POST("/leads", leadHandler.Create)
	authed.GET("/leads", leadHandler.List)
	authed.GET("/leads/:id", leadHandler.Get)
	authed.PUT("/leads/:id", leadHandler.Update)
	authed.DELETE("/leads/:id", leadHandler.Delete)

	return engine
}
