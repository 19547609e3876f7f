package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/mvoronin/userhub/internal/config"
	"github.com/mvoronin/userhub/internal/server/http/handlers"
	"github.com/mvoronin/userhub/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.AccountFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS(cfg.AllowedOrigin))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade)

	engine.POST("/auth/login", authHandler.Login)
	engine.POST("/user", userHandler.Create)

	protected := engine.Group("/user")
	protected.Use(middleware.AuthRequired(facade))
	protected.GET("", userHandler.List)
	protected.GET("/:id", userHandler.Get)
	protected.PUT("/:id", userHandler.Update)
	protected.DELETE("/:id", userHandler.Delete)

	return engine
}
