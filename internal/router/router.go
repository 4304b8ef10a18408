package router

import (
	"net/http"

	"github.com/anonto42/nano-forum/backend/internal/handlers"
	"github.com/anonto42/nano-forum/backend/internal/metrics"
	"github.com/anonto42/nano-forum/backend/internal/middleware"
	"github.com/anonto42/nano-forum/backend/internal/services"
	"github.com/anonto42/nano-forum/backend/pkg/config"
	"github.com/anonto42/nano-forum/backend/pkg/logger"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, log *logrus.Logger) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.RequestID())
	e.Use(eMiddleware.CORS())
	e.Use(logger.RequestLogger(log))
	e.Use(metrics.Middleware())
	log.Info("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, forum services.Service, cfg *config.Config, log *logrus.Logger) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "nano-forum"})
	})

	// Reads are public; every mutation below is wrapped with auth
	auth := middleware.JWTAuthMiddleware(cfg.JWTSecret)
	api := e.Group("/api/v1")

	authHandler := handlers.NewAuthHandler(forum, cfg.JWTSecret, cfg.JWTTTL)
	authHandler.RegisterAuthRoutes(api.Group("/auth"), auth)
	log.Info("Auth routes configured.")

	userHandler := handlers.NewUserHandler(forum)
	userHandler.RegisterUserRoutes(api)
	log.Info("User routes configured.")

	postHandler := handlers.NewPostHandler(forum)
	postHandler.RegisterPostRoutes(api, auth)
	log.Info("Post routes configured.")

	commentHandler := handlers.NewCommentHandler(forum)
	commentHandler.RegisterCommentRoutes(api, auth)
	log.Info("Comment routes configured.")

	likeHandler := handlers.NewLikeHandler(forum)
	likeHandler.RegisterLikeRoutes(api, auth)
	log.Info("Like routes configured.")

	log.Info("All routes configured.")
}
