package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/nano-forum/backend/internal/metrics"
	"github.com/anonto42/nano-forum/backend/internal/repositories"
	"github.com/anonto42/nano-forum/backend/internal/router"
	"github.com/anonto42/nano-forum/backend/internal/services"
	"github.com/anonto42/nano-forum/backend/pkg/config"
	"github.com/anonto42/nano-forum/backend/pkg/logger"
	"github.com/anonto42/nano-forum/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log, err := logger.Configure(cfg.LogLevel)
	if err != nil {
		logrus.Fatalf("Failed to configure logger: %v", err)
	}

	// Initialize database connections
	db, err := config.InitDB(cfg, logger.Gorm(log))
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	if err := repositories.Migrate(db.Postgres, log); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	policy, err := services.NewPolicy(cfg.CommentPolicy, cfg.LikePolicy)
	if err != nil {
		log.Fatalf("Invalid authorization policy: %v", err)
	}
	forum := services.NewForum(repositories.NewPostgresStore(db.Postgres), policy, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Validator
	e.Validator = validators.NewValidator()

	router.SetupMiddleware(e, log)
	router.SetupRoutes(e, forum, cfg, log)

	metricsServer := metrics.NewServer()
	go func() {
		if err := metricsServer.Start(":" + cfg.MetricsPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("Metrics server stopped")
		}
	}()

	collector := &metrics.Collector{DB: db.Postgres, Interval: 15 * time.Second, Logger: log}
	go func() {
		if err := collector.Run(ctx); err != nil {
			log.WithError(err).Error("Metrics collector stopped")
		}
	}()

	go func() {
		log.WithField("port", cfg.Port).Info("Starting forum API")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server stopped")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to shut down server")
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to shut down metrics server")
	}
}
