package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SAP-F-2025/practice-exam-service/internal/auth"
	"github.com/SAP-F-2025/practice-exam-service/internal/cache"
	"github.com/SAP-F-2025/practice-exam-service/internal/config"
	"github.com/SAP-F-2025/practice-exam-service/internal/handlers"
	"github.com/SAP-F-2025/practice-exam-service/internal/policy"
	"github.com/SAP-F-2025/practice-exam-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/practice-exam-service/internal/services"
	"github.com/SAP-F-2025/practice-exam-service/internal/utils"
	"github.com/SAP-F-2025/practice-exam-service/pkg"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.NewLogger(false).LogError(err, "Failed to load configuration")
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.IsProduction())
	slogger := utils.ToSlogLogger(logger)

	if err := run(cfg, logger); err != nil {
		slogger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger utils.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slogger := utils.ToSlogLogger(logger)

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	examCache := cache.NewNoopCache()
	if cfg.CacheEnabled && cfg.RedisURL != "" {
		client, err := pkg.NewRedisClient(ctx, cfg)
		if err != nil {
			logger.Warn("Redis unavailable, exam list caching disabled", "error", err)
		} else {
			defer client.Close()
			examCache = cache.NewRedisCache(client, logger)
		}
	}

	publisher, err := cfg.Events.CreateEventPublisher(slogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close event publisher", "error", err)
		}
	}()

	verifier, err := auth.NewVerifier(cfg.Auth)
	if err != nil {
		return err
	}

	if cfg.AdminEmail == "" {
		logger.Warn("ADMIN_EMAIL not set, admin routes will refuse every caller")
	}

	serviceManager := services.NewServiceManager(services.Dependencies{
		Repo:      postgres.NewRepository(db),
		Policy:    policy.New(cfg.AdminEmail),
		Cache:     examCache,
		Publisher: publisher,
		CacheTTL:  cfg.CacheTTL,
		Logger:    slogger,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	handlers.NewHandlerManager(serviceManager, logger).
		SetupRoutes(router, auth.RequireAuth(verifier, cfg.Auth.CookieName, logger))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", "timeout", cfg.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
