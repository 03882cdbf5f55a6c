package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gin-items/config"
	"gin-items/infra"
	"gin-items/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := infra.NewLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTracing, err := infra.SetupTracing(cfg)
	if err != nil {
		logger.Fatal("Failed to set up tracing", zap.Error(err))
	}

	db, err := infra.SetupDB(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if cfg.AutoMigrate {
		if err := infra.Migrate(db); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	svc := routes.NewServices(cfg, db, logger)

	if cfg.FirstSuperuserEmail != "" {
		_, created, err := svc.Users.EnsureSuperuser(context.Background(), cfg.FirstSuperuserEmail, cfg.FirstSuperuserPassword)
		if err != nil {
			logger.Fatal("Failed to create first superuser", zap.Error(err))
		}
		if created {
			logger.Info("Created first superuser", zap.String("email", cfg.FirstSuperuserEmail))
		}
	}

	r := routes.SetupRouter(cfg, svc, logger)

	srv := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.Error("Failed to flush traces", zap.Error(err))
	}
	logger.Info("Server exited")
}
