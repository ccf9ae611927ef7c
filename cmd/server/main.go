package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/yukikurage/timeclock-api/internal/config"
	"github.com/yukikurage/timeclock-api/internal/database"
	"github.com/yukikurage/timeclock-api/internal/logger"
	"github.com/yukikurage/timeclock-api/internal/routes"
	"github.com/yukikurage/timeclock-api/internal/services"
	"github.com/yukikurage/timeclock-api/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	if cfg.SeedDefaultUsers {
		if err := database.SeedDefaultUsers(db); err != nil {
			logrus.Fatalf("Failed to seed default users: %v", err)
		}
	}

	photos, err := storage.NewFilePhotoStore(afero.NewOsFs(), cfg.UploadDir)
	if err != nil {
		logrus.Fatalf("Failed to prepare upload storage: %v", err)
	}

	// Initialize AI service
	var summarizer services.ReportSummarizer
	if cfg.OpenAIAPIKey != "" {
		summarizer = services.NewAIService(cfg.OpenAIAPIKey)
	} else {
		logrus.Info("OPENAI_API_KEY not set, report summaries disabled")
	}

	router := routes.NewRouter(routes.Deps{
		Config:     cfg,
		DB:         db,
		Photos:     photos,
		Summarizer: summarizer,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.Infof("Server starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("HTTP shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
