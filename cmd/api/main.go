package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"content-platform-api/internal/client"
	"content-platform-api/internal/config"
	"content-platform-api/internal/database"
	"content-platform-api/internal/job"
	"content-platform-api/internal/metrics"
	"content-platform-api/internal/repository"
	"content-platform-api/internal/router"
	"content-platform-api/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Content Platform API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.Bool("auth_enabled", cfg.Auth.Enabled),
	)

	// Initialize metrics
	m := metrics.NewWithLogger(logger)

	// Initialize database. Startup failure is not fatal; the connection is
	// retried in the background so the pod stays alive behind its readiness
	// probe.
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime.Std(),
	}

	prepareDB := func(db *gorm.DB) {
		if err := database.AutoMigrateWithRetry(db, logger, 3); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		}
		database.RegisterMetricsCallbacks(db, m)
		database.StartDBStatsCollector(db, m)
		metrics.NewBusinessMetricsCollector(db, m, logger).Start()
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second, logger, prepareDB)
	} else {
		database.SetDB(db)
		logger.Info("Database connected")
		prepareDB(db)
	}

	// Initialize storage client. Media uploads are disabled when storage is
	// not configured; the rest of the API still works.
	var storage service.StorageClient
	if cfg.Storage.Bucket != "" && cfg.Storage.Region != "" {
		storageClient, err := client.NewStorageClient(&cfg.Storage)
		if err != nil {
			logger.Warn("Failed to initialize storage client, media uploads disabled", zap.Error(err))
		} else {
			storage = storageClient
			logger.Info("Storage client initialized",
				zap.String("bucket", cfg.Storage.Bucket),
				zap.String("region", cfg.Storage.Region),
			)
		}
	} else {
		logger.Warn("Storage configuration incomplete, media uploads disabled")
	}

	// Start the orphaned-link cleanup schedule
	var cronRunner *cron.Cron
	if cfg.Cleanup.Enabled && db != nil {
		cronRunner = cron.New()
		cleanupJob := job.NewCleanupJob(repository.NewProjectRepository(db), m, logger)
		if _, err := cleanupJob.Schedule(cronRunner, cfg.Cleanup.Schedule); err != nil {
			logger.Warn("Failed to schedule cleanup job",
				zap.String("schedule", cfg.Cleanup.Schedule),
				zap.Error(err))
		} else {
			cronRunner.Start()
			logger.Info("Cleanup job scheduled", zap.String("schedule", cfg.Cleanup.Schedule))
		}
	}

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:             db,
		Logger:         logger,
		Metrics:        m,
		Storage:        storage,
		AuthEnabled:    cfg.Auth.Enabled,
		JWTSecret:      cfg.Auth.JWTSecret,
		BasePath:       cfg.Server.BasePath,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
	}

	// Start server in goroutine
	go func() {
		logger.Info("Content Platform API started",
			zap.String("address", srv.Addr),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	if cronRunner != nil {
		cronRunner.Stop()
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if db != nil {
		if err := database.Close(db); err != nil {
			logger.Error("Failed to close database", zap.Error(err))
		}
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
