// @title           Campaign Space API
// @version         1.0
// @description     Tabletop RPG character profile and social API
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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

	_ "campaign-space-api/docs" // Swagger docs import

	"campaign-space-api/internal/client"
	"campaign-space-api/internal/config"
	"campaign-space-api/internal/database"
	"campaign-space-api/internal/job"
	"campaign-space-api/internal/metrics"
	"campaign-space-api/internal/repository"
	"campaign-space-api/internal/router"
	"campaign-space-api/internal/service"
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

	logger.Info("Starting Campaign Space API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
	)

	// Initialize database
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second)
		db = database.GetDB()
	} else {
		logger.Info("Database connected successfully")

		if err := database.SafeAutoMigrateWithRetry(db, logger, 3); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		} else {
			logger.Info("Database migrations completed")
		}
	}

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	logger.Info("Metrics initialized")

	if db != nil {
		database.RegisterMetricsCallbacks(db, m)
		defer close(database.StartDBStatsCollector(db, m))

		collector := metrics.NewBusinessMetricsCollector(db, m, logger)
		collector.Start()
		defer collector.Stop()
	}

	// Initialize Redis for the profile view counter (optional)
	if err := database.InitRedis(cfg.Redis, logger); err != nil {
		logger.Warn("Failed to connect to Redis, view counts fall back to the database",
			zap.Error(err))
	}

	// Initialize S3 client
	var s3Client client.S3ClientInterface
	if cfg.S3.Bucket != "" && cfg.S3.Region != "" {
		c, err := client.NewS3Client(&cfg.S3)
		if err != nil {
			logger.Warn("Failed to initialize S3 client, media features may be limited", zap.Error(err))
		} else {
			s3Client = c
			logger.Info("S3 client initialized",
				zap.String("bucket", cfg.S3.Bucket),
				zap.String("region", cfg.S3.Region),
			)
		}
	} else {
		logger.Warn("S3 configuration incomplete, media features disabled")
	}

	// View counter buffers profile views in Redis and flushes them to the DB
	characterRepo := repository.NewCharacterRepository(db)
	viewCounter := service.NewViewCounter(database.GetRedis(), characterRepo, logger)
	viewCounter.Start()
	defer viewCounter.Stop()

	// Schedule the orphaned media retry sweep
	scheduler := cron.New()
	if s3Client != nil {
		cleanupJob := job.NewCleanupJob(repository.NewOrphanedMediaRepository(db), s3Client, logger)
		if _, err := scheduler.AddJob("*/10 * * * *", cleanupJob); err != nil {
			logger.Error("Failed to schedule orphaned media cleanup", zap.Error(err))
		} else {
			logger.Info("Orphaned media cleanup scheduled", zap.String("schedule", "*/10 * * * *"))
		}
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:          db,
		Logger:      logger,
		JWTSecret:   cfg.JWT.Secret,
		BasePath:    cfg.Server.BasePath,
		CORSOrigins: cfg.Server.CORSOrigins,
		Upload:      cfg.Upload,
		Metrics:     m,
		S3Client:    s3Client,
		ViewCounter: viewCounter,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Campaign Space API started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)),
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

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
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
