package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ikkim/cosmos-backend/config"
	"github.com/ikkim/cosmos-backend/internal/app/controller"
	"github.com/ikkim/cosmos-backend/internal/app/repository"
	"github.com/ikkim/cosmos-backend/internal/app/service"
	"github.com/ikkim/cosmos-backend/internal/db"
	"github.com/ikkim/cosmos-backend/internal/middleware"
	"github.com/ikkim/cosmos-backend/internal/router"
	"github.com/ikkim/cosmos-backend/internal/scheduler"
	"github.com/ikkim/cosmos-backend/internal/storage"
	ws "github.com/ikkim/cosmos-backend/internal/websocket"
	"github.com/ikkim/cosmos-backend/pkg/logger"
	"github.com/ikkim/cosmos-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting COSMOS Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize redis (token blacklist)
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to initialize redis", err)
	}
	defer redis.Close()

	// Initialize WebSocket hub for realtime notifications
	hub := ws.NewHub()
	go hub.Run()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	galaxyRepo := repository.NewGalaxyRepository(db.GetDB())
	planetRepo := repository.NewPlanetRepository(db.GetDB())
	commentRepo := repository.NewCommentRepository(db.GetDB())
	notificationRepo := repository.NewNotificationRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	galaxyService := service.NewGalaxyService(galaxyRepo)
	planetService := service.NewPlanetService(planetRepo, galaxyRepo)
	notificationService := service.NewNotificationService(notificationRepo, hub)
	directory := service.NewDirectoryService(userRepo, galaxyRepo, planetRepo)
	commentService := service.NewCommentService(commentRepo, directory, directory, notificationService)

	// Initialize storage
	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	galaxyController := controller.NewGalaxyController(galaxyService)
	planetController := controller.NewPlanetController(planetService)
	commentController := controller.NewCommentController(commentService)
	notificationController := controller.NewNotificationController(notificationService, hub)
	uploadController := controller.NewUploadController(s3Storage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Start comment purge scheduler
	commentScheduler := scheduler.NewCommentScheduler(commentRepo, cfg.Comment.PurgeRetentionDays)
	if err := commentScheduler.Start(); err != nil {
		logger.Fatal("Failed to start comment scheduler", err)
	}
	defer commentScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		galaxyController,
		planetController,
		commentController,
		notificationController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
