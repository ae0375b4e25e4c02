package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"estatevoice-backend/internal/api/routes"
	"estatevoice-backend/internal/cache"
	"estatevoice-backend/internal/config"
	"estatevoice-backend/internal/database"
	"estatevoice-backend/internal/repository"
	"estatevoice-backend/internal/service"
	"estatevoice-backend/internal/tasks"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "estatevoice-backend/docs" // This is needed for swag
)

//	@title			EstateVoice Backend API
//	@version		1.0
//	@description	Multi-tenant backend for voice-first real estate lead qualification: voice agents, conversations, leads, property sync and market insights.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Redis backs the cache, refresh token store and task queue
	redisCache, err := cache.NewRedis(cfg.RedisURL)
	if err != nil {
		logrus.Fatal("Failed to connect to Redis:", err)
	}
	defer redisCache.Close()

	taskClient, err := tasks.NewClient(cfg.RedisURL)
	if err != nil {
		logrus.Fatal("Failed to initialize task client:", err)
	}
	defer taskClient.Close()

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(&routes.Dependencies{
		DB:         db,
		Config:     cfg,
		Cache:      redisCache,
		TaskClient: taskClient,
		Logger:     logrus.StandardLogger(),
	})
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	// Start the background task worker alongside the HTTP server
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	worker, err := buildWorker(db, cfg, redisCache, taskClient)
	if err != nil {
		logrus.Fatal("Failed to initialize task worker:", err)
	}
	go func() {
		if err := worker.Run(ctx); err != nil {
			logrus.Fatal("Task worker stopped:", err)
		}
	}()

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func buildWorker(db *gorm.DB, cfg *config.Config, store cache.Cache, taskClient *tasks.Client) (*tasks.Server, error) {
	logger := logrus.StandardLogger()

	leadRepo := repository.NewLeadRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	conversationRepo := repository.NewConversationRepository(db)
	snapshotRepo := repository.NewMarketSnapshotRepository(db)

	validate := validator.New()
	mlsService := service.NewMLSService(cfg, logger)
	mailerService := service.NewMailerService(cfg, logger)
	propertyService := service.NewPropertyService(propertyRepo, mlsService, taskClient, validate, logger)
	conversationService := service.NewConversationService(conversationRepo, leadRepo, taskClient, validate, logger)
	marketService := service.NewMarketService(snapshotRepo, mlsService, store, logger)

	handlers := tasks.NewHandlers(propertyService, conversationService, marketService, mailerService, leadRepo, tenantRepo, logger)
	return tasks.NewServer(cfg.RedisURL, handlers, logger)
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
