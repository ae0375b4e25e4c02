package routes

import (
	"time"

	"estatevoice-backend/internal/api/handlers"
	"estatevoice-backend/internal/api/middleware"
	"estatevoice-backend/internal/auth"
	"estatevoice-backend/internal/cache"
	"estatevoice-backend/internal/config"
	"estatevoice-backend/internal/database/models"
	"estatevoice-backend/internal/realtime"
	"estatevoice-backend/internal/repository"
	"estatevoice-backend/internal/service"
	"estatevoice-backend/internal/voice/tts"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies carries the shared infrastructure handles built in main
type Dependencies struct {
	DB         *gorm.DB
	Config     *config.Config
	Cache      cache.Cache
	TaskClient service.TaskEnqueuer
	Logger     *logrus.Logger
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps *Dependencies) (*gin.Engine, error) {
	cfg := deps.Config
	log := deps.Logger

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()

	// Repositories
	tenantRepo := repository.NewTenantRepository(deps.DB)
	userRepo := repository.NewUserRepository(deps.DB)
	leadRepo := repository.NewLeadRepository(deps.DB)
	propertyRepo := repository.NewPropertyRepository(deps.DB)
	voiceAgentRepo := repository.NewVoiceAgentRepository(deps.DB)
	conversationRepo := repository.NewConversationRepository(deps.DB)
	snapshotRepo := repository.NewMarketSnapshotRepository(deps.DB)

	// External service wrappers
	mlsService := service.NewMLSService(cfg, log)
	crmService := service.NewCRMService(cfg, log)
	assistantService := service.NewAssistantService(cfg, log)

	// TTS: ElevenLabs first, Cartesia as fallback
	var ttsProviders []tts.Provider
	if cfg.ElevenLabsAPIKey != "" {
		ttsProviders = append(ttsProviders, tts.NewElevenLabs(cfg.ElevenLabsAPIKey, cfg.ElevenLabsBaseURL))
	}
	if cfg.CartesiaAPIKey != "" {
		ttsProviders = append(ttsProviders, tts.NewCartesia(cfg.CartesiaAPIKey, cfg.CartesiaBaseURL))
	}
	ttsProvider := tts.Provider(tts.NewFailover(ttsProviders...))

	// Domain services
	tenantService := service.NewTenantService(tenantRepo, validate)
	userService := service.NewUserService(userRepo, validate)
	leadService := service.NewLeadService(leadRepo, conversationRepo, crmService, deps.TaskClient, validate, log)
	propertyService := service.NewPropertyService(propertyRepo, mlsService, deps.TaskClient, validate, log)
	voiceAgentService := service.NewVoiceAgentService(voiceAgentRepo, validate)
	conversationService := service.NewConversationService(conversationRepo, leadRepo, deps.TaskClient, validate, log)
	marketService := service.NewMarketService(snapshotRepo, mlsService, deps.Cache, log)

	// Auth
	authService, err := auth.NewAuthService(&auth.Config{
		JWTSecret:       cfg.JWTSecret,
		AccessTokenTTL:  time.Duration(cfg.AccessTokenTTLMin) * time.Minute,
		RefreshTokenTTL: time.Duration(cfg.RefreshTokenTTLHrs) * time.Hour,
	}, userRepo, deps.Cache)
	if err != nil {
		return nil, err
	}
	authHandlers := auth.NewAuthHandlers(authService, tenantService, userService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Handlers
	hub := realtime.NewHub()
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Cache)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	userHandler := handlers.NewUserHandler(userService)
	leadHandler := handlers.NewLeadHandler(leadService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	voiceAgentHandler := handlers.NewVoiceAgentHandler(voiceAgentService)
	conversationHandler := handlers.NewConversationHandler(conversationService)
	marketHandler := handlers.NewMarketHandler(marketService)
	voiceHandler := handlers.NewVoiceHandler(ttsProvider, hub, voiceAgentService, conversationService, leadService, assistantService, log)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandlers.Register)
		authGroup.POST("/login", authHandlers.Login)
		authGroup.POST("/refresh", authHandlers.Refresh)
		authGroup.POST("/logout", authHandlers.Logout)
		authGroup.POST("/validate", authHandlers.Validate)
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	adminOnly := authMiddleware.RequireRole(string(models.UserRoleOwner), string(models.UserRoleAdmin))

	tenants := v1.Group("/tenants")
	{
		tenants.GET("/me", tenantHandler.GetTenant)
		tenants.PATCH("/me", adminOnly, tenantHandler.UpdateTenant)
	}

	users := v1.Group("/users")
	{
		users.POST("", adminOnly, userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PATCH("/:id", adminOnly, userHandler.UpdateUser)
		users.DELETE("/:id", adminOnly, userHandler.DeleteUser)
	}

	leads := v1.Group("/leads")
	{
		leads.POST("", leadHandler.CreateLead)
		leads.GET("", leadHandler.ListLeads)
		leads.GET("/:id", leadHandler.GetLead)
		leads.PATCH("/:id", leadHandler.UpdateLead)
		leads.DELETE("/:id", leadHandler.DeleteLead)
		leads.POST("/:id/qualify", leadHandler.QualifyLead)
		leads.POST("/:id/convert", leadHandler.ConvertLead)
	}

	properties := v1.Group("/properties")
	{
		properties.POST("", propertyHandler.CreateProperty)
		properties.GET("", propertyHandler.ListProperties)
		properties.GET("/search", propertyHandler.SearchProperties)
		properties.POST("/sync", propertyHandler.SyncProperties)
		properties.GET("/:id", propertyHandler.GetProperty)
		properties.PATCH("/:id", propertyHandler.UpdateProperty)
		properties.DELETE("/:id", propertyHandler.DeleteProperty)
	}

	voiceAgents := v1.Group("/voice-agents")
	{
		voiceAgents.POST("", adminOnly, voiceAgentHandler.CreateVoiceAgent)
		voiceAgents.GET("", voiceAgentHandler.ListVoiceAgents)
		voiceAgents.GET("/:id", voiceAgentHandler.GetVoiceAgent)
		voiceAgents.PATCH("/:id", adminOnly, voiceAgentHandler.UpdateVoiceAgent)
		voiceAgents.DELETE("/:id", adminOnly, voiceAgentHandler.DeleteVoiceAgent)
	}

	conversations := v1.Group("/conversations")
	{
		conversations.POST("", conversationHandler.StartConversation)
		conversations.GET("", conversationHandler.ListConversations)
		conversations.GET("/:id", conversationHandler.GetConversation)
		conversations.POST("/:id/turns", conversationHandler.AppendTurn)
		conversations.POST("/:id/end", conversationHandler.EndConversation)
	}

	market := v1.Group("/market")
	{
		market.GET("/insights", marketHandler.GetInsights)
		market.POST("/refresh", marketHandler.RefreshInsights)
		market.GET("/history", marketHandler.GetHistory)
	}

	voice := v1.Group("/voice")
	{
		voice.POST("/synthesize", voiceHandler.Synthesize)
		voice.GET("/stream", voiceHandler.Stream)
	}

	return router, nil
}
