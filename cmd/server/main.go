// @title           SEO Optimizer Backend API
// @version         1.0.0
// @description     Backend API for SEO content optimization. Submitted text is rewritten by a generative provider, scored, and tracked in per-user optimization history; articles can also be generated from topic tags.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a Supabase access token.

package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"seo-optimizer-backend/internal/config"
	"seo-optimizer-backend/internal/database"
	"seo-optimizer-backend/internal/handlers"
	"seo-optimizer-backend/internal/middleware"
	"seo-optimizer-backend/internal/provider"
	"seo-optimizer-backend/internal/scoring"
	"seo-optimizer-backend/internal/services"
	"seo-optimizer-backend/internal/supabase"
)

func main() {
	// Configuration is resolved once at startup; a missing provider key or
	// storage credential is fatal here, not on the first request.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Token authentication: verify locally when the JWT secret is configured,
	// otherwise resolve tokens against Supabase Auth per request.
	var authenticator middleware.TokenAuthenticator
	if cfg.SupabaseJWTSecret != "" {
		authenticator = supabase.NewJWTAuthenticator(cfg.SupabaseJWTSecret)
	} else {
		supabaseClient, err := supabase.NewClient(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Supabase client: %v", err)
		}
		authenticator = supabase.NewRemoteAuthenticator(supabaseClient)
	}

	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}
	defer dbClient.Close()

	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize migrator: %v", err)
	}
	defer migrator.Close()
	if err := migrator.Run(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	optimizeService := services.NewOptimizationService(
		dbClient,
		newGenerator(cfg.OptimizeProvider, cfg),
		newGenerator(cfg.GenerateProvider, cfg),
		scoring.Placeholder{},
	)

	optimizeHandler := handlers.NewOptimizeHandler(optimizeService)
	generateHandler := handlers.NewGenerateHandler(optimizeService)
	historyHandler := handlers.NewHistoryHandler(dbClient)

	router := gin.Default()
	router.Use(middleware.CORS())

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	authed := router.Group("/")
	authed.Use(middleware.AuthMiddleware(authenticator))

	authed.POST("/optimize-content", optimizeHandler.Optimize)
	authed.POST("/generate-content", generateHandler.Generate)
	authed.GET("/history", historyHandler.List)
	authed.GET("/history/:record_id", historyHandler.Get)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newGenerator(name string, cfg *config.Config) provider.Generator {
	if name == "gemini" {
		return provider.NewSinglePromptClient(cfg.GeminiAPIBaseURL, cfg.GeminiAPIKey)
	}
	return provider.NewChatCompletionClient(cfg.OpenAIAPIBaseURL, cfg.OpenAIAPIKey)
}
