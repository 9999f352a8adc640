package config

import (
	"fmt"
	"os"
)

type Config struct {
	// Generation providers
	OpenAIAPIKey     string
	OpenAIAPIBaseURL string
	GeminiAPIKey     string
	GeminiAPIBaseURL string

	// Provider selection per pipeline mode: "openai" or "gemini"
	OptimizeProvider string
	GenerateProvider string

	// Supabase
	SupabaseURL            string
	SupabaseServiceRoleKey string
	SupabaseJWTSecret      string

	// Database
	DatabaseURL string

	// Server
	Port        string
	Environment string
}

func Load() (*Config, error) {
	cfg := &Config{
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIAPIBaseURL: getEnv("OPENAI_API_BASE_URL", "https://api.openai.com/v1"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiAPIBaseURL: getEnv("GEMINI_API_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),

		OptimizeProvider: getEnv("OPTIMIZE_PROVIDER", "openai"),
		GenerateProvider: getEnv("GENERATE_PROVIDER", "gemini"),

		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabaseServiceRoleKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		SupabaseJWTSecret:      getEnv("SUPABASE_JWT_SECRET", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.OptimizeProvider != "openai" && c.OptimizeProvider != "gemini" {
		return fmt.Errorf("OPTIMIZE_PROVIDER must be \"openai\" or \"gemini\", got %q", c.OptimizeProvider)
	}
	if c.GenerateProvider != "openai" && c.GenerateProvider != "gemini" {
		return fmt.Errorf("GENERATE_PROVIDER must be \"openai\" or \"gemini\", got %q", c.GenerateProvider)
	}
	if c.needsOpenAI() && c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.needsGemini() && c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabaseServiceRoleKey == "" && c.SupabaseJWTSecret == "" {
		return fmt.Errorf("SUPABASE_SERVICE_ROLE_KEY or SUPABASE_JWT_SECRET is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	return nil
}

func (c *Config) needsOpenAI() bool {
	return c.OptimizeProvider == "openai" || c.GenerateProvider == "openai"
}

func (c *Config) needsGemini() bool {
	return c.OptimizeProvider == "gemini" || c.GenerateProvider == "gemini"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
