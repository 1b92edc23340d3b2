package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	DatabaseType    string
	DatabasePath    string
	DatabaseURL     string
	SessionDuration time.Duration
	AppBaseURL      string

	// OAuth providers
	GoogleClientID       string
	GoogleClientSecret   string
	FacebookClientID     string
	FacebookClientSecret string

	// Email (Amazon SES)
	AWSRegion    string
	SESFromEmail string
	SESFromName  string

	// Signing key for email invitation tokens
	InviteTokenSecret string

	// Optional password override for the demo seeder accounts
	SeedDemoPassword string

	Debug bool
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("PORT", "8080"),
		DatabaseType:    getEnv("DATABASE_TYPE", "sqlite"),
		DatabasePath:    getEnv("DB_PATH", "./famify.db"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		SessionDuration: 24 * time.Hour,
		AppBaseURL:      getEnv("APP_BASE_URL", "http://localhost:8080"),

		GoogleClientID:       getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:   getEnv("GOOGLE_CLIENT_SECRET", ""),
		FacebookClientID:     getEnv("FACEBOOK_CLIENT_ID", ""),
		FacebookClientSecret: getEnv("FACEBOOK_CLIENT_SECRET", ""),

		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail: getEnv("SES_FROM_EMAIL", ""),
		SESFromName:  getEnv("SES_FROM_NAME", "Famify"),

		InviteTokenSecret: getEnv("INVITE_TOKEN_SECRET", ""),

		SeedDemoPassword: getEnv("SEED_DEMO_PASSWORD", ""),

		Debug: getEnv("DEBUG", "") == "true",
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
