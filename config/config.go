package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const devSessionSecret = "dev-session-secret-change-me"

type Config struct {
	// Server Settings
	AppPort     string
	HOST        string
	Environment string

	// Database Settings
	DatabaseURL string

	// Session Settings
	SessionSecret string

	// CORS Settings
	CORSAllowOrigins string
}

func LoadConfig() *Config {
	// It's okay if .env doesn't exist in production
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		AppPort:     getEnv("PORT", "8080"),
		HOST:        getEnv("HOST", "0.0.0.0"),
		Environment: getEnv("APP_ENV", "development"),

		DatabaseURL: getEnv("DATABASE_URL", "host=localhost port=5432 user=postgres dbname=sultan1 sslmode=disable"),

		SessionSecret: getEnv("SESSION_SECRET", devSessionSecret),

		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
	}

	if config.SessionSecret == devSessionSecret && config.Environment == "production" {
		log.Println("WARNING: SESSION_SECRET is unset in production, cookies are not protected")
	}

	return config
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
