package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrMissingSessionSecret is returned when SESSION_SECRET is not set. The
// service refuses to start without it: every issued token would be signed
// with an empty key.
var ErrMissingSessionSecret = errors.New("SESSION_SECRET must be set")

// Config holds the application configuration.
type Config struct {
	ServerPort     int
	DatabasePath   string
	FrontendOrigin string
	SessionSecret  []byte
}

// Load loads configuration from environment variables or sets defaults.
// A .env file in the working directory is applied first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, ErrMissingSessionSecret
	}

	return &Config{
		ServerPort:     port,
		DatabasePath:   getEnv("DATABASE_PATH", "./inkwell.db"),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
		SessionSecret:  []byte(secret),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
