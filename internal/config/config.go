package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Port         string
	DatabaseURL  string
	CloudURL     string
	JWTSecret    string
	SyncDebounce time.Duration
}

// Load reads configuration from environment variables. CLOUD_URL takes
// precedence over the endpoint persisted in the local store; an empty
// DATABASE_URL falls back to the in-memory store.
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		CloudURL:     getEnv("CLOUD_URL", ""),
		JWTSecret:    getEnv("JWT_SECRET", "simm-dev-secret"),
		SyncDebounce: getEnvSeconds("SYNC_DEBOUNCE_SECONDS", 5),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvSeconds parses an integer number of seconds from the environment
func getEnvSeconds(key string, defaultSeconds int) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(defaultSeconds) * time.Second
}
