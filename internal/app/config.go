package app

import (
	"os"
	"strconv"
	"time"

	"github.com/spendwise/spendwise/pkg/cryptox"
	"github.com/spendwise/spendwise/pkg/jwtx"
)

type Config struct {
	JWTSecret  string        // Signing secret for bearer tokens (required in prod)
	Issuer     string        // Optional: issuer claim for tokens (default: spendwise)
	BcryptCost int           // Optional: bcrypt work factor (default: 10)
	TokenTTL   time.Duration // Optional: bearer token lifetime (default: 168h)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./spendwise.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 4000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		JWTSecret:           os.Getenv("SPENDWISE_JWT_SECRET"),
		Issuer:              getEnvOrDefault("SPENDWISE_ISSUER", "spendwise"),
		BcryptCost:          getEnvIntOrDefault("SPENDWISE_BCRYPT_COST", cryptox.DefaultCost),
		TokenTTL:            getEnvDurationOrDefault("SPENDWISE_TOKEN_TTL", jwtx.DefaultTTL),
		DatabaseFile:        getEnvOrDefault("SPENDWISE_DATABASE_FILE", "spendwise.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 4000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "168h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer hours
	if hours, err := strconv.Atoi(value); err == nil {
		return time.Duration(hours) * time.Hour
	}

	return defaultValue
}
