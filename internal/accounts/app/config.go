package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	MongoURI      string // Required: connection string for the document store
	MongoDatabase string // Optional: database name (default: accounts)

	StaticDir           string        // Optional: directory with the compiled front-end bundle (default: web/dist)
	BcryptCost          int           // Optional: bcrypt work factor (default: 10)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 3000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		MongoURI:            os.Getenv("ACCOUNTS_MONGO_URI"),
		MongoDatabase:       getEnvOrDefault("ACCOUNTS_MONGO_DB", "accounts"),
		StaticDir:           getEnvOrDefault("ACCOUNTS_STATIC_DIR", "web/dist"),
		BcryptCost:          getEnvIntOrDefault("ACCOUNTS_BCRYPT_COST", 10),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 3000),
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

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
