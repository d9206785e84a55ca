package config

import (
	"os"
	"strconv"

	"cargas/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Upload UploadConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// UploadConfig holds upload handling limits
type UploadConfig struct {
	MaxFileSizeMB int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "5013"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Upload: UploadConfig{
			MaxFileSizeMB: getEnvInt64OrDefault("MAX_UPLOAD_MB", 50),
		},
	}

	if config.Upload.MaxFileSizeMB <= 0 {
		return nil, errors.ConfigInvalid("MAX_UPLOAD_MB must be a positive integer")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return nil, errors.ConfigInvalid("PORT must be numeric: " + config.Server.Port)
	}

	return config, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
