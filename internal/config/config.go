package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

// defaultPlaceholderImage is shown for cart lines whose product has no image.
const defaultPlaceholderImage = "https://res.cloudinary.com/dxjvlcd5s/image/upload/v1760331029/products/bqlaqfriqvzfnagwpoic.jpg"

// Config holds all application configuration.
type Config struct {
	API     APIConfig
	Cart    CartConfig
	Session SessionConfig
	Logger  LoggerConfig
}

// APIConfig holds commerce API client configuration.
type APIConfig struct {
	BaseURL          string
	Timeout          int // seconds
	PlaceholderImage string
}

// CartConfig holds local cart storage configuration.
type CartConfig struct {
	// File is the path used to persist the anonymous cart across restarts.
	// Empty means the cart lives in memory only.
	File string
}

// SessionConfig holds session storage configuration.
type SessionConfig struct {
	// File is the path used to persist the auth token across restarts.
	File string
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			BaseURL:          getEnv("API_BASE_URL", ""),
			Timeout:          getEnvAsInt("API_TIMEOUT", 15),
			PlaceholderImage: getEnv("PLACEHOLDER_IMAGE_URL", defaultPlaceholderImage),
		},
		Cart: CartConfig{
			File: getEnv("CART_FILE", ""),
		},
		Session: SessionConfig{
			File: getEnv("SESSION_FILE", ""),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid API base URL: %s", c.API.BaseURL)
	}

	if c.API.Timeout < 1 {
		return fmt.Errorf("API timeout must be at least 1 second")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
