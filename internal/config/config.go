// Package config handles configuration loading and management
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	DataDir      string
	ManifestPath string
	LogLevel     string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if the file doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		DataDir:      getEnv("DATA_DIR", "."),
		ManifestPath: getEnv("MANIFEST", ""),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) String() string {
	manifestDisplay := c.ManifestPath
	if manifestDisplay == "" {
		manifestDisplay = "(built-in)"
	}

	return fmt.Sprintf(`Current Configuration:
======================
Data Directory:  %s
Manifest:        %s
Log Level:       %s`,
		c.DataDir,
		manifestDisplay,
		c.LogLevel,
	)
}
