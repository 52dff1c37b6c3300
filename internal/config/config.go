// ABOUTME: Centralized configuration for the alert store
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"

	"github.com/harper/alertstore/internal/storage/sqlite"
)

// Config holds all configuration for the alert store
type Config struct {
	// Path of the SQLite database file
	DBPath string

	// Create the database file when it does not exist
	AutoCreate bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		DBPath:     getEnv("ALERTSTORE_DB", sqlite.DefaultDBPath()),
		AutoCreate: getEnvBool("ALERTSTORE_AUTO_CREATE", true),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("ALERTSTORE_DB must not be empty")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

