package config

import (
	"fmt"
	"os"
)

// DefaultBindAddress is used when BIND_ADDRESS is not set.
const DefaultBindAddress = "127.0.0.1:8080"

// Config holds the service configuration, read once at startup.
type Config struct {
	DatabaseURL string // Postgres connection string (required)
	BindAddress string // host:port the HTTP server listens on
	LogLevel    string // zerolog level name; empty means info
	LogFormat   string // "json" (default) or "console"
}

// Load reads configuration from the environment. DATABASE_URL is the only
// required setting; everything else has a usable default.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		BindAddress: os.Getenv("BIND_ADDRESS"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		LogFormat:   os.Getenv("LOG_FORMAT"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.BindAddress == "" {
		cfg.BindAddress = DefaultBindAddress
	}

	return cfg, nil
}
