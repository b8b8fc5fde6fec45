// Package config loads datemetrics command settings from the environment
// and market closure calendars from YAML files.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLogLevel  = "DATEMETRICS_LOG_LEVEL"
	EnvLogPretty = "DATEMETRICS_LOG_PRETTY"
	EnvHolidays  = "DATEMETRICS_HOLIDAYS"
)

// Config holds command configuration.
type Config struct {
	LogLevel     string
	LogPretty    bool
	HolidaysPath string // optional; replaces the built-in closures when set
}

// Load reads configuration from environment variables, after loading a
// .env file from the working directory if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv(EnvLogLevel, "info"),
		LogPretty:    getEnvAsBool(EnvLogPretty, false),
		HolidaysPath: getEnv(EnvHolidays, ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		return fmt.Errorf("%s: unknown log level %q", EnvLogLevel, c.LogLevel)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
