package config

import (
	"fmt"
	"os"
)

// Config holds runtime configuration for the matcher CLI.
type Config struct {
	LogLevel  string
	OutputDir string
}

// Load reads configuration from environment variables, applies
// defaults, and validates values. It returns an error for any invalid
// value.
func Load() (*Config, error) {
	logLevel := getStr("LOG_LEVEL", "info")
	if !isValidLogLevel(logLevel) {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %q, must be one of: debug, info, warn, error", logLevel)
	}

	outputDir := getStr("OUTPUT_DIR", ".")

	return &Config{
		LogLevel:  logLevel,
		OutputDir: outputDir,
	}, nil
}

func getStr(key, defaultVal string) string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
