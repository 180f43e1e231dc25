// Package config loads service configuration from the environment.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	defaultPort           = "8080"
	defaultInsightTimeout = 30 * time.Second
)

// Config holds the process configuration. All values come from the
// environment; everything has a default except the Gemini key, whose
// absence only degrades the insights feature.
type Config struct {
	Port           string
	GeminiAPIKey   string
	InsightTimeout time.Duration
}

// LoadEnvFile loads a .env file from the working directory into the
// environment. Errors are ignored since the file may not exist.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// Load reads the configuration from environment variables.
func Load() Config {
	cfg := Config{
		Port:           defaultPort,
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		InsightTimeout: defaultInsightTimeout,
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if raw := os.Getenv("INSIGHT_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			log.Warn().Str("value", raw).Msg("invalid INSIGHT_TIMEOUT, using default")
		} else {
			cfg.InsightTimeout = d
		}
	}
	return cfg
}
