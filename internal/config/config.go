package config

import (
	"os"

	"github.com/deckforge/deckforge/internal/deckgen"
	"github.com/deckforge/deckforge/internal/llm"
)

// Config is the full application configuration, assembled from the
// environment once at startup.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string

	// Environment is "development" or "production". Development switches
	// logging to human-readable console output.
	Environment string

	// LogLevel is a zerolog level name: debug, info, warn, error.
	LogLevel string

	// LLM configures the inference backend.
	LLM llm.Config

	// Gen configures the deck generation orchestrator.
	Gen deckgen.Config
}

// Load reads configuration from the environment, applying defaults for
// anything unset. Provider credentials are validated later, when the
// provider is constructed.
func Load() Config {
	return Config{
		Port:        getEnv("DECKFORGE_PORT", "8000"),
		Environment: getEnv("DECKFORGE_ENV", "development"),
		LogLevel:    getEnv("DECKFORGE_LOG_LEVEL", "info"),
		LLM:         llm.ConfigFromEnv(),
		Gen:         deckgen.DefaultConfig(),
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
