// Package config provides process configuration loaded once at startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-tailor/internal/llm"
)

// Config holds all runtime configuration. Loaded once from the environment
// at process start and never mutated. The API key is the only required
// secret; it must never be logged.
type Config struct {
	APIKey       string `validate:"required"`
	Port         int    `validate:"min=1,max=65535"`
	ModelTier    llm.ModelTier
	FetchTimeout time.Duration `validate:"min=0"`
	UseBrowser   bool
	Verbose      bool
}

// Load reads configuration from the environment. The caller is expected to
// have loaded any .env file beforehand (godotenv at the CLI entry point).
func Load() (*Config, error) {
	cfg := &Config{
		APIKey:       os.Getenv("GEMINI_API_KEY"),
		Port:         8080,
		ModelTier:    llm.TierStandard,
		FetchTimeout: 10 * time.Second,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
		}
		cfg.Port = port
	}

	if tierStr := os.Getenv("MODEL_TIER"); tierStr != "" {
		tier, err := llm.ParseTier(tierStr)
		if err != nil {
			return nil, fmt.Errorf("invalid MODEL_TIER: %w", err)
		}
		cfg.ModelTier = tier
	}

	if timeoutStr := os.Getenv("FETCH_TIMEOUT_SECONDS"); timeoutStr != "" {
		seconds, err := strconv.Atoi(timeoutStr)
		if err != nil || seconds < 0 {
			return nil, fmt.Errorf("invalid FETCH_TIMEOUT_SECONDS %q", timeoutStr)
		}
		cfg.FetchTimeout = time.Duration(seconds) * time.Second
	}

	cfg.UseBrowser = os.Getenv("USE_BROWSER") == "true"
	cfg.Verbose = os.Getenv("VERBOSE") == "true"

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			if fieldErr.Field() == "APIKey" {
				return fmt.Errorf("GEMINI_API_KEY environment variable is required")
			}
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
