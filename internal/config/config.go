// Package config loads boundary configuration from the environment. Core
// packages never read configuration; a Config is built once in the CLI and
// passed down.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults matching the hosted model the reports were tuned against.
const (
	DefaultModel       = "claude-sonnet-4-20250514"
	DefaultMaxTokens   = 4000
	DefaultTemperature = 0.1
)

// Config carries narrative-generation settings. An empty APIKey is valid:
// reports then fall back to the deterministic template narrative.
type Config struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
}

// Load reads an optional .env file, then the process environment.
func Load() Config {
	_ = godotenv.Load() // missing .env is fine

	cfg := Config{
		APIKey:      os.Getenv("ANTHROPIC_API_KEY"),
		Model:       DefaultModel,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}
	if v := os.Getenv("FASTQ_AGENTS_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("FASTQ_AGENTS_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("FASTQ_AGENTS_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.Temperature = f
		}
	}
	return cfg
}
