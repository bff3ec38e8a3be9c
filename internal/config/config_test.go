package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("FASTQ_AGENTS_MODEL", "")
	t.Setenv("FASTQ_AGENTS_MAX_TOKENS", "")
	t.Setenv("FASTQ_AGENTS_TEMPERATURE", "")

	cfg := Load()
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultMaxTokens, cfg.MaxTokens)
	assert.InDelta(t, DefaultTemperature, cfg.Temperature, 1e-9)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("FASTQ_AGENTS_MODEL", "claude-haiku-4")
	t.Setenv("FASTQ_AGENTS_MAX_TOKENS", "1000")
	t.Setenv("FASTQ_AGENTS_TEMPERATURE", "0.5")

	cfg := Load()
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "claude-haiku-4", cfg.Model)
	assert.Equal(t, 1000, cfg.MaxTokens)
	assert.InDelta(t, 0.5, cfg.Temperature, 1e-9)
}

func TestLoadIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("FASTQ_AGENTS_MAX_TOKENS", "not-a-number")
	t.Setenv("FASTQ_AGENTS_TEMPERATURE", "-3")

	cfg := Load()
	assert.Equal(t, DefaultMaxTokens, cfg.MaxTokens)
	assert.InDelta(t, DefaultTemperature, cfg.Temperature, 1e-9)
}
