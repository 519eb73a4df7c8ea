package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, validate(cfg))
	assert.NotEmpty(t, cfg.Chain.Order)
	assert.Equal(t, 3, cfg.Chain.MaxRetries)
}

func TestConfigResolveModelPrefersOverrideThenEnv(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Providers.ModelOverrides["anthropic"] = "claude-override"
	assert.Equal(t, "claude-override", cfg.ResolveModel("anthropic", "ANTHROPIC_MODEL_TEST_UNSET", "fallback"))

	t.Setenv("ANTHROPIC_MODEL_TEST_UNSET", "")
	assert.Equal(t, "claude-override", cfg.ResolveModel("anthropic", "ANTHROPIC_MODEL_TEST_UNSET", "fallback"))

	t.Setenv("OPENAI_MODEL_TEST", "gpt-from-env")
	assert.Equal(t, "gpt-from-env", cfg.ResolveModel("openai", "OPENAI_MODEL_TEST", "fallback"))

	assert.Equal(t, "fallback", cfg.ResolveModel("gemini", "GEMINI_MODEL_TEST_UNSET", "fallback"))
}

func TestConfigResolveOllamaBaseURL(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://localhost:11434", cfg.ResolveOllamaBaseURL("http://localhost:11434"))

	cfg.Providers.OllamaBaseURL = "http://ollama.internal:11434"
	assert.Equal(t, "http://ollama.internal:11434", cfg.ResolveOllamaBaseURL("http://localhost:11434"))
}
