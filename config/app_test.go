package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadAIDefaults(t *testing.T) {
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("AI_MODEL", "")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("AI_TIMEOUT", "")
	t.Setenv("VERTEX_LOCATION", "")

	cfg := LoadAI()
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.Equal(t, "us-central1", cfg.VertexLocation)
	assert.Zero(t, cfg.CacheTTL)
}

func TestLoadAIModelOverride(t *testing.T) {
	t.Setenv("AI_PROVIDER", " Gemini ")
	t.Setenv("AI_MODEL", "gemini-2.5-flash")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")

	cfg := LoadAI()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
}

func TestEnvDuration(t *testing.T) {
	t.Setenv("X_DUR", "90s")
	assert.Equal(t, 90*time.Second, envDuration("X_DUR", time.Second))

	t.Setenv("X_DUR", "45")
	assert.Equal(t, 45*time.Second, envDuration("X_DUR", time.Second))

	t.Setenv("X_DUR", "soon")
	assert.Equal(t, time.Second, envDuration("X_DUR", time.Second))
}

func TestLoadServerDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")
	t.Setenv("RATE_LIMIT_BURST", "")

	cfg := LoadServer()
	assert.Equal(t, "8080", cfg.Port)
	assert.Zero(t, cfg.RateLimitPerMinute)
	assert.Equal(t, 5, cfg.RateLimitBurst)
}
