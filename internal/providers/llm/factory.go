package llm

import (
	"context"
	"fmt"

	"github.com/ArpanMallick2005/Ai-resume-Analy/config"
)

// New builds the provider selected by cfg.Provider.
func New(ctx context.Context, cfg config.AIConfig) (Provider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("AI_MODEL (or OPENAI_MODEL) is required")
	}
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAICompatible(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.Timeout)
	case config.ProviderGemini:
		return NewGemini(ctx, cfg.GeminiKey)
	case config.ProviderVertex:
		return NewVertexGemini(ctx, cfg.VertexProject, cfg.VertexLocation)
	default:
		return nil, fmt.Errorf("unknown AI_PROVIDER %q", cfg.Provider)
	}
}
