package llm

import (
	"context"
	"fmt"

	"github.com/anyafi/anya/internal/config"
	"github.com/anyafi/anya/internal/core"
	"github.com/anyafi/anya/pkg/log"
)

// NewProvider creates the configured completion provider. A missing API key
// is reported as an error so the caller can fall back to rule-based replies.
func NewProvider(ctx context.Context, provider string, cfg *config.LLMConfig) (core.Completer, error) {
	logger := log.FromCtx(ctx)

	switch provider {
	case "groq":
		if cfg.GroqAPIKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is not set")
		}
		logger.Info().Str("provider", provider).Str("model", cfg.GroqModel).Msg("starting llm provider")
		return NewGroq(cfg.GroqAPIKey, cfg.GroqModel), nil
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		logger.Info().Str("provider", provider).Str("model", cfg.OpenAIModel).Msg("starting llm provider")
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	case "custom":
		if cfg.CustomBaseURL == "" {
			return nil, fmt.Errorf("CUSTOM_LLM_BASE_URL is not set")
		}
		logger.Info().Str("provider", provider).Str("model", cfg.CustomModel).Msg("starting llm provider")
		return NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:    cfg.CustomBaseURL,
			APIKey:     cfg.CustomAPIKey,
			Model:      cfg.CustomModel,
			AuthHeader: "Authorization",
			AuthPrefix: "Bearer ",
		}), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
