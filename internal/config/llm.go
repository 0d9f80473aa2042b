package config

import (
	"context"

	"github.com/anyafi/anya/pkg/log"
	"github.com/caarlos0/env/v11"
)

// LLMConfig covers every supported completion provider. API keys are not
// required: a missing key means the agent runs on rule-based fallbacks.
type LLMConfig struct {
	GroqAPIKey string `env:"GROQ_API_KEY"`
	GroqModel  string `env:"GROQ_MODEL" envDefault:"llama-3.1-8b-instant"`

	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	CustomBaseURL string `env:"CUSTOM_LLM_BASE_URL"`
	CustomAPIKey  string `env:"CUSTOM_LLM_API_KEY"`
	CustomModel   string `env:"CUSTOM_LLM_MODEL"`
}

func NewLLMConfig(ctx context.Context) *LLMConfig {
	c := &LLMConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse LLM config")
	}
	return c
}
