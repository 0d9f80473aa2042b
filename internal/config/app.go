package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/anyafi/anya/pkg/log"
	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	RuntimePath string `env:"ANYA_RUNTIME_PATH" envDefault:".anya"`
	// Allow selecting the completion provider
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"groq"`

	// Transport Flags
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"ENABLE_CLI" envDefault:"true"`

	// Conversation context
	HistoryLimit int           `env:"HISTORY_LIMIT" envDefault:"5"`
	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"1h"`

	// Budget policy: fraction of the saving goal that must remain in the
	// monthly budget for a GREEN verdict.
	ComfortZoneThreshold float64 `env:"COMFORT_ZONE_THRESHOLD" envDefault:"0.5"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	path := c.RuntimePath
	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.GetRuntimePath(), "anya.db")
}
