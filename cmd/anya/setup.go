package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/anyafi/anya/internal/config"
	"github.com/anyafi/anya/internal/core"
	"github.com/anyafi/anya/internal/providers/llm"
	"github.com/anyafi/anya/internal/service/agent"
	"github.com/anyafi/anya/internal/service/command"
	"github.com/anyafi/anya/internal/service/tools"
	"github.com/anyafi/anya/internal/session"
	"github.com/anyafi/anya/internal/storage/sqlite"
	"github.com/anyafi/anya/internal/transport/cli"
	"github.com/anyafi/anya/internal/transport/telegram"
	"github.com/anyafi/anya/pkg/log"
	"github.com/anyafi/anya/pkg/srv"
	"github.com/joho/godotenv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env before any config struct is parsed, so .env values are seen
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Storage
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))
	ledger := sqlite.NewLedger(db)

	// 3. Completion provider. A missing key is not fatal: the agent falls
	// back to rule-based replies.
	var completer core.Completer
	if provider, err := llm.NewProvider(ctx, appCfg.LLMProvider, config.NewLLMConfig(ctx)); err != nil {
		logger.Warn().Err(err).Msg("running without completion provider")
	} else {
		completer = provider
	}

	// 4. Services
	sessions := session.NewStore(appCfg.SessionTTL)
	toolset := tools.New(ledger, appCfg.ComfortZoneThreshold)
	ag := agent.New(appCfg, completer, toolset, sessions)
	router := command.New(command.NewCommands(toolset))

	// 5. Transports
	transports, err := initTransports(ctx, appCfg, ag, router)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func initTransports(ctx context.Context, cfg *config.AppConfig, ag *agent.Agent, router core.CmdRouter) ([]srv.Service, error) {
	var services []srv.Service

	if cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, ag, router)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	if cfg.EnableCLI {
		rl, err := cli.NewReadLine(ag, router, cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, rl)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
