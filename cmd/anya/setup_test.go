package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/anyafi/anya/internal/config"
	"github.com/stretchr/testify/require"
)

// Values from the runtime .env must be visible to AppConfig, which means
// the file has to be loaded before the first env.Parse.
func TestNewServicesEnvOrdering(t *testing.T) {
	runtime := t.TempDir()
	t.Setenv("ANYA_RUNTIME_PATH", runtime)
	t.Setenv("COMFORT_ZONE_THRESHOLD", "")
	os.Unsetenv("COMFORT_ZONE_THRESHOLD")

	err := os.WriteFile(filepath.Join(runtime, ".env"),
		[]byte("COMFORT_ZONE_THRESHOLD=0.3\nHISTORY_LIMIT=9\n"), 0o644)
	require.NoError(t, err)

	ctx := context.Background()
	require.Equal(t, runtime, config.GetRuntimePath())
	require.NoError(t, initEnv(ctx, config.GetRuntimePath()))

	cfg := config.NewAppConfig(ctx)
	require.Equal(t, 0.3, cfg.ComfortZoneThreshold)
	require.Equal(t, 9, cfg.HistoryLimit)
}

func TestGetRuntimePath_HomeRelative(t *testing.T) {
	t.Setenv("ANYA_RUNTIME_PATH", ".anya-test")

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".anya-test"), config.GetRuntimePath())
}
