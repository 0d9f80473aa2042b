package config

import (
	"os"
	"path/filepath"
)

// GetRuntimePath resolves the runtime directory from the raw environment.
// It exists so the .env file inside it can be loaded before any env-backed
// config struct is parsed.
func GetRuntimePath() string {
	path := os.Getenv("ANYA_RUNTIME_PATH")
	if path == "" {
		path = ".anya"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
