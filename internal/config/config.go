package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"audiology/internal/logger"

	"github.com/rs/zerolog"
)

const (
	EnvAssetDir = "AUDIOLOGY_ASSET_DIR"
	EnvLogLevel = "LOG_LEVEL"
	EnvDebug    = "DEBUG"
	EnvJSONLogs = "AUDIOLOGY_JSON_LOGS"
	EnvWindowed = "AUDIOLOGY_WINDOWED"
)

// Config holds runtime configuration, loaded from environment variables.
// The presenter takes no flags; these exist for operators and development.
type Config struct {
	AssetDir string
	LogLevel zerolog.Level
	JSONLogs bool

	// Windowed skips fullscreen, useful when developing on a single monitor.
	Windowed bool
}

// Load reads configuration from environment variables with defaults.
// Assets default to the directory holding the executable.
func Load() (Config, error) {
	assetDir := envStr(EnvAssetDir, "")
	if assetDir == "" {
		exe, err := os.Executable()
		if err != nil {
			return Config{}, fmt.Errorf("resolve executable path: %w", err)
		}
		assetDir = filepath.Dir(exe)
	}

	level := logger.ParseLevel(os.Getenv(EnvLogLevel))
	if os.Getenv(EnvLogLevel) == "" && os.Getenv(EnvDebug) == "1" {
		level = zerolog.DebugLevel
	}

	cfg := Config{
		AssetDir: assetDir,
		LogLevel: level,
		JSONLogs: envBool(EnvJSONLogs, false),
		Windowed: envBool(EnvWindowed, false),
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.AssetDir) == "" {
		return fmt.Errorf("asset directory is empty")
	}
	return nil
}

// NewLogger builds the application logger described by the config.
func (c Config) NewLogger() *logger.ZerologAdapter {
	if c.JSONLogs {
		return logger.NewJSONLogger(c.LogLevel)
	}
	return logger.NewConsoleLogger(c.LogLevel)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
