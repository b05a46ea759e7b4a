package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LogLevelEnv names the environment variable that selects the log level.
const LogLevelEnv = "IMAGE_NOTES_LOG_LEVEL"

// Config holds the settings read by Load.
type Config struct {
	LogLevel slog.Level
}

// Load reads settings from the environment. A .env file in the working
// directory is loaded first if present; variables already set win. A .env
// that exists but cannot be read or parsed is an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		LogLevel: ParseLogLevel(os.Getenv(LogLevelEnv)),
	}

	return cfg, nil
}

// ParseLogLevel maps a level name to a slog level. Unknown or empty names
// give slog.LevelWarn so that stderr stays quiet by default.
func ParseLogLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
