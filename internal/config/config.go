package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment    string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevelName   string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile        string `env:"LOG_FILE" envDefault:"teletext.log"`
	WorldFile      string `env:"WORLD_FILE"` // Empty means the embedded default world
	RedisURL       string `env:"REDIS_URL"`  // Empty disables event broadcasting
	MusicVolume    int    `env:"MUSIC_VOLUME" envDefault:"5"`
	SFXVolume      int    `env:"SFX_VOLUME" envDefault:"5"`
	EndAfterChoice bool   `env:"END_AFTER_CHOICE" envDefault:"false"`

	LogLevel slog.Level // Parsed from LogLevelName
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = parseLogLevel(cfg.LogLevelName)
	cfg.MusicVolume = clampVolume(cfg.MusicVolume)
	cfg.SFXVolume = clampVolume(cfg.SFXVolume)
	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func clampVolume(v int) int {
	return max(0, min(10, v))
}
