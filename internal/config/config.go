// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/sadopc/pomo/internal/store"
)

const logFileName = "pomo.log"

// Config holds process-level settings. Timer durations live in the store.
type Config struct {
	DBPath    string `env:"POMO_DB_PATH"`
	LogFile   string `env:"POMO_LOG_FILE"`
	LogLevel  string `env:"POMO_LOG_LEVEL"  envDefault:"info"`
	AutoStart bool   `env:"POMO_AUTO_START" envDefault:"false"`
}

// Load parses the environment. An unset database path falls back to
// store.DefaultDBPath and the log file is placed next to the database.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBPath == "" {
		path, err := store.DefaultDBPath()
		if err != nil {
			return Config{}, fmt.Errorf("resolve db path: %w", err)
		}
		cfg.DBPath = path
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(filepath.Dir(cfg.DBPath), logFileName)
	}
	return cfg, nil
}
