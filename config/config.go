package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config is read from QWIXX_* environment variables.
type Config struct {
	Players     []string `env:"QWIXX_PLAYERS" envSeparator:"," envDefault:"Player1,Player2"`
	Seed        uint64   `env:"QWIXX_SEED"` // 0 seeds from the clock
	SharedLocks bool     `env:"QWIXX_SHARED_LOCKS"`
	Shuffle     bool     `env:"QWIXX_SHUFFLE"`
	LogLevel    string   `env:"QWIXX_LOG_LEVEL" envDefault:"info"`
	RecordsDir  string   `env:"QWIXX_RECORDS_DIR"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Level returns the zerolog level named by LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
