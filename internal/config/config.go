package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrUnknownLogLevel = errors.New("unknown log level")

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Match    Match  `yaml:"match"`
	Search   Search `yaml:"search"`
}

type Match struct {
	Count      int    `yaml:"count" env:"MATCH_COUNT" env-default:"1"`
	Workers    int    `yaml:"workers" env:"MATCH_WORKERS" env-default:"4"`
	PlayerX    string `yaml:"player-x" env:"MATCH_PLAYER_X" env-default:"minimax"`
	PlayerO    string `yaml:"player-o" env:"MATCH_PLAYER_O" env-default:"minimax"`
	StartBoard string `yaml:"start-board" env:"MATCH_START_BOARD" env-default:""`
}

type Search struct {
	Parallel bool `yaml:"parallel" env:"SEARCH_PARALLEL" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// SlogLevel - maps log-level to a slog.Level.
func (that *Config) SlogLevel() (slog.Level, error) {
	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}
}
