package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the API server settings, read from the environment.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	Env             string        `env:"ENV" envDefault:"development"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	MaxLength       int           `env:"GENERATOR_MAX_LENGTH" envDefault:"128"`
	RateLimitRPS    float64       `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst  int           `env:"RATE_LIMIT_BURST" envDefault:"10"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses the process environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.MaxLength <= 0:
		return fmt.Errorf("%w: GENERATOR_MAX_LENGTH must be positive", ErrInvalidConfig)
	case c.RateLimitRPS <= 0:
		return fmt.Errorf("%w: RATE_LIMIT_RPS must be positive", ErrInvalidConfig)
	case c.RateLimitBurst <= 0:
		return fmt.Errorf("%w: RATE_LIMIT_BURST must be positive", ErrInvalidConfig)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("%w: LOG_FORMAT must be text or json", ErrInvalidConfig)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Logger builds a slog.Logger writing to w in the configured format.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("%w: LOG_LEVEL %q", ErrInvalidConfig, s)
	}
	return level, nil
}
