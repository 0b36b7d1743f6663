package main

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

var errConfig = errors.New("invalid configuration")

// config holds defaults taken from the environment; command-line flags
// override them.
type config struct {
	Format     string `env:"REX_FORMAT" envDefault:"text"`
	IgnoreCase bool   `env:"REX_IGNORE_CASE"`
	LogLevel   string `env:"REX_LOG_LEVEL" envDefault:"warn"`
}

func loadConfig() (config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Join(errConfig, err)
	}

	return cfg, cfg.validate()
}

func (c config) validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: format %q, want text or json", errConfig, c.Format)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %w", errConfig, err)
	}

	return nil
}
