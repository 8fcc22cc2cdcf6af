package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfig lists the environment variables the CLI understands.
type EnvConfig struct {
	ServerURL string        `env:"SWINGNOTES_SERVER"`
	TokenFile string        `env:"SWINGNOTES_TOKEN_FILE"`
	Timeout   time.Duration `env:"SWINGNOTES_TIMEOUT"`
}

func parseEnv(cfg *Config) error {
	var ec EnvConfig
	if err := cleanenv.ReadEnv(&ec); err != nil {
		return fmt.Errorf("read env: %w", err)
	}

	if ec.ServerURL != "" {
		cfg.ServerURL = ec.ServerURL
	}
	if ec.TokenFile != "" {
		cfg.TokenFile = ec.TokenFile
	}
	if ec.Timeout > 0 {
		cfg.Timeout = ec.Timeout
	}
	return nil
}
