package config

import (
	"os"
	"path/filepath"
	"time"
)

const appDirName = "swingnotes"

// Config holds runtime settings for the notes CLI.
//
// Fields:
//   - ServerURL: base URL of the REST API.
//   - TokenFile: where the identity token is kept between invocations.
//   - Timeout: per-request HTTP timeout.
type Config struct {
	ServerURL string
	TokenFile string
	Timeout   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:3000"
	c.TokenFile = defaultTokenFile()
	c.Timeout = 10 * time.Second
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, appDirName, "token")
}

// Load builds a Config from defaults, the JSON file at jsonPath (skipped when
// empty) and the environment, in that order.
func Load(jsonPath string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, jsonPath); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
