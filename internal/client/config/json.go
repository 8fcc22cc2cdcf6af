package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/swingnotes/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeout may be
// a string like "5s" or integer nanoseconds.
type JsonConfig struct {
	ServerURL string         `json:"server_url"`
	TokenFile string         `json:"token_file"`
	Timeout   timex.Duration `json:"timeout"`
}

func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
	if jc.Timeout.Duration > 0 {
		cfg.Timeout = jc.Timeout.Duration
	}
	return nil
}
