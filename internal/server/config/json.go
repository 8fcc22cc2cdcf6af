package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/swingnotes/internal/flagx"
	"github.com/dmitrijs2005/swingnotes/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations accept
// "1h" style strings or integer nanoseconds.
type JsonConfig struct {
	Env                   string         `json:"env"`
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC      string         `json:"endpoint_addr_grpc"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	ShutdownTimeout       timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays values from the file named by -c/-config. Keys that are
// absent from the file leave the current value untouched. An unreadable or
// invalid file is a startup error and panics.
func parseJson(config *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.Env, c.Env)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.TokenValidityDuration.Duration > 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
