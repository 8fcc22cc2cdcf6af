package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfig lists the environment variables the server reads. PORT is kept
// for compatibility with platform launchers and is ignored when HTTP_ADDR
// is set.
type EnvConfig struct {
	Env                   string        `env:"APP_ENV"`
	Port                  string        `env:"PORT"`
	EndpointAddrHTTP      string        `env:"HTTP_ADDR"`
	EndpointAddrGRPC      string        `env:"GRPC_ADDR"`
	DatabaseDSN           string        `env:"DATABASE_DSN"`
	SecretKey             string        `env:"JWT_SECRET"`
	TokenValidityDuration time.Duration `env:"TOKEN_TTL"`
	ShutdownTimeout       time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// parseEnv overlays variables that are set. Malformed values panic, like a
// broken config file does.
func parseEnv(config *Config) {
	var e EnvConfig
	if err := cleanenv.ReadEnv(&e); err != nil {
		panic(err)
	}

	setString(&config.Env, e.Env)
	if e.Port != "" {
		config.EndpointAddrHTTP = ":" + e.Port
	}
	setString(&config.EndpointAddrHTTP, e.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, e.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, e.DatabaseDSN)
	setString(&config.SecretKey, e.SecretKey)
	if e.TokenValidityDuration > 0 {
		config.TokenValidityDuration = e.TokenValidityDuration
	}
	if e.ShutdownTimeout > 0 {
		config.ShutdownTimeout = e.ShutdownTimeout
	}
}
