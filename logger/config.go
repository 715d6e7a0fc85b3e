package logger

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ErrEnvVariablesNotValid wraps environment parsing failures.
var ErrEnvVariablesNotValid = errors.New("environment variables not valid")

// envConfig carries the environment variables the factory consults during
// backend resolution. Enabled is matched as a raw string; only the exact
// value "false" selects the console fallback.
type envConfig struct {
	Enabled string `env:"LOGPORT_ENABLED" envDefault:"true"`
	Level   string `env:"LOGPORT_LEVEL"`
	LogFile string `env:"LOGPORT_LOG_FILE"`
}

// parseEnvConfig reads the factory's environment variables. A non-nil
// environment map replaces the process environment. On failure the defaults
// are returned alongside the error.
func parseEnvConfig(environment map[string]string) (envConfig, error) {
	cfg := envConfig{}
	err := env.ParseWithOptions(&cfg, env.Options{Environment: environment})
	if err != nil {
		return envConfig{Enabled: "true"}, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err)
	}
	return cfg, nil
}
