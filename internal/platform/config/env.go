package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable name read through
// ParseEnv.
const EnvPrefix = "NONTRANSITIVE_"

// ParseEnv loads configuration from environment variables. Struct tags name
// variables without EnvPrefix, e.g. `env:"WORKERS"` reads NONTRANSITIVE_WORKERS.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
