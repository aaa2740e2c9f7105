package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays Config with values from WPCLOUD_* environment
// variables. Unset variables leave the current values in place. A malformed
// environment is a deployment error, so it panics like the other overlays.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
