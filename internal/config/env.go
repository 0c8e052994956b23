// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "CLOUDPHISH_"

// Environment holds the CLOUDPHISH_* environment variables.
//
// Struct tags are resolved by caarlos0/env with [EnvPrefix] applied.
type Environment struct {
	// ConfigFile is an extra config file with the highest precedence.
	// Env: CLOUDPHISH_CONFIG
	ConfigFile string `env:"CONFIG"`

	// LogLevel is the command-line tool log level (debug, info, warn, error).
	// Env: CLOUDPHISH_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Server overrides the profile's server.
	// Env: CLOUDPHISH_SERVER
	Server string `env:"SERVER"`

	// Port overrides the profile's port.
	// Env: CLOUDPHISH_PORT
	Port int `env:"PORT"`

	// CABundle overrides the profile's ca_bundle_file.
	// Env: CLOUDPHISH_CA_BUNDLE_FILE
	CABundle string `env:"CA_BUNDLE_FILE"`
}

// Overrides returns the profile fields set through the environment.
func (e *Environment) Overrides() Overrides {
	return Overrides{
		Server:   e.Server,
		Port:     e.Port,
		CABundle: e.CABundle,
	}
}

// ParseEnvironment reads the CLOUDPHISH_* environment variables.
func ParseEnvironment() (*Environment, error) {
	cfg := &Environment{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library with [EnvPrefix].
//
// Returns a wrapped error if a value cannot be converted to the target type.
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
