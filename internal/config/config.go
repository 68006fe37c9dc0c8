// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Registry drivers.
const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "GER_"

// StructuredConfig is the configuration of the ger tool. It is populated by
// merging command-line flags, environment variables, an optional config
// file and defaults, in that order of priority.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: variable name for scalar fields, after [EnvPrefix].
//   - validate: rules checked on the merged result (validator/v10).
type StructuredConfig struct {
	// Registry selects where named remotes are stored.
	Registry Registry `envPrefix:"REGISTRY_"`

	// HTTP holds settings applied to every Gerrit client.
	HTTP HTTP `envPrefix:"HTTP_"`

	// Log controls diagnostics written to stderr.
	Log Log `envPrefix:"LOG_"`

	// ConfigFile is the optional path to a JSON or YAML config file.
	// Env: GER_CONFIG
	ConfigFile string `env:"CONFIG"`
}

// Registry is the storage of named remotes.
type Registry struct {
	// Driver is "json" (a single file) or "sqlite".
	// Env: GER_REGISTRY_DRIVER
	Driver string `env:"DRIVER" validate:"required,oneof=json sqlite"`

	// Path is the registry file, or the SQLite database file.
	// Env: GER_REGISTRY_PATH
	Path string `env:"PATH" validate:"required"`
}

// HTTP holds client connection settings.
type HTTP struct {
	// Auth is "basic" or "digest".
	// Env: GER_HTTP_AUTH
	Auth string `env:"AUTH" validate:"required,oneof=basic digest"`

	// Insecure disables TLS certificate verification.
	// Env: GER_HTTP_INSECURE
	Insecure bool `env:"INSECURE"`

	// Timeout bounds every request (e.g. "30s").
	// Env: GER_HTTP_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT" validate:"gte=0"`
}

// Log configures the stderr logger.
type Log struct {
	// Env: GER_LOG_LEVEL
	Level string `env:"LEVEL" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	// Env: GER_LOG_FORMAT
	Format string `env:"FORMAT" validate:"required,oneof=console json"`
}

// Defaults returns the lowest priority configuration source.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Registry: Registry{
			Driver: DriverJSON,
			Path:   defaultRegistryPath(),
		},
		HTTP: HTTP{
			Auth:    "basic",
			Timeout: 30 * time.Second,
		},
		Log: Log{
			Level:  "warn",
			Format: "console",
		},
	}
}

func defaultRegistryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "ger", "remotes.json")
}

// Load assembles the configuration. flags holds the values given on the
// command line and may be nil.
func Load(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv(DotEnvFile).
		withFile().
		withDefaults().
		build()
}
