package config

import (
	"github.com/spf13/pflag"
)

// RegisterFlags adds the global configuration flags to fs. The returned
// config is filled in when fs is parsed; unset flags stay zero and so do
// not shadow lower priority sources.
//
// Flags:
//
//	--config          JSON or YAML config file
//	--registry        registry file path
//	--registry-driver json or sqlite
//	--auth            basic or digest
//	--insecure        skip TLS certificate verification
//	--timeout         per request timeout (e.g. 30s)
//	--log-level       trace, debug, info, warn, error
//	--log-format      console or json
func RegisterFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.ConfigFile, "config", "", "config file (JSON or YAML)")
	fs.StringVar(&cfg.Registry.Path, "registry", "", "remote registry path")
	fs.StringVar(&cfg.Registry.Driver, "registry-driver", "", "remote registry driver: json or sqlite")
	fs.StringVar(&cfg.HTTP.Auth, "auth", "", "HTTP authentication: basic or digest")
	fs.BoolVar(&cfg.HTTP.Insecure, "insecure", false, "skip TLS certificate verification")
	fs.DurationVar(&cfg.HTTP.Timeout, "timeout", 0, "request timeout (e.g. 30s)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "log level: trace, debug, info, warn, error")
	fs.StringVar(&cfg.Log.Format, "log-format", "", "log format: console or json")

	return cfg
}
