package config

import "errors"

var (
	// ErrInvalidConfig is returned when the merged configuration fails
	// validation.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrUnsupportedFormat is returned for config files that are neither
	// JSON nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported config file format")
)
