package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the layout of a JSON or YAML config file.
type StructuredFileConfig struct {
	Registry struct {
		Driver string `json:"driver" yaml:"driver"`
		Path   string `json:"path" yaml:"path"`
	} `json:"registry,omitempty" yaml:"registry,omitempty"`

	HTTP struct {
		Auth     string   `json:"auth" yaml:"auth"`
		Insecure bool     `json:"insecure" yaml:"insecure"`
		Timeout  Duration `json:"timeout" yaml:"timeout"`
	} `json:"http,omitempty" yaml:"http,omitempty"`

	Log struct {
		Level  string `json:"level" yaml:"level"`
		Format string `json:"format" yaml:"format"`
	} `json:"log,omitempty" yaml:"log,omitempty"`
}

// parseFile reads a config file. The format is chosen by extension:
// .json, .yaml or .yml.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	registryPath := fileCfg.Registry.Path
	if registryPath != "" && !filepath.IsAbs(registryPath) {
		registryPath = filepath.Join(filepath.Dir(path), registryPath)
	}

	return &StructuredConfig{
		Registry: Registry{
			Driver: fileCfg.Registry.Driver,
			Path:   registryPath,
		},
		HTTP: HTTP{
			Auth:     fileCfg.HTTP.Auth,
			Insecure: fileCfg.HTTP.Insecure,
			Timeout:  time.Duration(fileCfg.HTTP.Timeout),
		},
		Log: Log{
			Level:  fileCfg.Log.Level,
			Format: fileCfg.Log.Format,
		},
	}, nil
}

// Duration is a time.Duration read from strings like "1h" or "30s", or
// from a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid duration at line %d", value.Line)
	}

	if value.ShortTag() == "!!int" {
		var n int64
		if err := value.Decode(&n); err != nil {
			return err
		}
		*d = Duration(n)
		return nil
	}

	tmp, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}
