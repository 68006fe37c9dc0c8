// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from GER_ variables. Variables from the dotenv file
// at dotEnvPath are used when the process environment does not set them; a
// missing file is not an error.
func parseEnv(cfg any, dotEnvPath string) error {
	environ, err := environment(dotEnvPath)
	if err != nil {
		return err
	}

	err = env.ParseWithOptions(cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func environment(dotEnvPath string) (map[string]string, error) {
	environ := make(map[string]string)

	if dotEnvPath != "" {
		dotEnv, err := godotenv.Read(dotEnvPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("error reading %s: %w", dotEnvPath, err)
		default:
			maps.Copy(environ, dotEnv)
		}
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			environ[k] = v
		}
	}

	return environ, nil
}
