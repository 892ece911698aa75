// Package config loads wincamcfg settings from an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kevmo314/go-wincamcfg/pkg/logger"
)

const (
	EnvConfigPath = "WINCAMCFG_CONFIG"
	EnvOutput     = "WINCAMCFG_OUTPUT"
)

var ErrInvalidOutput = errors.New("invalid output format")

type Config struct {
	// Output is the default report format, "text" or "json".
	Output  string        `yaml:"output"`
	Logging logger.Config `yaml:"logging"`
}

func Default() Config {
	return Config{
		Output:  "text",
		Logging: *logger.DefaultConfig(),
	}
}

// Load reads path over the defaults and then applies environment overrides.
// An empty path falls back to $WINCAMCFG_CONFIG; if that is unset too only
// defaults and environment are used.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvOutput); v != "" {
		cfg.Output = v
	}
	cfg.Logging.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q (expected text or json)", ErrInvalidOutput, c.Output)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid log format %q (expected console or json)", c.Logging.Format)
	}
	return nil
}
