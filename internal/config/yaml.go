// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"bitkit/internal/log"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted after the config file is read.
const (
	EnvDebug        = "BITKIT_DEBUG"
	EnvLogLevel     = "BITKIT_LOG_LEVEL"
	EnvDisplayWidth = "BITKIT_DISPLAY_WIDTH"
)

// DefaultSearchPaths are tried in order when LoadConfig is given no path.
var DefaultSearchPaths = []string{
	"bitkit.yaml",
	"config.yaml",
}

// LoadConfig loads configuration from a YAML file specified by path. If path is empty,
// it searches DefaultSearchPaths. If no file is found, it uses built-in defaults.
// After loading defaults or from file, it applies environment variable overrides and
// validates the final configuration.
func LoadConfig(path string) (*Config, error) {
	cfg := NewConfig()

	if path == "" {
		for _, candidate := range DefaultSearchPaths {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "failed to parse config file")
		}
		log.Debugf("configuration: loaded %s", path)
	}

	// Apply environment variable overrides AFTER loading from file.
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

// Validate checks that every field holds a value the tools can use.
func (c *Config) Validate() error {
	if _, ok := log.ParseLevel(c.LogLevel); !ok {
		return errors.Errorf("log_level %q is not one of debug, info, warn, error, fatal", c.LogLevel)
	}
	if !slices.Contains(SupportedWidths, c.Display.Width) {
		return errors.Errorf("display.width %d must be one of %v", c.Display.Width, SupportedWidths)
	}
	if c.Limits.MaxPowerSetElements < 0 || c.Limits.MaxPowerSetElements > MaxPowerSetElements {
		return errors.Errorf("limits.max_powerset_elements %d must be in [0, %d]",
			c.Limits.MaxPowerSetElements, MaxPowerSetElements)
	}
	if c.Limits.VerifyLimit < 0 || c.Limits.VerifyLimit > MaxVerifyLimit {
		return errors.Errorf("limits.verify_limit %d must be in [0, %d]", c.Limits.VerifyLimit, MaxVerifyLimit)
	}
	return nil
}

// Level returns the effective log level: debug when Debug is set,
// otherwise the parsed LogLevel.
func (c *Config) Level() log.LogLevel {
	if c.Debug {
		return log.LevelDebug
	}
	level, _ := log.ParseLevel(c.LogLevel)
	return level
}

// applyEnvOverrides replaces file or default values with BITKIT_*
// variables. Unparseable values are ignored with a warning.
func (c *Config) applyEnvOverrides() {
	// BITKIT_DEBUG
	if val, ok := os.LookupEnv(EnvDebug); ok {
		if bVal, err := strconv.ParseBool(val); err == nil {
			c.Debug = bVal
			log.Debugf("configuration: overriding debug from env: %v", bVal)
		} else {
			log.Warnf("configuration: ignoring %s=%q: %v", EnvDebug, val, err)
		}
	}

	// BITKIT_LOG_LEVEL
	if val, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = val
		log.Debugf("configuration: overriding log_level from env: %s", val)
	}

	// BITKIT_DISPLAY_WIDTH
	if val, ok := os.LookupEnv(EnvDisplayWidth); ok {
		if width, err := strconv.Atoi(val); err == nil {
			c.Display.Width = width
			log.Debugf("configuration: overriding display.width from env: %d", width)
		} else {
			log.Warnf("configuration: ignoring %s=%q: %v", EnvDisplayWidth, val, err)
		}
	}
}

// String renders the configuration as YAML for `--verbose` output.
func (c *Config) String() string {
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("%+v", *c)
	}
	return string(out)
}
