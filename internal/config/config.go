// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package config holds the configuration of the aigtool command.
package config

import (
	"os"
	"strings"

	"github.com/go-air/aiger/aiger"
	"github.com/go-air/aiger/aigfile"
	"github.com/go-air/aiger/gen"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// OutputConfig configures how models are written.
type OutputConfig struct {
	Mode  string `yaml:"mode"` // auto, ascii, binary
	Strip bool   `yaml:"strip"`
}

// FuzzConfig gives the shape of generated models.
type FuzzConfig struct {
	Seed    int64 `yaml:"seed"`
	Inputs  int   `yaml:"inputs"`
	Latches int   `yaml:"latches"`
	Ands    int   `yaml:"ands"`
	Outputs int   `yaml:"outputs"`
}

// Config is the aigtool configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
	Fuzz   FuzzConfig   `yaml:"fuzz"`
}

// EnvLogLevel overrides the configured log level when set.
const EnvLogLevel = "AIGTOOL_LOG_LEVEL"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	opts := gen.DefaultOpts()
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Mode: "auto",
		},
		Fuzz: FuzzConfig{
			Seed:    1,
			Inputs:  opts.Inputs,
			Latches: opts.Latches,
			Ands:    opts.Ands,
			Outputs: opts.Outputs,
		},
	}
}

// Load loads configuration from a YAML file on top of the defaults.  An
// empty path or a missing file gives the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, errors.Wrap(err, "failed to read config")
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "failed to parse config %s", path)
			}
		}
	}
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.Log.Level = lvl
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config")
	}
	return nil
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"console", "json"}
	validModes   = []string{"auto", "ascii", "binary"}
)

func oneOf(v string, vs []string) bool {
	for _, w := range vs {
		if v == w {
			return true
		}
	}
	return false
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !oneOf(c.Log.Level, validLevels) {
		return errors.Errorf("invalid log level: %s (valid: %s)", c.Log.Level, strings.Join(validLevels, ", "))
	}
	if !oneOf(c.Log.Format, validFormats) {
		return errors.Errorf("invalid log format: %s (valid: %s)", c.Log.Format, strings.Join(validFormats, ", "))
	}
	if !oneOf(c.Output.Mode, validModes) {
		return errors.Errorf("invalid output mode: %s (valid: %s)", c.Output.Mode, strings.Join(validModes, ", "))
	}
	f := &c.Fuzz
	if f.Inputs < 0 || f.Latches < 0 || f.Ands < 0 || f.Outputs < 0 {
		return errors.New("fuzz sizes must not be negative")
	}
	return nil
}

// ModeFor gives the write mode for path: the configured mode, or the one
// given by the file suffix in auto mode, stripped if configured.
func (c *Config) ModeFor(path string) aiger.Mode {
	var mode aiger.Mode
	switch c.Output.Mode {
	case "ascii":
		mode = aiger.Ascii
	case "binary":
		mode = aiger.Binary
	default:
		mode = aigfile.ModeOf(path)
	}
	if c.Output.Strip {
		mode |= aiger.Stripped
	}
	return mode
}

// FuzzOpts gives the generator options for the fuzz configuration.
func (c *Config) FuzzOpts() *gen.Opts {
	opts := gen.DefaultOpts()
	opts.Inputs = c.Fuzz.Inputs
	opts.Latches = c.Fuzz.Latches
	opts.Ands = c.Fuzz.Ands
	opts.Outputs = c.Fuzz.Outputs
	return opts
}
