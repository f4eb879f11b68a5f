// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles eventgen project configuration.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the eventgen configuration file.
const FileName = "eventgen.yaml"

// Config represents the eventgen.yaml project configuration file.
type Config struct {
	Version int `yaml:"version"`
	// Inputs are the Go source files to translate, relative to the
	// config file's directory.
	Inputs []string `yaml:"inputs,omitempty"`
	// Output is the directory generated files are written to.
	Output string `yaml:"output,omitempty"`
	// Format is the target dialect, e.g. "rust".
	Format string `yaml:"format,omitempty"`
	// Overwrite allows replacing existing generated files.
	Overwrite bool `yaml:"overwrite,omitempty"`
}

// Default returns a Config with current version and default values.
func Default() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Output:  "generated",
		Format:  "rust",
	}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.Newf("unsupported config version %d", c.Version)
	}
	if c.Format == "" {
		return errors.New("format is required")
	}
	return nil
}
