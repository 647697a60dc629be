// SPDX-License-Identifier: Apache-2.0
// Source: github.com/IlyaGrebnov/esa-matchfinder

package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	esamf "github.com/IlyaGrebnov/esa-matchfinder"
)

// Config represents the tool configuration; flags override file values.
type Config struct {
	Match struct {
		MinLength int `toml:"min_length"`
		MaxLength int `toml:"max_length"`
	} `toml:"match"`

	Engine struct {
		Workers   int `toml:"workers"`
		BlockSize int `toml:"block_size"`
	} `toml:"engine"`

	Report struct {
		BestOnly bool `toml:"best_only"`
		Validate bool `toml:"validate"`
	} `toml:"report"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Match.MinLength = esamf.MinMatchLength
	cfg.Match.MaxLength = esamf.MaxMatchLength
	cfg.Engine.Workers = 1
	cfg.Engine.BlockSize = 1 << 20
	return cfg
}

// LoadConfig reads a TOML configuration file over the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
