// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the chart defaults used by the commands.
package config

import (
	"fmt"
	"os"

	"github.com/ledgerlens/chartkit/band"
	"gopkg.in/yaml.v2"
)

// Config holds chart defaults. Request fields left unset fall back to
// these.
type Config struct {
	// Palette is a colorscale palette name.
	Palette string `yaml:"palette"`

	Ticks struct {
		Count      int     `yaml:"count"`
		MinSpacing float64 `yaml:"min_spacing"`
	} `yaml:"ticks"`

	Band struct {
		Padding float64 `yaml:"padding"`
		Gutter  float64 `yaml:"gutter"`
	} `yaml:"band"`

	Font band.Font `yaml:"font"`

	// WidthCache bounds the number of cached label widths.
	WidthCache int64 `yaml:"width_cache"`

	Sort struct {
		Order string `yaml:"order"`
	} `yaml:"sort"`
}

// Default returns the built-in defaults.
func Default() *Config {
	c := &Config{
		Palette:    "category10",
		Font:       band.Font{Size: 12, Family: "sans-serif"},
		WidthCache: 1 << 16,
	}
	c.Ticks.Count = 6
	c.Band.Padding = 0.1
	c.Band.Gutter = 8
	c.Sort.Order = "desc"
	return c
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := Parse(data, c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML data into c, leaving fields absent from data
// unchanged.
func Parse(data []byte, c *Config) error {
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return err
	}
	if c.Ticks.Count < 1 {
		return fmt.Errorf("ticks.count must be positive, got %d", c.Ticks.Count)
	}
	if c.Band.Padding < 0 || c.Band.Padding >= 1 {
		return fmt.Errorf("band.padding must be in [0, 1), got %v", c.Band.Padding)
	}
	return nil
}
