// Package config loads aoc2022.hcl.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/adventofcode2022/internal/rps"
)

// Config represents the complete solver configuration
type Config struct {
	Day1   *Day1Settings   `hcl:"day1,block"`
	Day2   *Day2Settings   `hcl:"day2,block"`
	Output *OutputSettings `hcl:"output,block"`
}

// Day1Settings configures the calorie counter
type Day1Settings struct {
	Input string `hcl:"input,optional"`
	Top   int    `hcl:"top,optional"`
}

// Day2Settings configures the strategy guide scorer
type Day2Settings struct {
	Input  string `hcl:"input,optional"`
	Decode string `hcl:"decode,optional"`
}

// OutputSettings contains logging and terminal settings
type OutputSettings struct {
	LogLevel  string `hcl:"log_level,optional"`
	Color     string `hcl:"color,optional"`
	ReportDir string `hcl:"report_dir,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Day1: &Day1Settings{
			Input: "day_1/input.txt",
			Top:   3,
		},
		Day2: &Day2Settings{
			Input:  "day_2/input.txt",
			Decode: string(rps.DecodeHands),
		},
		Output: &OutputSettings{
			LogLevel: "warn",
			Color:    "auto",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Day1 == nil {
		c.Day1 = defaults.Day1
	}
	if c.Day1.Input == "" {
		c.Day1.Input = defaults.Day1.Input
	}
	if c.Day1.Top == 0 {
		c.Day1.Top = defaults.Day1.Top
	}

	if c.Day2 == nil {
		c.Day2 = defaults.Day2
	}
	if c.Day2.Input == "" {
		c.Day2.Input = defaults.Day2.Input
	}
	if c.Day2.Decode == "" {
		c.Day2.Decode = defaults.Day2.Decode
	}

	if c.Output == nil {
		c.Output = defaults.Output
	}
	if c.Output.LogLevel == "" {
		c.Output.LogLevel = defaults.Output.LogLevel
	}
	if c.Output.Color == "" {
		c.Output.Color = defaults.Output.Color
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Day1.Top <= 0 {
		return fmt.Errorf("day1 top must be positive, got %d", c.Day1.Top)
	}

	if _, err := rps.ParseDecoding(c.Day2.Decode); err != nil {
		return fmt.Errorf("day2: %w", err)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Output.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.Output.LogLevel)
	}

	validColors := map[string]bool{
		"auto":   true,
		"always": true,
		"never":  true,
	}
	if !validColors[c.Output.Color] {
		return fmt.Errorf("invalid color mode: %s", c.Output.Color)
	}

	return nil
}
