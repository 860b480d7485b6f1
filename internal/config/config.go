// Package config loads cooktex configuration files. A config file supplies
// defaults for the CLI flags; explicit flags always win.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-cooktex/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// Config holds all configuration for cookbook generation.
//
//	template:
//	  dir: ./latex
//	output:
//	  dir: ./build
//	units:
//	  system: metric
//	  file: ./units.yaml
type Config struct {
	Template TemplateConfig `yaml:"template"`
	Output   OutputConfig   `yaml:"output"`
	Units    UnitsConfig    `yaml:"units"`
}

// TemplateConfig locates the LaTeX template tree cloned into the output.
type TemplateConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig locates the generated cookbook.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// UnitsConfig selects the conversion target and an optional custom units
// file.
type UnitsConfig struct {
	System string `yaml:"system"` // "", "metric", "imperial"
	File   string `yaml:"file"`
}

// DefaultConfig returns an empty configuration: no template or output
// defaults, no unit conversion.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig reads a YAML config file. Unknown fields are rejected so typos
// fail loudly instead of silently keeping defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI user
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}
