// Package config holds the bridge settings loadable from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/gbln/internal/errors"
)

// MaxIndent bounds the pretty-printer indent width.
const MaxIndent = 8

// Config represents the complete configuration for the bridge
type Config struct {
	Numbers NumbersConfig `yaml:"numbers"`
	Pretty  PrettyConfig  `yaml:"pretty"`
	Dev     DevConfig     `yaml:"dev"`
}

// NonFinitePolicy decides what the inbound conversion does with NaN and ±Inf.
type NonFinitePolicy string

const (
	// NonFiniteFloat folds NaN and ±Inf into the f64 variant.
	NonFiniteFloat NonFinitePolicy = "float"
	// NonFiniteReject fails the conversion.
	NonFiniteReject NonFinitePolicy = "reject"
)

// NumbersConfig controls numeric inference
type NumbersConfig struct {
	NonFinite NonFinitePolicy `yaml:"non_finite"`
}

// PrettyConfig controls the pretty encoder layout
type PrettyConfig struct {
	Indent int `yaml:"indent"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Numbers: NumbersConfig{
			NonFinite: NonFiniteFloat,
		},
		Pretty: PrettyConfig{
			Indent: 2,
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".gbln.yml", ".gbln.yaml", "gbln.yml", "gbln.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate checks option values
func (c *Config) Validate() error {
	switch c.Numbers.NonFinite {
	case NonFiniteFloat, NonFiniteReject:
	default:
		return errors.NewConfigError(
			fmt.Sprintf("numbers.non_finite must be %q or %q, got %q", NonFiniteFloat, NonFiniteReject, c.Numbers.NonFinite),
			errors.ErrInvalidConfig,
		)
	}

	if c.Pretty.Indent < 0 || c.Pretty.Indent > MaxIndent {
		return errors.NewConfigError(
			fmt.Sprintf("pretty.indent must be between 0 and %d, got %d", MaxIndent, c.Pretty.Indent),
			errors.ErrInvalidConfig,
		)
	}

	return nil
}

// RejectNonFinite reports whether NaN and ±Inf fail the inbound conversion.
func (c *Config) RejectNonFinite() bool {
	return c.Numbers.NonFinite == NonFiniteReject
}

// IndentString returns one level of pretty indentation.
func (c *Config) IndentString() string {
	return strings.Repeat(" ", c.Pretty.Indent)
}
