// Package config loads the optional .loxrc.yaml file that controls REPL
// cosmetics and the default log level. Its absence is not an error: Load
// then returns Default(), the interpreter's built-in defaults.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = ".loxrc.yaml"

// Config is the shape of .loxrc.yaml. Load decodes the file over
// Default(), so fields a partial file leaves out keep their default values.
type Config struct {
	Prompt       string `yaml:"prompt"`
	Banner       string `yaml:"banner"`
	Color        *bool  `yaml:"color"`
	HistoryPath  string `yaml:"history_path"`
	DefaultLevel string `yaml:"default_log_level"`
}

// Default returns the built-in configuration used when no .loxrc.yaml is
// present.
func Default() *Config {
	enabled := true
	return &Config{
		Prompt:       "lox> ",
		Banner:       "Lox",
		Color:        &enabled,
		HistoryPath:  ".lox_history",
		DefaultLevel: "warn",
	}
}

// Load reads and parses path, merging it over Default(). A missing file
// is not an error; any other read or parse failure is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Discover finds .loxrc.yaml the way the CLI does when no explicit
// --config path is given: the user's home directory first, then the
// working directory, first hit wins. Neither being present is not an
// error; it returns Default().
func Discover() (*Config, error) {
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, fileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Load(fileName)
}

// ColorEnabled reports whether REPL output should be colorized.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}
