package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up in the working directory
// when no --config flag is given.
const DefaultPath = ".bin2c.yaml"

// Config represents the configuration parsed from .bin2c.yaml.
type Config struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
	// Output controls how the generated source file is written.
	Output OutputConfig `yaml:"output"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty means stderr.
	Path string `yaml:"path"`
}

// OutputConfig controls writing of the generated file.
type OutputConfig struct {
	// Atomic writes to a temporary file and renames it over the destination.
	// Defaults to true.
	Atomic *bool `yaml:"atomic"`
}

// AtomicEnabled reports whether atomic output is enabled.
func (o OutputConfig) AtomicEnabled() bool {
	return o.Atomic == nil || *o.Atomic
}

// Load reads the configuration file at path.
// If the file does not exist and required is false, an empty Config is returned.
// Unknown keys are rejected.
func Load(path string, required bool) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the configuration for errors.
func Validate(config *Config) error {
	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}
	return nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(config *Config) {
	if config.Logging.Level == "" {
		config.Logging.Level = "warn"
	}
	if config.Output.Atomic == nil {
		t := true
		config.Output.Atomic = &t
	}
}
