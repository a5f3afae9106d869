// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/channel-logger/src/logger"
	"gopkg.in/yaml.v3"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config represents the logger configuration structure.
type Config struct {
	// Type: Logger flavor, "console" or "devops"
	Type string `json:"type" yaml:"type"`

	// Channels: Explicit enable/disable per channel. Omitted channels keep
	// their defaults (verbose off, everything else on).
	Channels struct {
		Info    *bool `json:"info,omitempty" yaml:"info,omitempty"`
		Error   *bool `json:"error,omitempty" yaml:"error,omitempty"`
		Warning *bool `json:"warning,omitempty" yaml:"warning,omitempty"`
		Section *bool `json:"section,omitempty" yaml:"section,omitempty"`
		Verbose *bool `json:"verbose,omitempty" yaml:"verbose,omitempty"`
	} `json:"channels" yaml:"channels"`

	// Decorators: Text transformations applied around the base logger
	Decorators struct {
		// Prefix: Literal prefix added to every line
		Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
		// Indent: Number of spaces added to every line
		Indent int `json:"indent,omitempty" yaml:"indent,omitempty"`
		// Timestamps: Prefix every line with the UTC time of the call
		Timestamps bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
		// LineNumbers: Number every call
		LineNumbers bool `json:"lineNumbers,omitempty" yaml:"lineNumbers,omitempty"`
		// FirstLineNumber: Number of the first call when LineNumbers is set
		FirstLineNumber int `json:"firstLineNumber,omitempty" yaml:"firstLineNumber,omitempty"`
		// SplitLines: Break multi-line text into individual lines
		SplitLines bool `json:"splitLines" yaml:"splitLines"`
	} `json:"decorators" yaml:"decorators"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	config := &Config{Type: string(logger.TypeConsole)}
	config.Decorators.FirstLineNumber = 1
	config.Decorators.SplitLines = true
	return config
}

// detectConfigFormat determines the configuration file format based on file extension.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load reads the configuration at configPath on top of [Default].
// An empty configPath returns the defaults. The format is picked from the
// extension: .yaml and .yml are YAML, anything else is JSON.
func Load(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
		return nil, err
	}

	if _, err := logger.ParseType(config.Type); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

func channel(enabled *bool) logger.Channel {
	if enabled == nil {
		return logger.Channel{}
	}
	return logger.Toggle(*enabled)
}

// Options converts the channel settings to [logger.Options].
func (c *Config) Options() logger.Options {
	return logger.Options{
		Info:    channel(c.Channels.Info),
		Error:   channel(c.Channels.Error),
		Warning: channel(c.Channels.Warning),
		Section: channel(c.Channels.Section),
		Verbose: channel(c.Channels.Verbose),
	}
}

// Build creates the configured logger writing to console.
// A nil console writes to standard output and standard error.
func (c *Config) Build(console *logger.Console) (logger.Logger, error) {
	typ, err := logger.ParseType(c.Type)
	if err != nil {
		return nil, err
	}

	log := logger.NewDefaultLogger(logger.DefaultOptions{
		Options: c.Options(),
		Type:    typ,
		Console: console,
	})

	// The decorator closest to the sink contributes the leftmost text.
	d := c.Decorators
	if d.Timestamps {
		log = logger.Timestamps(log)
	}
	if d.LineNumbers {
		log = logger.LineNumbersFrom(log, d.FirstLineNumber)
	}
	if d.Prefix != "" {
		log = logger.Prefix(log, logger.StaticPrefix(d.Prefix))
	}
	if d.Indent > 0 {
		log = logger.IndentSpaces(log, d.Indent)
	}
	if d.SplitLines {
		log = logger.SplitLines(log)
	}
	return log, nil
}
