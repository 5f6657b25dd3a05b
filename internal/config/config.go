// Package config holds the defaults of the csvsplit command.
//
// Defaults come from Default, optionally overlaid by a YAML file:
//
//	delimiter: semicolon
//	encoding: shift_jis
//	output: json
//	header: true
//	log_level: debug
//	workers: 4
//
// Command-line flags override both.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shapestone/csvsplit/pkg/csv"
)

// Output formats accepted by Config.Output.
const (
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputTable = "table"
)

// Config is the csvsplit configuration.
type Config struct {
	Delimiter csv.Delimiter `yaml:"delimiter"`
	Encoding  string        `yaml:"encoding"`
	Output    string        `yaml:"output"`
	Header    bool          `yaml:"header"`
	LogLevel  string        `yaml:"log_level"`
	Workers   int           `yaml:"workers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Delimiter: csv.Comma,
		Encoding:  "utf-8",
		Output:    OutputJSON,
		LogLevel:  "info",
	}
}

// Load reads the YAML file at path over Default. Keys missing from the file
// keep their default value. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config YAML %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := c.Delimiter.Validate(); err != nil {
		return err
	}
	if _, err := csv.LookupEncoding(c.Encoding); err != nil {
		return err
	}
	switch c.Output {
	case OutputJSON, OutputYAML, OutputTable:
	default:
		return fmt.Errorf("unknown output format %q (want %s, %s or %s)", c.Output, OutputJSON, OutputYAML, OutputTable)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	return nil
}

// FileOptions returns the csv.FileOptions described by c.
func (c Config) FileOptions() (csv.FileOptions, error) {
	enc, err := csv.LookupEncoding(c.Encoding)
	if err != nil {
		return csv.FileOptions{}, err
	}
	return csv.FileOptions{
		Delimiter: c.Delimiter,
		Encoding:  enc,
		Workers:   c.Workers,
	}, nil
}

// ParseLevel maps a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}
