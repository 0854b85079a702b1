// Package config provides the configuration surface of the storage
// engine: table sizing, compression parallelism and logging, loadable
// from YAML.
package config

import (
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/apopiak/hyrise/pkg/errors"
)

// Config is the engine configuration.
type Config struct {
	// Table settings control chunk sizing.
	Table TableConfig `yaml:"table" json:"table"`

	// Compression settings control the table-level drivers.
	Compression CompressionConfig `yaml:"compression" json:"compression"`

	// Logging configures the structured logger.
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// TableConfig contains table container settings.
type TableConfig struct {
	// MaxChunkSize caps the rows per chunk; 0 means unlimited.
	MaxChunkSize int `yaml:"max_chunk_size" json:"max_chunk_size"`
}

// CompressionConfig contains dictionary compression settings.
type CompressionConfig struct {
	// Parallel selects the worker-pool table driver.
	Parallel bool `yaml:"parallel" json:"parallel"`
	// Workers is the worker count of the parallel driver; 0 means
	// GOMAXPROCS.
	Workers int `yaml:"workers" json:"workers"`
}

// LoggingConfig contains logger settings.
type LoggingConfig struct {
	Level       string `yaml:"level" json:"level"`
	Development bool   `yaml:"development" json:"development"`
	Encoding    string `yaml:"encoding" json:"encoding"`
}

// Default returns the configuration used when nothing is specified.
func Default() *Config {
	return &Config{
		Table: TableConfig{
			MaxChunkSize: 65536,
		},
		Compression: CompressionConfig{
			Parallel: false,
			Workers:  runtime.NumCPU(),
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "json",
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Table.MaxChunkSize < 0 {
		return errors.New(errors.ErrorTypeConfig, "max_chunk_size must not be negative").
			WithDetail("max_chunk_size", c.Table.MaxChunkSize)
	}
	if c.Compression.Workers < 0 {
		return errors.New(errors.ErrorTypeConfig, "workers must not be negative").
			WithDetail("workers", c.Compression.Workers)
	}
	switch c.Logging.Encoding {
	case "", "json", "console":
	default:
		return errors.New(errors.ErrorTypeConfig, "encoding must be json or console").
			WithDetail("encoding", c.Logging.Encoding)
	}
	return nil
}

// LoadFromFile reads a YAML configuration file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "reading config file")
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "parsing config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToFile writes the configuration as YAML.
func (c *Config) SaveToFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "marshaling config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "writing config file")
	}
	return nil
}
