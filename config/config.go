// Package config loads the transformer pipeline configuration from YAML.
package config

import (
	"os"

	zxtransformer "github.com/PolyhedraZK/zxtransformer"
	"github.com/PolyhedraZK/zxtransformer/optimize"
	"github.com/consensys/gnark/logger"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config selects the optimizer and the ambient behaviour of a Transformer.
type Config struct {
	// Optimizer is one of optimize.Names().
	Optimizer string `yaml:"optimizer"`
	// CacheSize enables the optimizer cache when positive.
	CacheSize int `yaml:"cache_size"`
	// IgnoreTags only matches circuits built with circuit.Operation.WithTags,
	// OpenQASM input carries no tags.
	IgnoreTags []string `yaml:"ignore_tags"`
	// LogLevel is a zerolog level name; "disabled" silences the transformer.
	LogLevel string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		Optimizer: "full_reduce",
		LogLevel:  "info",
	}
}

// Load reads a YAML file. Fields missing from the file keep their default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if _, err := optimize.ByName(c.Optimizer); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if c.CacheSize < 0 {
		return errors.Errorf("invalid config: negative cache_size %d", c.CacheSize)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// Logger returns the gnark logger at the configured level.
func (c *Config) Logger() zerolog.Logger {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return logger.Logger().Level(lvl)
}

// Options converts the configuration into transformer options.
func (c *Config) Options() ([]zxtransformer.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	o, _ := optimize.ByName(c.Optimizer)
	opts := []zxtransformer.Option{
		zxtransformer.WithOptimizer(o),
		zxtransformer.WithLogger(c.Logger()),
	}
	if len(c.IgnoreTags) > 0 {
		opts = append(opts, zxtransformer.WithIgnoredTags(c.IgnoreTags...))
	}
	if c.CacheSize > 0 {
		opts = append(opts, zxtransformer.WithCache(c.CacheSize))
	}
	return opts, nil
}

// NewTransformer builds a Transformer from the configuration.
func (c *Config) NewTransformer() (*zxtransformer.Transformer, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return zxtransformer.New(opts...)
}
