package zxtransformer

import (
	"github.com/PolyhedraZK/zxtransformer/optimize"
	"github.com/PolyhedraZK/zxtransformer/zx"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type transformerConfig struct {
	optimizer  optimize.Optimizer
	log        *zerolog.Logger
	ignoreTags []string
	cacheSize  int
}

// Option configures a Transformer.
type Option func(*transformerConfig) error

// WithOptimizer replaces the default full-reduce strategy.
func WithOptimizer(o optimize.Optimizer) Option {
	return func(c *transformerConfig) error {
		if o == nil {
			return errors.New("nil optimizer")
		}
		c.optimizer = o
		return nil
	}
}

// WithOptimizerFunc is WithOptimizer for a plain function.
func WithOptimizerFunc(f func(*zx.Circuit) (*zx.Circuit, error)) Option {
	return func(c *transformerConfig) error {
		if f == nil {
			return errors.New("nil optimizer")
		}
		c.optimizer = optimize.Func(f)
		return nil
	}
}

// WithLogger replaces the gnark logger Transform reports to.
func WithLogger(l zerolog.Logger) Option {
	return func(c *transformerConfig) error {
		c.log = &l
		return nil
	}
}

// WithIgnoredTags passes operations carrying any of the tags through without
// translating them.
func WithIgnoredTags(tags ...string) Option {
	return func(c *transformerConfig) error {
		c.ignoreTags = append(c.ignoreTags, tags...)
		return nil
	}
}

// WithCache memoises the optimizer results of up to size distinct units.
func WithCache(size int) Option {
	return func(c *transformerConfig) error {
		if size <= 0 {
			return errors.Errorf("cache size must be positive, got %d", size)
		}
		c.cacheSize = size
		return nil
	}
}
