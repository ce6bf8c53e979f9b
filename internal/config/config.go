// Package config loads the jflat command configuration from the environment.
package config

import (
	"fmt"
	"io"

	"go-simpler.org/env"

	"github.com/arloliu/jflat/flatten"
	"github.com/arloliu/jflat/internal/logging"
	"github.com/arloliu/jflat/payload"
)

// Source resolves environment variables. os.LookupEnv is used when nil.
type Source interface {
	LookupEnv(key string) (string, bool)
}

// Map is a Source backed by a map, mostly for tests.
type Map map[string]string

// LookupEnv implements Source.
func (m Map) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// C is the command configuration.
type C struct {
	LogLevel string `env:"JFLAT_LOG_LEVEL" default:"info" usage:"log level: off fatal error warn info debug trace"`
	MaxDepth int    `env:"JFLAT_MAX_DEPTH" default:"0" usage:"maximum object nesting to descend into, 0 means unlimited"`
	MaxSize  int    `env:"JFLAT_MAX_SIZE" default:"0" usage:"maximum decoded document size in bytes, 0 means unlimited"`
	Strict   bool   `env:"JFLAT_STRICT" default:"false" usage:"stop at the first malformed object instead of skipping it"`
	NoColor  bool   `env:"JFLAT_NO_COLOR" default:"false" usage:"disable colored output"`
}

// Load reads the configuration from src, or from the process environment when
// src is nil, and validates it.
func Load(src Source) (*C, error) {
	cfg := &C{}

	var opts *env.Options
	if src != nil {
		opts = &env.Options{Source: src}
	}
	if err := env.Load(cfg, opts); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
		return nil, fmt.Errorf("invalid JFLAT_LOG_LEVEL %q", cfg.LogLevel)
	}
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("invalid JFLAT_MAX_DEPTH %d", cfg.MaxDepth)
	}
	if cfg.MaxSize < 0 {
		return nil, fmt.Errorf("invalid JFLAT_MAX_SIZE %d", cfg.MaxSize)
	}

	return cfg, nil
}

// Usage prints the environment variables with their defaults and descriptions.
func (c *C) Usage(w io.Writer) {
	env.Usage(c, w, nil)
}

// Level returns the configured log level.
func (c *C) Level() logging.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}

// FlattenOptions returns the iterator options matching the configuration.
func (c *C) FlattenOptions(logger flatten.Logger) []flatten.Option {
	opts := []flatten.Option{flatten.WithLogger(logger)}
	if c.MaxDepth > 0 {
		opts = append(opts, flatten.WithMaxDepth(c.MaxDepth))
	}
	if c.Strict {
		opts = append(opts, flatten.WithStrict())
	}

	return opts
}

// PayloadOptions returns the payload options matching the configuration.
func (c *C) PayloadOptions() []payload.Option {
	if c.MaxSize > 0 {
		return []payload.Option{payload.WithMaxSize(c.MaxSize)}
	}

	return nil
}
