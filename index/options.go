package index

import (
	"github.com/arloliu/jflat/flatten"
	"github.com/arloliu/jflat/internal/hash"
	"github.com/arloliu/jflat/internal/options"
)

type config struct {
	hash    func(path string) uint64
	flatten []flatten.Option
}

// Option configures Build.
type Option = options.Option[*config]

// WithHashFunc replaces the xxHash64 path hash.
func WithHashFunc(fn func(path string) uint64) Option {
	return options.NoError(func(c *config) {
		if fn == nil {
			fn = hash.ID
		}
		c.hash = fn
	})
}

// WithFlattenOptions passes options to the underlying flatten.Iterator.
func WithFlattenOptions(opts ...flatten.Option) Option {
	return options.NoError(func(c *config) {
		c.flatten = append(c.flatten, opts...)
	})
}
