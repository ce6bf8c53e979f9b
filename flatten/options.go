package flatten

import (
	"fmt"

	"github.com/arloliu/jflat/errs"
	"github.com/arloliu/jflat/internal/options"
)

// Logger receives diagnostic events from an Iterator.
type Logger interface {
	Debugf(format string, args ...any)
}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(format string, args ...any)

// Debugf implements Logger.
func (f LoggerFunc) Debugf(format string, args ...any) {
	if f != nil {
		f(format, args...)
	}
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}

type config struct {
	maxDepth int
	strict   bool
	logger   Logger
}

func defaultConfig() config {
	return config{logger: noopLogger{}}
}

// Option configures an Iterator.
type Option = options.Option[*config]

// WithMaxDepth bounds the number of nested objects the iterator descends into.
//
// A nested object beyond the limit is skipped as a whole and Err reports
// errs.ErrDepthExceeded. Zero, the default, means no limit besides memory.
func WithMaxDepth(depth int) Option {
	return options.New(func(c *config) error {
		if depth < 0 {
			return fmt.Errorf("%w: max depth %d", errs.ErrInvalidCapacity, depth)
		}
		c.maxDepth = depth

		return nil
	})
}

// WithStrict stops the iteration at the first malformed span instead of
// resuming the parent object.
func WithStrict() Option {
	return options.NoError(func(c *config) {
		c.strict = true
	})
}

// WithLogger sets the logger receiving debug events: spills of the descent
// stack, path truncation, malformed spans and skipped deep objects.
func WithLogger(logger Logger) Option {
	return options.NoError(func(c *config) {
		if logger == nil {
			c.logger = noopLogger{}
			return
		}
		c.logger = logger
	})
}
