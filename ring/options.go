package ring

import (
	"fmt"

	"github.com/arloliu/jflat/errs"
	"github.com/arloliu/jflat/internal/options"
)

type config struct {
	fixed       bool
	maxCapacity int
}

// Option configures a Sequence created by New or Init.
type Option = options.Option[*config]

// WithFixedCapacity makes the sequence reject insertions once full instead of growing.
func WithFixedCapacity() Option {
	return options.NoError(func(c *config) {
		c.fixed = true
	})
}

// WithMaxCapacity bounds geometric growth to n elements.
//
// Once the capacity reaches n, insertions into a full sequence fail with
// errs.ErrCapacityExceeded and leave the sequence unchanged.
func WithMaxCapacity(n int) Option {
	return options.New(func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: max capacity %d", errs.ErrInvalidCapacity, n)
		}
		c.maxCapacity = n

		return nil
	})
}
