package payload

import (
	"fmt"

	"github.com/arloliu/jflat/errs"
	"github.com/arloliu/jflat/internal/options"
)

type config struct {
	maxSize int
}

// Option configures Open and Read.
type Option = options.Option[*config]

// WithMaxSize rejects payloads whose decoded document is larger than n bytes.
func WithMaxSize(n int) Option {
	return options.New(func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: max payload size %d", errs.ErrInvalidCapacity, n)
		}
		c.maxSize = n

		return nil
	})
}
