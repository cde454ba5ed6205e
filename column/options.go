package column

import (
	"fmt"

	"github.com/arloliu/colwire/errs"
	"github.com/arloliu/colwire/internal/options"
)

const (
	// DefaultBlockSize is the minimum arena block size in bytes.
	DefaultBlockSize = 4096
	// DefaultSizeEstimate is the assumed per-value byte size used to size
	// arena blocks when no better estimate is known.
	DefaultSizeEstimate = 8
	// DefaultLookahead is the number of future values a freshly sized arena
	// block should hold.
	DefaultLookahead = 32
)

// Option configures how a column sizes its storage.
type Option = options.Option[*config]

type config struct {
	blockSize int
	estimate  int
	lookahead int
}

func defaultConfig() config {
	return config{
		blockSize: DefaultBlockSize,
		estimate:  DefaultSizeEstimate,
		lookahead: DefaultLookahead,
	}
}

func applyOptions(cfg *config, opts ...Option) error {
	return options.Apply(cfg, opts...)
}

// WithBlockSize sets the minimum allocation unit in bytes. String columns
// never allocate an arena block smaller than this; FixedString columns round
// buffer growth up to it. Must be positive.
func WithBlockSize(n int) Option {
	return options.New(func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidBlockSize, n)
		}

		c.blockSize = n

		return nil
	})
}

// WithSizeEstimate sets the expected byte size of a single value, used by
// String columns to pre-size arena blocks. Zero means unknown; negative
// values are rejected.
func WithSizeEstimate(n int) Option {
	return options.New(func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidSizeEstimate, n)
		}

		c.estimate = n

		return nil
	})
}

// WithLookahead sets how many future values a newly grown arena block is
// sized for. Must be positive.
func WithLookahead(n int) Option {
	return options.New(func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidLookahead, n)
		}

		c.lookahead = n

		return nil
	})
}
