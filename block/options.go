package block

import (
	"fmt"

	"github.com/arloliu/colwire/compress"
	"github.com/arloliu/colwire/internal/options"
)

// WriteOption configures how a block is encoded.
type WriteOption = options.Option[*writeConfig]

type writeConfig struct {
	method    compress.Method
	bigEndian bool
}

func defaultWriteConfig() writeConfig {
	return writeConfig{method: compress.MethodNone}
}

// WithCompression selects the body compression method. The default is
// MethodNone.
func WithCompression(method compress.Method) WriteOption {
	return options.New(func(c *writeConfig) error {
		if !method.Valid() {
			return fmt.Errorf("invalid block compression: %s", method)
		}

		c.method = method

		return nil
	})
}

// WithLittleEndian encodes multi-byte envelope fields in little-endian
// byte order. This is the default.
func WithLittleEndian() WriteOption {
	return options.NoError(func(c *writeConfig) {
		c.bigEndian = false
	})
}

// WithBigEndian encodes multi-byte envelope fields in big-endian byte
// order. Decoders pick the order up from the header flag.
func WithBigEndian() WriteOption {
	return options.NoError(func(c *writeConfig) {
		c.bigEndian = true
	})
}
