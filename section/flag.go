package section

import (
	"github.com/arloliu/colwire/compress"
	"github.com/arloliu/colwire/errs"
)

// Flag represents the packed configuration field at the start of a block
// header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 1-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the envelope format:
	//   - 0xCB10 (0b1100_1011_0001_0000): Block envelope format v1
	Options uint16

	// Compression indicates the compression method applied to the body frame.
	// Valid values: MethodNone, MethodZstd, MethodS2, MethodLZ4
	Compression uint8

	// Reserved is reserved for future use, must be set to 0.
	Reserved uint8
}

// NewFlag creates a new Flag with default settings: little-endian byte
// order and no compression.
func NewFlag() Flag {
	flag := Flag{
		Options:     MagicBlockV1Opt,
		Compression: uint8(compress.MethodNone),
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the block's multi-byte fields are little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the block's multi-byte fields are big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number in the Options field is valid.
func (f Flag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicBlockV1Opt
}

// SetCompression sets the body compression method.
func (f *Flag) SetCompression(method compress.Method) {
	f.Compression = uint8(method)
}

// GetCompression returns the body compression method.
func (f Flag) GetCompression() compress.Method {
	return compress.Method(f.Compression)
}

// Validate checks if the flag field contains valid values.
func (f Flag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	// Check reserved bits are zero
	if (f.Options & ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if f.Reserved != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.GetCompression().Valid() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
