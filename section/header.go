package section

import (
	"github.com/arloliu/colwire/endian"
	"github.com/arloliu/colwire/errs"
)

// Header represents the fixed-size header of an encoded block.
// It is 32 bytes and describes the envelope layout that follows it:
// the column index and the compressed body frame.
type Header struct {
	// Flag is a packed field for the magic number, endianness and body
	// compression method.
	Flag Flag // 4 bytes, offset 0-3

	Reserved [4]byte // Reserved for future use, must be zero, offset 28-31

	// ColumnCount is the number of columns stored in the block, max 65535.
	ColumnCount uint32 // 4 bytes, offset 4-7
	// RowCount is the number of rows every column carries.
	RowCount uint64 // 8 bytes, offset 8-15
	// IndexOffset is the byte offset to the start of the column index section.
	IndexOffset uint32 // 4 bytes, offset 16-19
	// DataOffset is the byte offset to the start of the body frame.
	DataOffset uint32 // 4 bytes, offset 20-23
	// DataSize is the uncompressed size of the body in bytes.
	// Used for verification and for calculating the last column's Size field.
	DataSize uint32 // 4 bytes, offset 24-27
}

// NewHeader creates a new Header for the given column and row counts.
func NewHeader(columnCount, rowCount int) (*Header, error) {
	if columnCount < 0 || columnCount > MaxColumnCount {
		return nil, errs.ErrInvalidColumnCount
	}
	if rowCount < 0 {
		return nil, errs.ErrInvalidRowCount
	}

	return &Header{
		Flag:        NewFlag(),
		ColumnCount: uint32(columnCount),
		RowCount:    uint64(rowCount),
		IndexOffset: IndexOffsetOffset,
		DataOffset:  uint32(IndexOffsetOffset + columnCount*ColumnEntrySize), //nolint:gosec
	}, nil
}

// Parse parses the header from a byte slice.
// It returns an error if the data is not exactly 32 bytes or if the flags
// are invalid.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Parse the flag first to determine endianness (the Options field itself
	// is always little-endian)
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Compression = data[2]
	h.Flag.Reserved = data[3]

	engine := h.GetEndianEngine()

	h.ColumnCount = engine.Uint32(data[4:8])
	h.RowCount = engine.Uint64(data[8:16])
	h.IndexOffset = engine.Uint32(data[16:20])
	h.DataOffset = engine.Uint32(data[20:24])
	h.DataSize = engine.Uint32(data[24:28])
	copy(h.Reserved[:], data[28:32])

	if err := h.Validate(); err != nil {
		return err
	}

	return nil
}

// Bytes serializes the Header into a byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.GetEndianEngine()

	// The Options field is always little-endian so decoders can read the
	// endianness bit before choosing an engine.
	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Compression
	b[3] = h.Flag.Reserved
	engine.PutUint32(b[4:8], h.ColumnCount)
	engine.PutUint64(b[8:16], h.RowCount)
	engine.PutUint32(b[16:20], h.IndexOffset)
	engine.PutUint32(b[20:24], h.DataOffset)
	engine.PutUint32(b[24:28], h.DataSize)
	copy(b[28:32], h.Reserved[:])

	return b
}

// GetEndianEngine returns the appropriate endian engine based on the header flags.
func (h *Header) GetEndianEngine() endian.EndianEngine {
	if h.Flag.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Validate checks the flag field, reserved bytes, and section offsets for
// structural consistency.
func (h *Header) Validate() error {
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	if h.Reserved != [4]byte{} {
		return errs.ErrInvalidHeaderFlags
	}

	if h.ColumnCount > MaxColumnCount {
		return errs.ErrInvalidColumnCount
	}

	if h.IndexOffset != IndexOffsetOffset {
		return errs.ErrInvalidPayloadOffset
	}

	wantDataOffset := uint64(IndexOffsetOffset) + uint64(h.ColumnCount)*ColumnEntrySize
	if uint64(h.DataOffset) != wantDataOffset {
		return errs.ErrInvalidPayloadOffset
	}

	return nil
}
