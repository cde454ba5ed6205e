package section

import (
	"github.com/arloliu/colwire/endian"
	"github.com/arloliu/colwire/errs"
)

// ColumnEntry records information about a single column in the block index
// section. It is a fixed size of 16 bytes and uses absolute offsets into
// the uncompressed body.
//
// Absolute Offset Encoding:
//   - Each column stores its actual byte offset in the body
//   - Enables O(1) random access to any column without decoding the others
//   - The decoder derives each column's size from offset differences
//
// Example with 3 columns:
//
//	Column "id":    150 bytes → Offset=0
//	Column "name":  200 bytes → Offset=150
//	Column "tag":   100 bytes → Offset=350
//	Direct access: body[entry.Offset : entry.Offset+entry.Size]
type ColumnEntry struct {
	// NameHash is the xxHash64 hash of the column name string.
	NameHash uint64 // 8 bytes, offset 0-7

	// Offset is the absolute byte offset from the start of the uncompressed
	// body where this column's payload begins.
	Offset uint32 // 4 bytes, offset 8-11

	// Reserved for future use, must be set to 0.
	Reserved uint32 // 4 bytes, offset 12-15

	// Size is the byte size of this column's payload in the uncompressed
	// body. Calculated by the decoder from offset differences:
	//   Size[i] = Offset[i+1] - Offset[i]
	// and for the last column:
	//   Size[last] = DataSize - Offset[last]
	// where DataSize comes from the Header. It is not stored on the wire.
	Size uint32
}

// WriteToSlice writes the column entry to a byte slice using the specified
// endian engine. The slice must be at least 16 bytes long.
func (e *ColumnEntry) WriteToSlice(b []byte, engine endian.EndianEngine) error {
	if len(b) < ColumnEntrySize {
		return errs.ErrInvalidIndexEntrySize
	}

	engine.PutUint64(b[0:8], e.NameHash)
	engine.PutUint32(b[8:12], e.Offset)
	engine.PutUint32(b[12:16], e.Reserved)

	return nil
}

// ParseColumnEntry parses a column index entry from a byte slice.
// The Size field must be calculated separately by the caller from offset
// differences.
func ParseColumnEntry(data []byte, engine endian.EndianEngine) (ColumnEntry, error) {
	if len(data) < ColumnEntrySize {
		return ColumnEntry{}, errs.ErrInvalidIndexEntrySize
	}

	return ColumnEntry{
		NameHash: engine.Uint64(data[0:8]),
		Offset:   engine.Uint32(data[8:12]),
		Reserved: engine.Uint32(data[12:16]),
		Size:     0, // Calculated by the decoder from offset differences
	}, nil
}
