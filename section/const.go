package section

import "math"

const (
	// Bit masks for the packed Flag.Options field
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic number (bits 4-15)
	MagicBlockV1Opt = 0xCB10 // MagicBlockV1Opt is the version 1 magic number for the block envelope format.
)

// offset and section sizes in the encoded block
const (
	HeaderSize        = 32             // fixed header size in bytes
	ColumnEntrySize   = 16             // fixed column index entry size in bytes
	FrameHeaderSize   = 17             // fixed compression frame header size in bytes
	IndexOffsetOffset = HeaderSize     // byte offset where the column index starts
	MaxColumnCount    = math.MaxUint16 // maximum number of columns per block
	MaxOffset         = math.MaxUint32 // maximum body offset value in a column entry
)
