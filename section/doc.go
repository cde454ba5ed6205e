// Package section defines the low-level binary structures and constants of
// the block envelope format.
//
// This package provides the types that define the physical layout of an
// encoded block. It handles binary serialization/deserialization of the
// header, flag, column index entries, and the compression frame header,
// ensuring consistent byte-level representation across platforms. The
// block package composes these structures; section itself performs no I/O.
//
// # Block Structure
//
// An encoded block consists of fixed-size sections followed by one
// variable-size frame:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	│  - Flag (4 bytes): magic/endianness/compression         │
//	│  - ColumnCount (4 bytes)                                │
//	│  - RowCount (8 bytes)                                   │
//	│  - Offsets and body size (12 bytes)                     │
//	├─────────────────────────────────────────────────────────┤
//	│ Column Index (N × 16 bytes, fixed per entry)            │
//	│  - One entry per column                                 │
//	│  - Name hash, absolute body offset                      │
//	├─────────────────────────────────────────────────────────┤
//	│ Frame Header (17 bytes, fixed, always little-endian)    │
//	│  - Checksum, method, compressed and raw sizes           │
//	├─────────────────────────────────────────────────────────┤
//	│ Frame Payload (variable)                                │
//	│  - Compressed concatenation of the column bodies        │
//	└─────────────────────────────────────────────────────────┘
//
// The uncompressed body is the concatenation, per column, of the
// uvarint-length-prefixed name, the uvarint-length-prefixed type name, and
// the column's serialized payload. Column index offsets address this
// uncompressed body, so any column can be decoded without touching the
// others once the frame is opened.
//
// # Endianness
//
// The Flag.Options field and the frame header are always little-endian.
// Every other multi-byte field follows the endianness bit in the flag, so
// a decoder reads the first two bytes, picks an engine, and parses the
// rest with it.
package section
