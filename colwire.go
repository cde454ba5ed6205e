// Package colwire implements the in-memory column stores and binary wire
// format used to ship string columns between a columnar database and its
// clients.
//
// A block is a set of named, equal-length columns. Encoding serializes every
// column's body into one compressed, checksummed frame behind a fixed header
// and a hash-keyed column index, so a reader can restore the whole block or
// a single column by name without touching the rest.
//
// # Core Features
//
//   - Variable-width string columns over bump-allocated arenas: appends copy
//     into block-sized slabs, reads are zero-copy views
//   - Three string ownership modes: copy, adopt (move) and borrow
//   - Fixed-width string columns in a single zero-padded buffer
//   - Hash-based column identification (64-bit xxHash64) for O(1) lookups
//   - Optional body compression (None, Zstd, S2, LZ4)
//   - Little- or big-endian envelopes, detected from the header flag
//   - xxHash64 frame checksums for data integrity
//
// # Basic Usage
//
// Building and encoding a block:
//
//	import "github.com/arloliu/colwire"
//
//	messages, _ := colwire.NewStringColumn()
//	_ = messages.AppendString("connection established")
//	_ = messages.AppendString("connection lost")
//
//	hosts, _ := colwire.NewFixedStringColumn(16)
//	_ = hosts.AppendString("db-01")
//	_ = hosts.AppendString("db-02")
//
//	blk := colwire.NewBlock()
//	_ = blk.AddColumn("message", messages)
//	_ = blk.AddColumn("host", hosts)
//
//	data, _ := colwire.EncodeBlock(blk)
//
// Decoding the whole block, or a single column by name:
//
//	blk, _ = colwire.DecodeBlock(data)
//	col, _ := colwire.ReadBlockColumn(data, "message")
//	v, _ := col.At(0)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the column and
// block packages, simplifying the most common use cases. For fine-grained
// control over column sizing, ownership modes and envelope layout, use those
// packages directly.
package colwire

import (
	"bytes"
	"io"

	"github.com/arloliu/colwire/block"
	"github.com/arloliu/colwire/coltype"
	"github.com/arloliu/colwire/column"
	"github.com/arloliu/colwire/compress"
	"github.com/arloliu/colwire/internal/hash"
)

// defaultWriteOptions are the recommended envelope settings: little-endian
// fields and Zstd body compression. Callers' options are applied after
// these, so any of them can be overridden.
var defaultWriteOptions = []block.WriteOption{
	block.WithLittleEndian(),
	block.WithCompression(compress.MethodZstd),
}

// NewStringColumn creates an empty variable-width string column.
//
// Values appended with AppendString or Append are copied into the column's
// arena; use AppendOwned or AppendNoCopy to hand over or lend a buffer
// instead. Options tune the arena sizing:
//   - column.WithBlockSize(n): minimum arena block size (default 4096)
//   - column.WithSizeEstimate(n): expected value size (default 8)
//   - column.WithLookahead(n): values a new block is sized for (default 32)
//
// Example:
//
//	col, err := colwire.NewStringColumn(column.WithSizeEstimate(64))
func NewStringColumn(opts ...column.Option) (*column.String, error) {
	return column.NewString(opts...)
}

// NewFixedStringColumn creates an empty fixed-width string column. Every
// value must be at most width bytes and is zero-padded to the width.
//
// Returns:
//   - *column.FixedString: The created column.
//   - error: errs.ErrInvalidWidth when width is outside
//     (0, coltype.MaxFixedWidth].
func NewFixedStringColumn(width int, opts ...column.Option) (*column.FixedString, error) {
	return column.NewFixedString(width, opts...)
}

// NewColumn creates an empty column store for the given type. This is the
// type-driven form of the concrete constructors, useful when the column
// type arrives from parsed metadata.
//
// Example:
//
//	t, _ := coltype.Parse("FixedString(16)")
//	col, err := colwire.NewColumn(t)
func NewColumn(t coltype.Type, opts ...column.Option) (column.Column, error) {
	return column.New(t, opts...)
}

// NewBlock creates an empty block. Add equal-length named columns with
// AddColumn, then serialize with EncodeBlock, WriteBlock or blk.Write.
func NewBlock() *block.Block {
	return block.New()
}

// EncodeBlock serializes a block into a byte slice using the recommended
// defaults (little-endian, Zstd body compression). Options override the
// defaults.
//
// Example:
//
//	data, err := colwire.EncodeBlock(blk, block.WithCompression(compress.MethodS2))
func EncodeBlock(blk *block.Block, opts ...block.WriteOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteBlock(&buf, blk, opts...); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteBlock serializes a block to w using the recommended defaults
// (little-endian, Zstd body compression). Options override the defaults.
func WriteBlock(w io.Writer, blk *block.Block, opts ...block.WriteOption) error {
	allOpts := make([]block.WriteOption, 0, len(defaultWriteOptions)+len(opts))
	allOpts = append(allOpts, defaultWriteOptions...)
	allOpts = append(allOpts, opts...)

	return blk.Write(w, allOpts...)
}

// DecodeBlock restores a block from a complete encoding held in memory.
// Column options configure the sizing of the decoded stores.
func DecodeBlock(data []byte, opts ...column.Option) (*block.Block, error) {
	return block.Decode(data, opts...)
}

// ReadBlock restores a block from a stream, consuming it to EOF.
func ReadBlock(r io.Reader, opts ...column.Option) (*block.Block, error) {
	return block.Read(r, opts...)
}

// ReadBlockColumn decodes a single column by name from a complete encoding
// without materializing the rest of the block.
//
// Example:
//
//	col, err := colwire.ReadBlockColumn(data, "message")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i := range col.Rows() {
//	    v, _ := col.At(i)
//	    fmt.Printf("%s\n", v)
//	}
func ReadBlockColumn(data []byte, name string, opts ...column.Option) (column.Column, error) {
	return block.ReadColumn(data, name, opts...)
}

// ColumnID converts a column name to its 64-bit hash identifier, the value
// stored in the encoded block's column index.
//
// The hash is xxHash64: deterministic across processes, effectively
// collision-free for practical column counts, and ~1-2ns to compute. The
// decoder verifies the stored column name against its index hash, so a
// collision or corrupted index surfaces as an error rather than silently
// returning the wrong column.
func ColumnID(name string) uint64 {
	return hash.NameID(name)
}
