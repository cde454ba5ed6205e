// Package block assembles named columns into the colwire envelope and back.
//
// A block is written as a fixed header, a column index keyed by xxHash64
// name hashes, and one checksummed frame holding the compressed
// concatenation of every column's body:
//
//	Header | ColumnEntry × N | FrameHeader | compressed bodies
//
// The index stores only each column's body offset; sizes are derived from
// the neighboring offsets, which keeps entries fixed at 16 bytes and makes
// ReadColumn a single-column operation: hash the name, find the entry,
// decode just that slice of the body.
//
//	blk := block.New()
//	_ = blk.AddColumn("message", messages)
//	_ = blk.Write(&buf, block.WithCompression(compress.MethodZstd))
//
//	col, err := block.ReadColumn(buf.Bytes(), "message")
//
// Envelope field layouts live in the section package; per-column body
// encoding lives with the columns themselves.
package block
