// Package column implements the in-memory stores behind colwire columns:
// String for variable-width values and FixedString for values of a declared
// byte width.
//
// Both stores favor append-heavy workloads. String packs copied values into
// bump-allocated arena blocks sized from a per-value estimate, so reads are
// zero-copy views and a burst of appends costs one allocation per block.
// FixedString keeps all rows in a single contiguous buffer with values
// zero-padded to the column width.
//
// Stores are created through the type-driven factory or the concrete
// constructors:
//
//	col, err := column.New(coltype.FixedString(16))
//	str, err := column.NewString(column.WithSizeEstimate(24))
//
// LoadBody and SaveBody translate a store to and from its wire body; the
// framing around bodies (headers, column index, compression) lives in the
// block package.
//
// Stores are not safe for concurrent mutation. Concurrent reads are fine
// once a store is no longer being written.
package column
