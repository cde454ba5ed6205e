// Package hash provides the xxHash64 helpers used by the block envelope:
// column-name identifiers for the index and payload checksums for
// compression frames.
package hash

import "github.com/cespare/xxhash/v2"

// NameID computes the xxHash64 identifier of a column name.
func NameID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Checksum computes the xxHash64 digest of a frame payload.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// ChecksumParts digests several byte slices as one stream, avoiding a
// concatenation when the frame header and payload live in separate buffers.
func ChecksumParts(parts ...[]byte) uint64 {
	d := xxhash.New()
	for _, part := range parts {
		_, _ = d.Write(part)
	}

	return d.Sum64()
}
