package section

import (
	"encoding/binary"

	"github.com/arloliu/colwire/compress"
	"github.com/arloliu/colwire/errs"
	"github.com/arloliu/colwire/internal/hash"
)

// FrameHeader describes the checksummed compression frame wrapping a block
// body. It is a fixed size of 17 bytes and, unlike the rest of the
// envelope, is always little-endian: the frame must be verifiable without
// consulting the block header's endianness flag.
//
// Layout:
//
//	Bytes  | Field          | Description
//	-------|----------------|------------------------------------------
//	0-7    | Checksum       | xxHash64 over bytes 8-16 plus the payload
//	8      | Method         | compression method byte
//	9-12   | CompressedSize | payload size on the wire
//	13-16  | RawSize        | payload size after decompression
type FrameHeader struct {
	Checksum       uint64
	Method         compress.Method
	CompressedSize uint32
	RawSize        uint32
}

// NewFrameHeader builds the frame header for a compressed payload,
// computing its checksum.
func NewFrameHeader(method compress.Method, rawSize int, payload []byte) FrameHeader {
	h := FrameHeader{
		Method:         method,
		CompressedSize: uint32(len(payload)), //nolint:gosec
		RawSize:        uint32(rawSize),      //nolint:gosec
	}
	h.Checksum = h.computeChecksum(payload)

	return h
}

func (h FrameHeader) computeChecksum(payload []byte) uint64 {
	var meta [FrameHeaderSize - 8]byte
	meta[0] = uint8(h.Method)
	binary.LittleEndian.PutUint32(meta[1:5], h.CompressedSize)
	binary.LittleEndian.PutUint32(meta[5:9], h.RawSize)

	return hash.ChecksumParts(meta[:], payload)
}

// WriteToSlice writes the frame header to a byte slice.
// The slice must be at least 17 bytes long.
func (h *FrameHeader) WriteToSlice(b []byte) error {
	if len(b) < FrameHeaderSize {
		return errs.ErrInvalidFrameSize
	}

	binary.LittleEndian.PutUint64(b[0:8], h.Checksum)
	b[8] = uint8(h.Method)
	binary.LittleEndian.PutUint32(b[9:13], h.CompressedSize)
	binary.LittleEndian.PutUint32(b[13:17], h.RawSize)

	return nil
}

// ParseFrameHeader parses a frame header from a byte slice.
func ParseFrameHeader(data []byte) (FrameHeader, error) {
	if len(data) < FrameHeaderSize {
		return FrameHeader{}, errs.ErrInvalidFrameSize
	}

	h := FrameHeader{
		Checksum:       binary.LittleEndian.Uint64(data[0:8]),
		Method:         compress.Method(data[8]),
		CompressedSize: binary.LittleEndian.Uint32(data[9:13]),
		RawSize:        binary.LittleEndian.Uint32(data[13:17]),
	}

	if !h.Method.Valid() {
		return FrameHeader{}, errs.ErrInvalidHeaderFlags
	}

	return h, nil
}

// Verify recomputes the checksum over the given payload and compares it
// against the stored one.
func (h FrameHeader) Verify(payload []byte) error {
	if uint32(len(payload)) != h.CompressedSize { //nolint:gosec
		return errs.ErrInvalidFrameSize
	}

	if h.computeChecksum(payload) != h.Checksum {
		return errs.ErrChecksumMismatch
	}

	return nil
}
