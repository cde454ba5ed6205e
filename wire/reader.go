package wire

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/arloliu/colwire/endian"
	"github.com/arloliu/colwire/errs"
)

// byteReader is the reader shape varint decoding needs.
type byteReader interface {
	io.Reader
	io.ByteReader
}

// lener is implemented by in-memory sources such as bytes.Reader that can
// report their unread byte count.
type lener interface {
	Len() int
}

// maxStringLen bounds a length prefix: row payloads are addressed with 32
// bits, and a slice cannot exceed the platform's int range.
const maxStringLen = min(math.MaxUint32, math.MaxInt)

// Reader decodes wire primitives from an io.Reader.
//
// Sources that cannot serve single bytes are wrapped in a bufio.Reader, so
// the Reader owns the stream from construction on: bytes consumed into the
// buffer are lost to other readers of the same source. In-memory sources
// like bytes.Reader are used directly without double buffering.
//
// Reader is not safe for concurrent use.
type Reader struct {
	r      byteReader
	engine endian.EndianEngine
}

// NewReader creates a Reader over r with the given byte order for
// fixed-width integers.
func NewReader(r io.Reader, engine endian.EndianEngine) *Reader {
	br, ok := r.(byteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &Reader{r: br, engine: engine}
}

// Engine returns the reader's endian engine.
func (r *Reader) Engine() endian.EndianEngine {
	return r.engine
}

// Remaining returns the number of unread bytes when the source can report
// one, or -1 for streaming sources of unknown length. Decoders use it to
// bound allocations by the bytes that actually exist.
func (r *Reader) Remaining() int {
	if l, ok := r.r.(lener); ok {
		return l.Len()
	}

	return -1
}

// ReadUvarint decodes an unsigned LEB128 varint.
func (r *Reader) ReadUvarint() (uint64, error) {
	return binary.ReadUvarint(r.r)
}

// ReadFull fills buf completely, failing with io.ErrUnexpectedEOF when the
// stream ends short.
func (r *Reader) ReadFull(buf []byte) error {
	_, err := io.ReadFull(r.r, buf)

	return err
}

// ReadN reads exactly n bytes into a fresh buffer. When the source reports
// its length, a request past the unread bytes fails before the buffer is
// allocated.
func (r *Reader) ReadN(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}

	if rem := r.Remaining(); rem >= 0 && n > rem {
		return nil, io.ErrUnexpectedEOF
	}

	buf := make([]byte, n)
	if err := r.ReadFull(buf); err != nil {
		return nil, err
	}

	return buf, nil
}

// ReadString reads a uvarint length prefix followed by that many raw bytes.
// Prefixes beyond the format's uint32 payload bound, or past the unread
// bytes of an in-memory source, are rejected before any allocation, so a
// corrupted prefix cannot trigger a huge make.
func (r *Reader) ReadString() ([]byte, error) {
	n, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}
	if n > maxStringLen {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidRowLength, n)
	}

	return r.ReadN(int(n)) //nolint:gosec
}

// ReadUint32 reads a fixed 4-byte integer in the reader's byte order.
func (r *Reader) ReadUint32() (uint32, error) {
	var buf [4]byte
	if err := r.ReadFull(buf[:]); err != nil {
		return 0, err
	}

	return r.engine.Uint32(buf[:]), nil
}

// ReadUint64 reads a fixed 8-byte integer in the reader's byte order.
func (r *Reader) ReadUint64() (uint64, error) {
	var buf [8]byte
	if err := r.ReadFull(buf[:]); err != nil {
		return 0, err
	}

	return r.engine.Uint64(buf[:]), nil
}
