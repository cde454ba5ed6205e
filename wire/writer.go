package wire

import (
	"encoding/binary"
	"io"

	"github.com/arloliu/colwire/endian"
)

// Writer encodes wire primitives onto an io.Writer.
//
// The writer is unbuffered: every call issues at most one Write on the
// destination, so callers assembling a body typically target an in-memory
// buffer and flush it to the transport in one piece.
//
// Writer is not safe for concurrent use.
type Writer struct {
	w       io.Writer
	engine  endian.EndianEngine
	scratch [binary.MaxVarintLen64]byte
}

// NewWriter creates a Writer targeting w with the given byte order for
// fixed-width integers. Varints and raw bytes are byte-order independent.
func NewWriter(w io.Writer, engine endian.EndianEngine) *Writer {
	return &Writer{w: w, engine: engine}
}

// Engine returns the writer's endian engine.
func (w *Writer) Engine() endian.EndianEngine {
	return w.engine
}

// WriteUvarint encodes v as an unsigned LEB128 varint.
func (w *Writer) WriteUvarint(v uint64) error {
	buf := binary.AppendUvarint(w.scratch[:0], v)
	_, err := w.w.Write(buf)

	return err
}

// WriteBytes writes p verbatim.
func (w *Writer) WriteBytes(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	_, err := w.w.Write(p)

	return err
}

// WriteString writes p with a uvarint length prefix.
func (w *Writer) WriteString(p []byte) error {
	if err := w.WriteUvarint(uint64(len(p))); err != nil {
		return err
	}

	return w.WriteBytes(p)
}

// WriteUint32 writes v in the writer's byte order.
func (w *Writer) WriteUint32(v uint32) error {
	buf := w.engine.AppendUint32(w.scratch[:0], v)
	_, err := w.w.Write(buf)

	return err
}

// WriteUint64 writes v in the writer's byte order.
func (w *Writer) WriteUint64(v uint64) error {
	buf := w.engine.AppendUint64(w.scratch[:0], v)
	_, err := w.w.Write(buf)

	return err
}
