package block

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/arloliu/colwire/coltype"
	"github.com/arloliu/colwire/column"
	"github.com/arloliu/colwire/compress"
	"github.com/arloliu/colwire/endian"
	"github.com/arloliu/colwire/errs"
	"github.com/arloliu/colwire/internal/hash"
	"github.com/arloliu/colwire/section"
	"github.com/arloliu/colwire/wire"
)

// maxRowCount bounds a header's declared row count: the format addresses
// rows with 32 bits, and a decoded column cannot exceed the platform's
// int range.
const maxRowCount = min(math.MaxUint32, math.MaxInt)

// envelope is a parsed, verified and decompressed block encoding, ready
// for per-column decoding.
type envelope struct {
	header  section.Header
	entries []section.ColumnEntry
	body    []byte
	engine  endian.EndianEngine
}

// Read decodes a block from r. The stream is consumed to EOF.
func Read(r io.Reader, opts ...column.Option) (*Block, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Decode(data, opts...)
}

// Decode decodes a block from a complete encoding held in memory. Column
// options configure the sizing of the decoded stores.
func Decode(data []byte, opts ...column.Option) (*Block, error) {
	env, err := parseEnvelope(data)
	if err != nil {
		return nil, err
	}

	blk := New()
	for i := range env.entries {
		name, col, err := env.decodeColumn(i, opts...)
		if err != nil {
			return nil, err
		}

		if err := blk.AddColumn(name, col); err != nil {
			return nil, err
		}
	}

	return blk, nil
}

// ReadColumn decodes a single column by name from a complete encoding,
// without materializing the rest of the block. The whole body frame is
// still verified and decompressed; only column decoding is skipped.
//
// Returns:
//   - column.Column: Decoded column on success
//   - error: errs.ErrColumnNotFound when no index entry matches the name,
//     errs.ErrHashMismatch when the matching entry's stored name differs
func ReadColumn(data []byte, name string, opts ...column.Option) (column.Column, error) {
	env, err := parseEnvelope(data)
	if err != nil {
		return nil, err
	}

	target := hash.NameID(name)
	for i := range env.entries {
		if env.entries[i].NameHash != target {
			continue
		}

		stored, col, err := env.decodeColumn(i, opts...)
		if err != nil {
			return nil, err
		}

		if stored != name {
			return nil, fmt.Errorf("%w: entry for %q stores %q", errs.ErrHashMismatch, name, stored)
		}

		return col, nil
	}

	return nil, fmt.Errorf("%w: %q", errs.ErrColumnNotFound, name)
}

func parseEnvelope(data []byte) (*envelope, error) {
	if len(data) < section.HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	env := &envelope{}
	if err := env.header.Parse(data[:section.HeaderSize]); err != nil {
		return nil, err
	}
	env.engine = env.header.GetEndianEngine()

	if env.header.RowCount > maxRowCount {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidRowCount, env.header.RowCount)
	}

	count := int(env.header.ColumnCount)
	indexEnd := section.HeaderSize + count*section.ColumnEntrySize

	if len(data) < indexEnd {
		return nil, fmt.Errorf("%w: index needs %d bytes, have %d", errs.ErrInvalidIndexEntrySize, indexEnd, len(data))
	}

	if err := env.parseIndex(data[section.HeaderSize:indexEnd], count); err != nil {
		return nil, err
	}

	if len(data) < indexEnd+section.FrameHeaderSize {
		return nil, fmt.Errorf("%w: missing frame header", errs.ErrInvalidFrameSize)
	}

	frame, err := section.ParseFrameHeader(data[indexEnd : indexEnd+section.FrameHeaderSize])
	if err != nil {
		return nil, err
	}

	if frame.Method != env.header.Flag.GetCompression() {
		return nil, fmt.Errorf("%w: frame method %s, header method %s",
			errs.ErrInvalidHeaderFlags, frame.Method, env.header.Flag.GetCompression())
	}

	payload := data[indexEnd+section.FrameHeaderSize:]
	if len(payload) != int(frame.CompressedSize) {
		return nil, fmt.Errorf("%w: payload is %d bytes, frame declares %d",
			errs.ErrInvalidFrameSize, len(payload), frame.CompressedSize)
	}

	if err := frame.Verify(payload); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(frame.Method)
	if err != nil {
		return nil, err
	}

	body, err := codec.Decompress(payload)
	if err != nil {
		return nil, err
	}

	if len(body) != int(frame.RawSize) || len(body) != int(env.header.DataSize) {
		return nil, fmt.Errorf("%w: body is %d bytes, frame declares %d, header declares %d",
			errs.ErrInvalidFrameSize, len(body), frame.RawSize, env.header.DataSize)
	}
	env.body = body

	return env, nil
}

// parseIndex decodes the column index and derives each entry's size from
// the next entry's offset; the last entry extends to the end of the body.
func (e *envelope) parseIndex(data []byte, count int) error {
	e.entries = make([]section.ColumnEntry, count)

	for i := range count {
		entry, err := section.ParseColumnEntry(data[i*section.ColumnEntrySize:(i+1)*section.ColumnEntrySize], e.engine)
		if err != nil {
			return err
		}

		e.entries[i] = entry
	}

	for i := range e.entries {
		next := e.header.DataSize
		if i+1 < len(e.entries) {
			next = e.entries[i+1].Offset
		}

		cur := e.entries[i].Offset
		if (i == 0 && cur != 0) || next < cur || next > e.header.DataSize {
			return fmt.Errorf("%w: entry %d spans [%d, %d), body is %d bytes",
				errs.ErrInvalidPayloadOffset, i, cur, next, e.header.DataSize)
		}

		e.entries[i].Size = next - cur
	}

	return nil
}

// decodeColumn materializes column i from its body payload: name, type
// name, then the column body.
func (e *envelope) decodeColumn(i int, opts ...column.Option) (string, column.Column, error) {
	entry := e.entries[i]
	payload := e.body[entry.Offset : entry.Offset+entry.Size]

	rd := wire.NewReader(bytes.NewReader(payload), e.engine)

	rawName, err := rd.ReadString()
	if err != nil {
		return "", nil, err
	}
	name := string(rawName)

	if hash.NameID(name) != entry.NameHash {
		return "", nil, fmt.Errorf("%w: column %q", errs.ErrHashMismatch, name)
	}

	rawType, err := rd.ReadString()
	if err != nil {
		return "", nil, err
	}

	typ, err := coltype.Parse(string(rawType))
	if err != nil {
		return "", nil, err
	}

	col, err := column.New(typ, opts...)
	if err != nil {
		return "", nil, err
	}

	if err := col.LoadBody(rd, int(e.header.RowCount)); err != nil {
		return "", nil, err
	}

	return name, col, nil
}
