package block

import (
	"fmt"
	"io"

	"github.com/arloliu/colwire/compress"
	"github.com/arloliu/colwire/endian"
	"github.com/arloliu/colwire/errs"
	"github.com/arloliu/colwire/internal/hash"
	"github.com/arloliu/colwire/internal/options"
	"github.com/arloliu/colwire/internal/pool"
	"github.com/arloliu/colwire/section"
	"github.com/arloliu/colwire/wire"
)

// Write encodes the block to w as a single envelope: header, column index,
// then one compressed frame holding every column's body.
//
// The body is assembled in a pooled buffer, so encoding the same sizes
// repeatedly settles into zero steady-state allocations outside the codec.
func (b *Block) Write(w io.Writer, opts ...WriteOption) error {
	cfg := defaultWriteConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return err
	}

	codec, err := compress.GetCodec(cfg.method)
	if err != nil {
		return err
	}

	engine := endian.GetLittleEndianEngine()
	if cfg.bigEndian {
		engine = endian.GetBigEndianEngine()
	}

	body := pool.GetBodyBuffer()
	defer pool.PutBodyBuffer(body)

	offsets, err := b.writeBody(body, engine)
	if err != nil {
		return err
	}

	raw := body.Bytes()

	payload, err := codec.Compress(raw)
	if err != nil {
		return err
	}

	header, err := section.NewHeader(len(b.columns), b.RowCount())
	if err != nil {
		return err
	}

	if cfg.bigEndian {
		header.Flag.WithBigEndian()
	}
	header.Flag.SetCompression(cfg.method)
	header.DataSize = uint32(len(raw)) //nolint:gosec

	frame := section.NewFrameHeader(cfg.method, len(raw), payload)

	env := pool.GetEnvelopeBuffer()
	defer pool.PutEnvelopeBuffer(env)

	env.MustWrite(header.Bytes())

	indexStart := env.Len()
	env.ExtendOrGrow(len(b.columns) * section.ColumnEntrySize)

	for i, nc := range b.columns {
		entry := section.ColumnEntry{NameHash: hash.NameID(nc.name), Offset: offsets[i]}
		dst := env.Slice(indexStart+i*section.ColumnEntrySize, indexStart+(i+1)*section.ColumnEntrySize)
		if err := entry.WriteToSlice(dst, engine); err != nil {
			return err
		}
	}

	frameStart := env.Len()
	env.ExtendOrGrow(section.FrameHeaderSize)
	if err := frame.WriteToSlice(env.Slice(frameStart, frameStart+section.FrameHeaderSize)); err != nil {
		return err
	}

	env.MustWrite(payload)

	_, err = env.WriteTo(w)

	return err
}

// writeBody serializes every column into buf and returns the body offset
// at which each column starts.
func (b *Block) writeBody(buf *pool.ByteBuffer, engine endian.EndianEngine) ([]uint32, error) {
	bw := wire.NewWriter(buf, engine)
	offsets := make([]uint32, len(b.columns))

	for i, nc := range b.columns {
		offsets[i] = uint32(buf.Len()) //nolint:gosec

		if err := bw.WriteString([]byte(nc.name)); err != nil {
			return nil, err
		}

		if err := bw.WriteString([]byte(nc.col.Type().Name())); err != nil {
			return nil, err
		}

		if err := nc.col.SaveBody(bw); err != nil {
			return nil, err
		}
	}

	if uint64(buf.Len()) > section.MaxOffset {
		return nil, fmt.Errorf("%w: body size %d", errs.ErrInvalidPayloadOffset, buf.Len())
	}

	return offsets, nil
}
