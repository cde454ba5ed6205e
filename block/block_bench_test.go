package block

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/arloliu/colwire/column"
	"github.com/arloliu/colwire/compress"
)

func benchBlock(b *testing.B, rows int) *Block {
	b.Helper()

	msg, err := column.NewString(column.WithSizeEstimate(40))
	if err != nil {
		b.Fatal(err)
	}
	tag, err := column.NewFixedString(8)
	if err != nil {
		b.Fatal(err)
	}

	for i := range rows {
		_ = msg.AppendString(fmt.Sprintf("benchmark log message %06d %s", i, strings.Repeat("x", i%29)))
		_ = tag.AppendString(fmt.Sprintf("tag%04d", i%100))
	}

	blk := New()
	if err := blk.AddColumn("message", msg); err != nil {
		b.Fatal(err)
	}
	if err := blk.AddColumn("tag", tag); err != nil {
		b.Fatal(err)
	}

	return blk
}

func BenchmarkBlockWrite(b *testing.B) {
	methods := []compress.Method{
		compress.MethodNone,
		compress.MethodZstd,
		compress.MethodS2,
		compress.MethodLZ4,
	}

	for _, method := range methods {
		b.Run(method.String(), func(b *testing.B) {
			blk := benchBlock(b, 10000)

			b.ReportAllocs()
			for b.Loop() {
				if err := blk.Write(io.Discard, WithCompression(method)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkBlockDecode(b *testing.B) {
	methods := []compress.Method{
		compress.MethodNone,
		compress.MethodZstd,
		compress.MethodS2,
		compress.MethodLZ4,
	}

	for _, method := range methods {
		b.Run(method.String(), func(b *testing.B) {
			blk := benchBlock(b, 10000)

			var buf bytes.Buffer
			_ = blk.Write(&buf, WithCompression(method))
			data := buf.Bytes()

			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Decode(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkReadColumn(b *testing.B) {
	blk := benchBlock(b, 10000)

	var buf bytes.Buffer
	_ = blk.Write(&buf, WithCompression(compress.MethodS2))
	data := buf.Bytes()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := ReadColumn(data, "tag"); err != nil {
			b.Fatal(err)
		}
	}
}
