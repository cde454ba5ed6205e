package compress

import (
	"testing"
)

func benchPayload() []byte {
	return bodyFixture(1000)
}

func BenchmarkCompress(b *testing.B) {
	payload := benchPayload()

	for _, method := range []Method{MethodNone, MethodZstd, MethodS2, MethodLZ4} {
		codec, err := GetCodec(method)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(method.String(), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			for b.Loop() {
				if _, err := codec.Compress(payload); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	payload := benchPayload()

	for _, method := range []Method{MethodNone, MethodZstd, MethodS2, MethodLZ4} {
		codec, err := GetCodec(method)
		if err != nil {
			b.Fatal(err)
		}

		compressed, err := codec.Compress(payload)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(method.String(), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			for b.Loop() {
				if _, err := codec.Decompress(compressed); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
