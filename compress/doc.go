// Package compress provides the compression codecs applied to encoded block
// bodies before framing.
//
// A block body is the concatenation of every column's name, type and
// serialized payload. The body is assembled fully in memory, compressed in
// one shot with the configured method, and wrapped in a checksummed frame;
// decoding reverses the steps. All codecs therefore operate on whole
// buffers rather than streams.
//
// # Supported methods
//
//   - MethodNone: pass-through, for already-dense bodies
//   - MethodZstd: best ratio, moderate speed (cgo libzstd when available,
//     pure Go otherwise)
//   - MethodS2: balanced ratio and speed
//   - MethodLZ4: fastest decode
//
// # Usage
//
//	codec, err := compress.GetCodec(compress.MethodZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(body)
//
// GetCodec returns shared stateless codec values; CreateCodec constructs a
// fresh one and reports unknown methods with a descriptive error. All
// built-in codecs are safe for concurrent use.
package compress
