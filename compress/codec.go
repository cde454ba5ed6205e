package compress

import "fmt"

// Compressor compresses a complete block body in one shot.
//
// Bodies are assembled fully in memory before framing, so the interface is
// whole-buffer rather than streaming.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a block body from its compressed frame payload.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// The input must have been produced by the matching Compress; corrupted
	// or mismatched data yields an error.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the specified method.
//
// Parameters:
//   - method: Compression method (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified method
//   - error: Invalid method error
func CreateCodec(method Method, target string) (Codec, error) {
	switch method {
	case MethodNone:
		return NewNoOpCompressor(), nil
	case MethodZstd:
		return NewZstdCompressor(), nil
	case MethodS2:
		return NewS2Compressor(), nil
	case MethodLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, method)
	}
}

var builtinCodecs = map[Method]Codec{
	MethodNone: NewNoOpCompressor(),
	MethodZstd: NewZstdCompressor(),
	MethodS2:   NewS2Compressor(),
	MethodLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified method.
func GetCodec(method Method) (Codec, error) {
	if codec, ok := builtinCodecs[method]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression method: %s", method)
}
