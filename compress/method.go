package compress

// Method identifies the compression algorithm applied to a block body.
// The value is carried verbatim in the envelope's frame header.
type Method uint8

const (
	MethodNone Method = 0x1 // MethodNone represents no compression.
	MethodZstd Method = 0x2 // MethodZstd represents Zstandard compression.
	MethodS2   Method = 0x3 // MethodS2 represents S2 compression.
	MethodLZ4  Method = 0x4 // MethodLZ4 represents LZ4 block compression.
)

func (m Method) String() string {
	switch m {
	case MethodNone:
		return "None"
	case MethodZstd:
		return "Zstd"
	case MethodS2:
		return "S2"
	case MethodLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether m names a supported compression method.
func (m Method) Valid() bool {
	switch m {
	case MethodNone, MethodZstd, MethodS2, MethodLZ4:
		return true
	default:
		return false
	}
}
