package compress

import "fmt"

// CompressionType identifies a body-compression algorithm available for
// transport.HTTPTransport's optional Content-Encoding on POST bodies.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone sends the body uncompressed.
	CompressionZstd CompressionType = 0x2 // CompressionZstd uses Zstandard.
	CompressionS2   CompressionType = 0x3 // CompressionS2 uses the S2 (Snappy-compatible) format.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 uses LZ4.
)

// String returns the Content-Encoding token associated with c, or "identity"
// for CompressionNone and unrecognized values.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "identity"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return "identity"
	}
}

// Compressor compresses a TagFmt-encoded request body before it is POSTed
// to a PDP endpoint.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
//   - Internal buffers may be reused for efficiency
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor on a PDP response body whose
// Content-Encoding header names a matching algorithm.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the given
// CompressionType.
func CreateCodec(compressionType CompressionType, target string) (Codec, error) {
	switch compressionType {
	case CompressionNone:
		return NewNoOpCompressor(), nil
	case CompressionZstd:
		return NewZstdCompressor(), nil
	case CompressionS2:
		return NewS2Compressor(), nil
	case CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NewNoOpCompressor(),
	CompressionZstd: NewZstdCompressor(),
	CompressionS2:   NewS2Compressor(),
	CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
