// Package compress provides optional compression codecs for TagFmt request
// and response bodies exchanged with a PDP endpoint.
//
// TagFmt payloads for requests carrying large VOMS attribute chains or
// responses carrying many Results can be large enough that compressing the
// HTTP body is worthwhile. This package is orthogonal to the TagFmt wire
// format itself (spec §4.2/§6.1) — it operates on the already-encoded byte
// buffer, the same way an HTTP client applies Content-Encoding independently
// of the payload's own structure.
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported algorithms
//
//   - CompressionNone: no compression; wire-identical to an unconfigured
//     transport.HTTPTransport (the default).
//   - CompressionZstd: best ratio, moderate speed; good for archival-sized
//     responses with many repeated attribute IDs.
//   - CompressionS2: balanced ratio and speed.
//   - CompressionLZ4: fastest decompression; favors request-heavy PEPs that
//     issue many authorize calls per second.
//
// # Usage
//
//	codec, err := compress.GetCodec(compress.CompressionZstd)
//	compressed, err := codec.Compress(tagFmtBytes)
//	// set "Content-Encoding: zstd" and POST `compressed`
//
// transport.WithBodyCompression takes a Codec from this package and wires it
// into HTTPTransport; the package is also usable on its own by callers who
// embed a custom transport.Transport and want the same algorithms.
//
// # Thread safety
//
// All Codec implementations returned by GetCodec/CreateCodec are safe for
// concurrent use.
package compress
