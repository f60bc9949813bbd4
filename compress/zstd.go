package compress

// ZstdCompressor compresses TagFmt request/response bodies with Zstandard.
//
// Best for PDP responses carrying many Results with repeated attribute IDs
// and status URIs, where ratio matters more than latency:
//   - Large VOMS attribute chains in the request body
//   - Bandwidth-constrained links to a remote PDP
//   - Infrequent authorize calls, where per-call compression cost is cheap
//     relative to round-trip latency
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
