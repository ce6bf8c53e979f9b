package compress

// ZstdCompressor provides Zstandard compression.
//
// It favours compression ratio over speed and suits documents that are stored
// or sent over constrained links. The pure Go klauspost/compress implementation
// is used by default; building with the gozstd tag and cgo enabled switches
// to the libzstd bindings of valyala/gozstd. Both produce standard zstd frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
//
// Example:
//
//	codec := NewZstdCompressor()
//	compressed, err := codec.Compress(nil, doc)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
