package compress

// NoOpCompressor copies data through without compression.
//
// It is used for uncompressed payloads and as a baseline in benchmarks.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress appends src to dst unchanged.
func (c NoOpCompressor) Compress(dst, src []byte) ([]byte, error) {
	return append(dst, src...), nil
}

// Decompress appends src to dst unchanged.
func (c NoOpCompressor) Decompress(dst, src []byte) ([]byte, error) {
	return append(dst, src...), nil
}
