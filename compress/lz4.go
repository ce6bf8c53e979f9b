package compress

import (
	"errors"
	"slices"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4MaxDecompressedSize bounds the adaptive output buffer of Decompress.
const lz4MaxDecompressedSize = 128 * 1024 * 1024

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor provides LZ4 block compression.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 codec.
//
// Returns:
//   - LZ4Compressor: New LZ4 codec instance
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress appends the LZ4 block encoding of src to dst.
//
// Uses a pooled lz4.Compressor for better performance.
//
// Parameters:
//   - dst: Destination the compressed block is appended to
//   - src: Input data to compress
//
// Returns:
//   - []byte: dst extended with the compressed block (dst if src is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	bound := lz4.CompressBlockBound(len(src))
	grown := slices.Grow(dst, bound)

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(src, grown[len(dst):len(dst)+bound])
	if err != nil {
		return dst, err
	}

	return grown[:len(dst)+n], nil
}

// Decompress appends the decoded LZ4 block src to dst.
//
// LZ4 blocks do not record their decoded size, so the output buffer is sized
// adaptively:
//  1. Start with 4x the compressed size
//  2. On ErrInvalidSourceShortBuffer, double it, up to 128MB
//  3. Fail beyond that limit, which indicates corrupted input
//
// Parameters:
//   - dst: Destination the decoded data is appended to
//   - src: Compressed block
//
// Returns:
//   - []byte: dst extended with the decoded data (dst if src is empty)
//   - error: ErrInvalidSourceShortBuffer past the size limit, or other decompression errors
func (c LZ4Compressor) Decompress(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	for size := len(src) * 4; size <= lz4MaxDecompressedSize; size *= 2 {
		grown := slices.Grow(dst, size)
		n, err := lz4.UncompressBlock(src, grown[len(dst):len(dst)+size])
		if err == nil {
			return grown[:len(dst)+n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return dst, err
		}
	}

	return dst, lz4.ErrInvalidSourceShortBuffer
}
