package compress

import (
	"slices"

	"github.com/klauspost/compress/s2"
)

// S2Compressor provides S2 block compression, a fast Snappy extension.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress appends the S2 block encoding of src to dst.
func (c S2Compressor) Compress(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	bound := s2.MaxEncodedLen(len(src))
	if bound < 0 {
		return dst, s2.ErrTooLarge
	}

	dst = slices.Grow(dst, bound)
	encoded := s2.Encode(dst[len(dst):len(dst)+bound], src)

	return dst[:len(dst)+len(encoded)], nil
}

// Decompress appends the decoded S2 block src to dst.
func (c S2Compressor) Decompress(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	n, err := s2.DecodedLen(src)
	if err != nil {
		return dst, err
	}

	grown := slices.Grow(dst, n)
	decoded, err := s2.Decode(grown[len(dst):len(dst)+n], src)
	if err != nil {
		return dst, err
	}

	return grown[:len(dst)+len(decoded)], nil
}
