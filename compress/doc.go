// Package compress provides the codecs used for compressed document payloads.
//
// # Codecs
//
//   - NoOpCompressor: no compression, copies bytes through
//   - ZstdCompressor: Zstandard frames, best ratio
//   - S2Compressor: S2 blocks, fastest
//   - LZ4Compressor: LZ4 blocks, fast with a small footprint
//
// All codecs share an append-style API modeled on the standard library's
// AppendXxx functions, so callers can decompress straight into pooled buffers:
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	buf := pool.GetBlobBuffer()
//	defer pool.PutBlobBuffer(buf)
//	buf.B, err = codec.Decompress(buf.B[:0], payload)
//
// # Zstd implementations
//
// By default zstd uses the pure Go encoder and decoder from
// github.com/klauspost/compress/zstd, pooled for reuse. Building with
//
//	go build -tags gozstd
//
// and cgo enabled switches to github.com/valyala/gozstd, which wraps libzstd.
// Frames produced by either implementation are readable by the other.
//
// # Thread Safety
//
// Codecs are stateless values; pooled encoders and decoders are taken per call,
// so every codec is safe for concurrent use.
package compress
