package compress

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/jflat/errs"
	"github.com/arloliu/jflat/format"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"Zstd": NewZstdCompressor(),
		"S2":   NewS2Compressor(),
		"LZ4":  NewLZ4Compressor(),
	}
}

// jsonDocument returns a document of roughly size bytes with repetitive
// structure, like device telemetry.
func jsonDocument(size int) []byte {
	var b strings.Builder
	b.WriteString(`{"devices":{`)
	for i := 0; b.Len() < size; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, `"dev%d":{"on":%t,"level":%d,"name":"lamp-%d"}`, i, i%2 == 0, i%100, i)
	}
	b.WriteString(`}}`)

	return []byte(b.String())
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		codec, err := CreateCodec(ct, "payload")
		require.NoError(t, err, ct.String())
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(0), "payload")
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
	require.Contains(t, err.Error(), "payload")
}

func TestGetCodec(t *testing.T) {
	codec, err := GetCodec(format.CompressionS2)
	require.NoError(t, err)
	require.IsType(t, S2Compressor{}, codec)

	_, err = GetCodec(format.CompressionType(42))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			out, err := codec.Compress(nil, nil)
			require.NoError(t, err)
			require.Empty(t, out)

			prefix := []byte("keep")
			out, err = codec.Decompress(prefix, []byte{})
			require.NoError(t, err)
			require.Equal(t, "keep", string(out))
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	sizes := []int{1, 64, 1024, 64 * 1024}

	for name, codec := range getAllCodecs() {
		for _, size := range sizes {
			t.Run(fmt.Sprintf("%s/%d", name, size), func(t *testing.T) {
				doc := jsonDocument(size)

				compressed, err := codec.Compress(nil, doc)
				require.NoError(t, err)
				if name != "NoOp" && size >= 1024 {
					require.Less(t, len(compressed), len(doc), "repetitive JSON must shrink")
				}

				restored, err := codec.Decompress(nil, compressed)
				require.NoError(t, err)
				require.Equal(t, doc, restored)
			})
		}
	}
}

func TestAllCodecs_AppendSemantics(t *testing.T) {
	doc := jsonDocument(2048)

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress([]byte("hdr:"), doc)
			require.NoError(t, err)
			require.True(t, bytes.HasPrefix(compressed, []byte("hdr:")))

			dst := make([]byte, 3, 8)
			copy(dst, "abc")
			restored, err := codec.Decompress(dst, compressed[len("hdr:"):])
			require.NoError(t, err)
			require.Equal(t, "abc", string(restored[:3]))
			require.Equal(t, doc, restored[3:])
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := []struct {
		name string
		data []byte
	}{
		{
			name: "random_bytes",
			data: []byte{0xFF, 0xFF, 0xFF, 0xFF},
		},
		{
			name: "text_as_compressed",
			data: []byte("this is not compressed data"),
		},
		{
			name: "corrupted_header",
			data: []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07},
		},
	}

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			if name == "NoOp" {
				t.Skip("NoOp codec doesn't validate data")
			}

			for _, input := range invalidInputs {
				t.Run(input.name, func(t *testing.T) {
					prefix := []byte("x")
					out, err := codec.Decompress(prefix, input.data)
					require.Error(t, err)
					require.Equal(t, "x", string(out), "dst is returned unchanged on error")
				})
			}
		})
	}
}

func TestZstd_TruncatedFrame(t *testing.T) {
	codec := NewZstdCompressor()
	compressed, err := codec.Compress(nil, jsonDocument(4096))
	require.NoError(t, err)

	_, err = codec.Decompress(nil, compressed[:len(compressed)/2])
	require.Error(t, err)
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 20
	doc := jsonDocument(4096)

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil, doc)
			require.NoError(t, err)

			var wg sync.WaitGroup
			errCh := make(chan error, numGoroutines)
			for range numGoroutines {
				wg.Add(1)
				go func() {
					defer wg.Done()
					c, err := codec.Compress(nil, doc)
					if err != nil {
						errCh <- err
						return
					}
					d, err := codec.Decompress(nil, c)
					if err != nil {
						errCh <- err
						return
					}
					if !bytes.Equal(doc, d) {
						errCh <- fmt.Errorf("round trip mismatch")
						return
					}
					if _, err := codec.Decompress(nil, compressed); err != nil {
						errCh <- err
					}
				}()
			}
			wg.Wait()
			close(errCh)

			for err := range errCh {
				require.NoError(t, err)
			}
		})
	}
}

func TestLZ4_LargeExpansionRatio(t *testing.T) {
	// all-zero input compresses far beyond the initial 4x output estimate
	doc := make([]byte, 1<<20)
	codec := NewLZ4Compressor()

	compressed, err := codec.Compress(nil, doc)
	require.NoError(t, err)
	require.Less(t, len(compressed)*4, len(doc))

	restored, err := codec.Decompress(nil, compressed)
	require.NoError(t, err)
	require.Equal(t, doc, restored)
}
