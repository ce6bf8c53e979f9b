package payload

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/jflat/errs"
	"github.com/arloliu/jflat/flatten"
	"github.com/arloliu/jflat/format"
	"github.com/arloliu/jflat/scalar"
)

const sample = `{"device":{"id":"lamp-1","led":{"on":true,"level":42}},"tags":["a","b"]}`

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func TestSealOpen_RoundTrip(t *testing.T) {
	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			sealed, err := Seal([]byte(sample), ct)
			require.NoError(t, err)

			p, err := Open(sealed, ct)
			require.NoError(t, err)
			defer p.Release()

			require.Equal(t, ct, p.Compression())
			require.Equal(t, sample, string(p.Bytes()))
			require.Equal(t, len(sample), p.Len())

			leaves, err := p.Flatten()
			require.NoError(t, err)
			require.Len(t, leaves, 4)
			require.Equal(t, ".device.led.level", leaves[2].Path)

			level, err := scalar.Uint(leaves[2])
			require.NoError(t, err)
			require.Equal(t, uint64(42), level)
		})
	}
}

func TestOpen_NoneBorrows(t *testing.T) {
	data := []byte(sample)

	p, err := Open(data, format.CompressionNone)
	require.NoError(t, err)
	defer p.Release()

	require.True(t, &data[0] == &p.Bytes()[0], "uncompressed payloads are not copied")
}

func TestOpen_InvalidCompression(t *testing.T) {
	_, err := Open([]byte(sample), format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	_, err = Seal([]byte(sample), format.CompressionType(7))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestOpen_Corrupted(t *testing.T) {
	sealed, err := Seal([]byte(sample), format.CompressionZstd)
	require.NoError(t, err)

	_, err = Open(sealed[:len(sealed)/2], format.CompressionZstd)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Zstd")

	_, err = Open([]byte(sample), format.CompressionZstd)
	require.Error(t, err, "plain JSON is not a zstd frame")
}

func TestOpen_MaxSize(t *testing.T) {
	for _, ct := range allTypes {
		sealed, err := Seal([]byte(sample), ct)
		require.NoError(t, err)

		_, err = Open(sealed, ct, WithMaxSize(len(sample)-1))
		require.ErrorIs(t, err, errs.ErrPayloadTooLarge, ct.String())

		p, err := Open(sealed, ct, WithMaxSize(len(sample)))
		require.NoError(t, err, ct.String())
		p.Release()
	}

	_, err := Open([]byte(sample), format.CompressionNone, WithMaxSize(0))
	require.ErrorIs(t, err, errs.ErrInvalidCapacity)
}

func TestRead(t *testing.T) {
	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			sealed, err := Seal([]byte(sample), ct)
			require.NoError(t, err)

			p, err := Read(iotest.HalfReader(bytes.NewReader(sealed)), ct)
			require.NoError(t, err)
			defer p.Release()

			require.Equal(t, sample, string(p.Bytes()))
			require.NotNil(t, p.buf, "read payloads own their buffer")
		})
	}
}

func TestRead_Error(t *testing.T) {
	boom := errors.New("boom")

	_, err := Read(iotest.ErrReader(boom), format.CompressionNone)
	require.ErrorIs(t, err, boom)

	_, err = Read(bytes.NewReader([]byte("not a zstd frame")), format.CompressionZstd)
	require.Error(t, err)
}

func TestPayload_IteratorAndIndex(t *testing.T) {
	p, err := Open([]byte(sample), format.CompressionNone)
	require.NoError(t, err)
	defer p.Release()

	it, err := p.Iterator(flatten.WithMaxDepth(1))
	require.NoError(t, err)
	var paths []string
	for it.Next() {
		paths = append(paths, it.Path())
	}
	require.ErrorIs(t, it.Err(), errs.ErrDepthExceeded)
	require.Equal(t, []string{".device.id", ".tags"}, paths)

	idx, err := p.Index()
	require.NoError(t, err)
	on, ok := idx.Get(".device.led.on")
	require.True(t, ok)
	v, err := scalar.Bool(on)
	require.NoError(t, err)
	require.True(t, v)
}

func TestPayload_Release(t *testing.T) {
	sealed, err := Seal([]byte(sample), format.CompressionS2)
	require.NoError(t, err)

	p, err := Open(sealed, format.CompressionS2)
	require.NoError(t, err)

	p.Release()
	p.Release()

	require.Nil(t, p.Bytes())
	require.True(t, p.View().IsEmpty())

	_, err = p.Iterator()
	require.ErrorIs(t, err, errs.ErrPayloadReleased)
	_, err = p.Flatten()
	require.ErrorIs(t, err, errs.ErrPayloadReleased)
	_, err = p.Index()
	require.ErrorIs(t, err, errs.ErrPayloadReleased)
}
