package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/jflat/errs"
)

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		ct   CompressionType
		want string
	}{
		{CompressionNone, "None"},
		{CompressionZstd, "Zstd"},
		{CompressionS2, "S2"},
		{CompressionLZ4, "LZ4"},
		{CompressionType(0), "Unknown"},
		{CompressionType(0xFF), "Unknown"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.ct.String())
	}
}

func TestParseCompressionType(t *testing.T) {
	for in, want := range map[string]CompressionType{
		"":      CompressionNone,
		"none":  CompressionNone,
		"ZSTD":  CompressionZstd,
		" s2 ":  CompressionS2,
		"Lz4":   CompressionLZ4,
	} {
		got, err := ParseCompressionType(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseCompressionType("gzip")
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestCompressionType_Text(t *testing.T) {
	text, err := CompressionZstd.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "zstd", string(text))

	var ct CompressionType
	require.NoError(t, ct.UnmarshalText([]byte("lz4")))
	require.Equal(t, CompressionLZ4, ct)

	require.ErrorIs(t, ct.UnmarshalText([]byte("brotli")), errs.ErrInvalidCompression)
	require.Equal(t, CompressionLZ4, ct, "failed unmarshal leaves the value unchanged")

	_, err = CompressionType(9).MarshalText()
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}
