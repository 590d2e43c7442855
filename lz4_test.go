package udm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressDecompressLz4BlobRoundTrip(t *testing.T) {
	raw := bytes.Repeat([]byte("udm payload, udm payload, udm payload"), 20)

	blob, err := compressLz4(raw)
	require.NoError(t, err)
	require.Equal(t, len(raw), blob.UncompressedSize)

	out, err := decompressLz4Blob(blob)
	require.NoError(t, err)
	require.Equal(t, raw, out)
}

func TestDecompressLz4IntoPreSizedBuffer(t *testing.T) {
	raw := bytes.Repeat([]byte("abc"), 50)
	blob, err := compressLz4(raw)
	require.NoError(t, err)

	dst := make([]byte, blob.UncompressedSize)
	n, err := decompressLz4(blob.Compressed, dst)
	require.NoError(t, err)
	require.Equal(t, len(raw), n)
	require.Equal(t, raw, dst)
}

func TestCompressLz4EmptyInput(t *testing.T) {
	blob, err := compressLz4(nil)
	require.NoError(t, err)
	require.Equal(t, 0, blob.UncompressedSize)

	out, err := decompressLz4Blob(blob)
	require.NoError(t, err)
	require.Empty(t, out)
}
