package loader

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCompression(t *testing.T) {
	cases := []struct {
		name   string
		input  []byte
		expect Compression
	}{
		{"plain csv", []byte("timestamp_qpc,timestamp_ms"), CompressionNone},
		{"gzip", []byte{0x1f, 0x8b, 0x08, 0x00}, CompressionGzip},
		{"bzip2", []byte("BZh91AY&SY"), CompressionBzip2},
		{"xz", []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00, 0x00}, CompressionXZ},
		{"tiny file", []byte{0x1f}, CompressionNone},
		{"empty file", []byte{}, CompressionNone},
	}

	for _, tc := range cases {
		br := bufio.NewReader(bytes.NewReader(tc.input))
		assert.Equal(t, tc.expect, detectCompression(br), tc.name)

		rest, err := io.ReadAll(br)
		require.NoError(t, err)
		assert.Equal(t, len(tc.input), len(rest), "%s: detection must not consume input", tc.name)
	}
}

func TestDecompressPassthrough(t *testing.T) {
	r, compression, err := decompress(bytes.NewReader([]byte("a,b\n1,2\n")))
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, CompressionNone, compression)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))
}

func TestDecompressGzip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("a,b\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	r, compression, err := decompress(&buf)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, "gzip", compression.String())
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))
}
