package loader

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"io"

	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"
)

// Compression is the container format a session log was stored in.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionBzip2
	CompressionXZ
)

func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return "gzip"
	case CompressionBzip2:
		return "bzip2"
	case CompressionXZ:
		return "xz"
	default:
		return "none"
	}
}

var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte{0x42, 0x5a, 0x68}
	xzMagic    = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
)

// detectCompression peeks at the leading magic bytes without consuming them.
func detectCompression(br *bufio.Reader) Compression {
	// xz has the longest magic (6 bytes); a shorter peek on tiny files is fine
	header, _ := br.Peek(len(xzMagic))

	switch {
	case bytes.HasPrefix(header, gzipMagic):
		return CompressionGzip
	case bytes.HasPrefix(header, bzip2Magic):
		return CompressionBzip2
	case bytes.HasPrefix(header, xzMagic):
		return CompressionXZ
	default:
		return CompressionNone
	}
}

// decompress wraps r with the decoder matching its magic bytes. The caller must
// Close the returned reader; closing it never closes r.
func decompress(r io.Reader) (io.ReadCloser, Compression, error) {
	br := bufio.NewReader(r)
	compression := detectCompression(br)

	switch compression {
	case CompressionGzip:
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, compression, errors.Wrap(err, "failed to create gzip reader")
		}
		return gz, compression, nil
	case CompressionBzip2:
		return io.NopCloser(bzip2.NewReader(br)), compression, nil
	case CompressionXZ:
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, compression, errors.Wrap(err, "failed to create xz reader")
		}
		return io.NopCloser(xr), compression, nil
	default:
		return io.NopCloser(br), compression, nil
	}
}
