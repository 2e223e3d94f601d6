package loader

import (
	"bytes"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// decompress wraps r with the decompressor selected by the document name's
// extension. Unknown extensions pass through unchanged.
func decompress(r io.Reader, name string) (io.ReadCloser, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".gz", ".gzip":
		return gzip.NewReader(r)
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	case ".lz4":
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// newByteReader decompresses in-memory document bytes.
func newByteReader(data []byte, name string) (io.Reader, error) {
	rc, err := decompress(bytes.NewReader(data), name)
	if err != nil {
		return nil, err
	}
	return rc, nil
}
