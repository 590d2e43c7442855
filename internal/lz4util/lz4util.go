// Package lz4util wraps github.com/pierrec/lz4/v4 behind the narrow
// compress/decompress contract UDM's ArrayLz4 and BlobLz4 kinds need:
// single-shot, headerless block compression, since the on-disk format
// stores the uncompressed size itself rather than relying on an LZ4
// frame header.
package lz4util

import (
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// Compress returns the LZ4 block-compressed form of src.
func Compress(src []byte) ([]byte, error) {
	buf := make([]byte, lz4.CompressBlockBound(len(src)))
	var c lz4.Compressor
	n, err := c.CompressBlock(src, buf)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if n == 0 && len(src) > 0 {
		// Incompressible input: pierrec/lz4 signals this by returning n==0
		// rather than an error; report it with the errIncompressible
		// sentinel (see IsIncompressible) so the caller can store the raw
		// bytes instead.
		return nil, errIncompressible
	}
	return buf[:n], nil
}

var errIncompressible = fmt.Errorf("lz4: input not compressible")

// IsIncompressible reports whether err is the sentinel Compress returns
// for inputs LZ4 could not shrink.
func IsIncompressible(err error) bool {
	return err == errIncompressible
}

// Decompress expands src into a buffer of exactly uncompressedSize bytes.
func Decompress(src []byte, uncompressedSize int) ([]byte, error) {
	dst := make([]byte, uncompressedSize)
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	if n != uncompressedSize {
		return nil, fmt.Errorf("lz4 decompress: got %d bytes, want %d", n, uncompressedSize)
	}
	return dst, nil
}

// DecompressInto expands src directly into dst, which must be exactly the
// decompressed size; used by Property.GetBlobData to avoid an extra copy
// when the caller already sized their buffer correctly.
func DecompressInto(src []byte, dst []byte) (int, error) {
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return 0, fmt.Errorf("lz4 decompress: %w", err)
	}
	return n, nil
}
