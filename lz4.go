package udm

import "github.com/pragma-engine/udm/internal/lz4util"

// compressLz4 produces a BlobLz4Value from raw, compressing with LZ4 and
// falling back to storing the raw bytes uncompressed (still tagged with
// the true uncompressed size) when LZ4 cannot shrink the input, matching
// the original's "store anyway" behavior rather than erroring on
// incompressible blobs.
func compressLz4(raw []byte) (BlobLz4Value, error) {
	compressed, err := lz4util.Compress(raw)
	if err != nil {
		if lz4util.IsIncompressible(err) {
			return BlobLz4Value{Compressed: append([]byte(nil), raw...), UncompressedSize: len(raw)}, nil
		}
		return BlobLz4Value{}, &Error{Kind: ErrKindCompression, Msg: "lz4 compress failed", Err: err}
	}
	return BlobLz4Value{Compressed: compressed, UncompressedSize: len(raw)}, nil
}

// decompressLz4Blob expands a BlobLz4Value back to its raw bytes.
func decompressLz4Blob(b BlobLz4Value) ([]byte, error) {
	out, err := lz4util.Decompress(b.Compressed, b.UncompressedSize)
	if err != nil {
		if len(b.Compressed) == b.UncompressedSize {
			// Stored uncompressed by compressLz4's incompressible fallback.
			return append([]byte(nil), b.Compressed...), nil
		}
		return nil, &Error{Kind: ErrKindCompression, Msg: "lz4 decompress failed", Err: err}
	}
	return out, nil
}

// decompressLz4 expands src (an LZ4 block) directly into dst, which must
// be sized to the known uncompressed length; used by
// Property.GetBlobData's buffer-probe contract.
func decompressLz4(src []byte, dst []byte) (int, error) {
	return lz4util.DecompressInto(src, dst)
}
