// Package wire contains endian-safe encode/decode helpers and bounds-safe
// slicing for UDM's binary codec, the same register of tool the teacher's
// internal/buf package provides for its own fixed-layout record fields.
package wire

import (
	"encoding/binary"
	"math"
)

// Magic is the four-byte signature every UDM binary file begins with.
const Magic = "UDMB"

// FormatVersion is the current binary format version number.
const FormatVersion uint32 = 1

// ExtendedStringMarker is the sentinel length byte that signals a String
// value's real length follows as a uint32 instead of fitting in one byte.
const ExtendedStringMarker = 0xFF

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// U64LE reads a little-endian uint64 from b. Returns 0 when b is too short.
func U64LE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// PutU16LE appends v to b in little-endian order.
func PutU16LE(b []byte, v uint16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return append(b, tmp[:]...)
}

// PutU32LE appends v to b in little-endian order.
func PutU32LE(b []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(b, tmp[:]...)
}

// PutU64LE appends v to b in little-endian order.
func PutU64LE(b []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(b, tmp[:]...)
}

// F32 decodes a little-endian float32 from b. Returns 0 when b is too short.
func F32(b []byte) float32 {
	return math.Float32frombits(U32LE(b))
}

// PutF32 appends v to b as a little-endian float32.
func PutF32(b []byte, v float32) []byte {
	return PutU32LE(b, math.Float32bits(v))
}

// F64 decodes a little-endian float64 from b. Returns 0 when b is too short.
func F64(b []byte) float64 {
	return math.Float64frombits(U64LE(b))
}

// PutF64 appends v to b as a little-endian float64.
func PutF64(b []byte, v float64) []byte {
	return PutU64LE(b, math.Float64bits(v))
}

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (sum int, ok bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}
