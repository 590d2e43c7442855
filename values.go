package udm

import "fmt"

// Vector2, Vector3 and Vector4 are plain float32 tuples, matching the
// in-memory layout of the numeric generic kinds exactly (no padding).
type Vector2 struct{ X, Y float32 }
type Vector3 struct{ X, Y, Z float32 }
type Vector4 struct{ X, Y, Z, W float32 }

// Vector2i, Vector3i and Vector4i are the int32 analogues.
type Vector2i struct{ X, Y int32 }
type Vector3i struct{ X, Y, Z int32 }
type Vector4i struct{ X, Y, Z, W int32 }

// QuaternionValue holds a rotation in (x,y,z,w) order, the in-memory and
// binary layout. The ASCII codec stores components in (w,x,y,z) order and
// must translate indices on the way in and out; see translateQuaternionIndex.
type QuaternionValue struct{ X, Y, Z, W float32 }

// EulerAnglesValue holds pitch/yaw/roll in degrees, matching the original's
// (p,y,r) member order.
type EulerAnglesValue struct{ P, Y, R float32 }

// SrgbaValue is a 4-channel 8-bit-per-component color.
type SrgbaValue struct{ R, G, B, A uint8 }

// HdrColorValue is a 3-channel color held as three float32 components.
// The binary codec writes them as three little-endian float32 values
// (12 bytes); they are not packed to 16-bit values anywhere.
type HdrColorValue struct{ R, G, B float32 }

// TransformValue is a translation plus rotation, matching the original's
// 7-float (3 translation + 4 rotation) layout.
type TransformValue struct {
	Translation Vector3
	Rotation    QuaternionValue
}

// ScaledTransformValue adds a non-uniform scale to TransformValue, for a
// total of 10 floats.
type ScaledTransformValue struct {
	Translation Vector3
	Rotation    QuaternionValue
	Scale       Vector3
}

// Mat3x4Value is a row-major 3x4 affine matrix (12 floats).
type Mat3x4Value [12]float32

// Mat4Value is a row-major 4x4 matrix (16 floats).
type Mat4Value [16]float32

// Half is an IEEE 754 binary16 float stored as its raw bit pattern. Callers
// convert to/from float32 explicitly; UDM never promotes Half to float32
// implicitly since the original keeps them distinct types.
type Half uint16

// Utf8StringValue is a NUL-terminated byte string distinct from String: the
// original carries it as a separate kind because its source files treat
// 8-bit-clean strings differently from the legacy 8-bit/Windows-codepage
// String kind.
type Utf8StringValue []byte

// BlobValue is an uncompressed opaque byte payload.
type BlobValue []byte

// BlobLz4Value is an LZ4-compressed byte payload, carrying the size the
// data decompresses to since LZ4 frames used here are headerless blocks.
type BlobLz4Value struct {
	Compressed       []byte
	UncompressedSize int
}

func (v Vector2) String() string { return fmt.Sprintf("%g %g", v.X, v.Y) }
func (v Vector3) String() string { return fmt.Sprintf("%g %g %g", v.X, v.Y, v.Z) }
func (v Vector4) String() string { return fmt.Sprintf("%g %g %g %g", v.X, v.Y, v.Z, v.W) }
func (v Vector2i) String() string { return fmt.Sprintf("%d %d", v.X, v.Y) }
func (v Vector3i) String() string { return fmt.Sprintf("%d %d %d", v.X, v.Y, v.Z) }
func (v Vector4i) String() string { return fmt.Sprintf("%d %d %d %d", v.X, v.Y, v.Z, v.W) }

// String renders in ASCII (w,x,y,z) order; see translateQuaternionIndex.
func (q QuaternionValue) String() string { return fmt.Sprintf("%g %g %g %g", q.W, q.X, q.Y, q.Z) }

func (e EulerAnglesValue) String() string { return fmt.Sprintf("%g %g %g", e.P, e.Y, e.R) }
func (c SrgbaValue) String() string       { return fmt.Sprintf("%d %d %d %d", c.R, c.G, c.B, c.A) }
func (c HdrColorValue) String() string    { return fmt.Sprintf("%g %g %g", c.R, c.G, c.B) }

// String renders translation then rotation (ASCII w,x,y,z order), plain
// space-separated to match parseStringAs's flat field layout.
func (t TransformValue) String() string {
	return t.Translation.String() + " " + t.Rotation.String()
}

func (t ScaledTransformValue) String() string {
	return t.Translation.String() + " " + t.Rotation.String() + " " + t.Scale.String()
}

// translateQuaternionIndex maps an ASCII token position (0=w,1=x,2=y,3=z)
// to the in-memory field index (0=x,1=y,2=z,3=w), and is its own inverse.
func translateQuaternionIndex(idx int) int {
	if idx == 0 {
		return 3
	}
	return idx - 1
}
