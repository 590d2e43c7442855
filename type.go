package udm

import "fmt"

// Type is the single-byte tag identifying the kind of value a Property
// holds. The numeric values and ordering match the on-disk tag byte exactly
// and must never be renumbered without bumping the binary format version.
type Type uint8

// The full set of value kinds. Ordering matches the original reference
// implementation's enum so that a tag byte read from a legacy UDM file
// needs no translation table.
const (
	Nil Type = iota
	String
	Utf8String

	Int8
	UInt8
	Int16
	UInt16
	Int32
	UInt32
	Int64
	UInt64

	Float
	Double
	Boolean

	Vector2
	Vector3
	Vector4
	Quaternion
	EulerAngles
	Srgba
	HdrColor
	Transform
	ScaledTransform
	Mat4
	Mat3x4

	Blob
	BlobLz4

	Element
	Array
	ArrayLz4
	Reference
	Struct
	Half
	Vector2i
	Vector3i
	Vector4i

	Count
	Last    = Count - 1
	Invalid = Type(0xFF)
)

var typeNames = map[Type]string{
	Nil: "nil", String: "string", Utf8String: "utf8",
	Int8: "int8", UInt8: "uint8", Int16: "int16", UInt16: "uint16",
	Int32: "int32", UInt32: "uint32", Int64: "int64", UInt64: "uint64",
	Float: "float", Double: "double", Boolean: "bool",
	Vector2: "vec2", Vector3: "vec3", Vector4: "vec4",
	Quaternion: "quat", EulerAngles: "ang", Srgba: "srgba", HdrColor: "hdr",
	Transform: "transform", ScaledTransform: "stransform",
	Mat4: "mat4", Mat3x4: "mat3x4",
	Blob: "blob", BlobLz4: "lz4",
	Element: "element", Array: "array", ArrayLz4: "array_lz4",
	Reference: "ref", Struct: "struct", Half: "half",
	Vector2i: "vec2i", Vector3i: "vec3i", Vector4i: "vec4i",
}

// String implements fmt.Stringer, returning the ASCII codec's type name for
// known kinds and a diagnostic placeholder otherwise.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	if t == Invalid {
		return "invalid"
	}
	return fmt.Sprintf("unknown_type_%d", uint8(t))
}

// asciiNameToType is built once from typeNames; several names map to the
// same canonical form is not needed here since typeNames is already
// canonical (see enum_type_to_ascii in the original implementation).
var asciiNameToType map[string]Type

func init() {
	asciiNameToType = make(map[string]Type, len(typeNames))
	for t, name := range typeNames {
		asciiNameToType[name] = t
	}
}

// AsciiTypeToEnum resolves an ASCII codec type name (e.g. "vec3", "lz4",
// "ang") to its Type. Unknown names resolve to Nil, matching the original
// implementation's permissive fallback.
func AsciiTypeToEnum(name string) Type {
	if t, ok := asciiNameToType[name]; ok {
		return t
	}
	return Nil
}

// IsNumeric reports whether t is one of the 12 numeric kinds.
func IsNumeric(t Type) bool {
	switch t {
	case Int8, UInt8, Int16, UInt16, Int32, UInt32, Int64, UInt64, Float, Double, Boolean, Half:
		return true
	}
	return false
}

// IsGeneric reports whether t is one of the fixed-size, non-numeric generic
// kinds (vectors, matrices, quaternion, transforms, color packs) or Nil.
func IsGeneric(t Type) bool {
	switch t {
	case Vector2, Vector3, Vector4, Vector2i, Vector3i, Vector4i,
		Quaternion, EulerAngles, Srgba, HdrColor,
		Transform, ScaledTransform, Mat4, Mat3x4, Nil:
		return true
	}
	return false
}

// IsNonTrivial reports whether t owns heap-backed or variable-length
// storage (strings, blobs, containers, references, structs).
func IsNonTrivial(t Type) bool {
	switch t {
	case String, Utf8String, Blob, BlobLz4, Element, Array, ArrayLz4, Reference, Struct:
		return true
	}
	return false
}

// IsTrivial is the complement of IsNonTrivial, excluding Invalid.
func IsTrivial(t Type) bool {
	return !IsNonTrivial(t) && t != Invalid
}

// IsArray reports whether t is Array or ArrayLz4.
func IsArray(t Type) bool {
	return t == Array || t == ArrayLz4
}

// isNumericOrGeneric mirrors the original's is_ng_type: numeric or generic,
// but never non-trivial.
func isNumericOrGeneric(t Type) bool {
	return IsNumeric(t) || IsGeneric(t)
}

// SizeOf returns the fixed byte size of a numeric or generic kind's payload.
// It errors for the nine non-trivial kinds (Element among them), which have
// no constant size.
func SizeOf(t Type) (int, error) {
	switch t {
	case Int8, UInt8, Boolean:
		return 1, nil
	case Int16, UInt16, Half:
		return 2, nil
	case Int32, UInt32, Float, Srgba:
		return 4, nil
	case Int64, UInt64, Double:
		return 8, nil
	case Nil:
		return 0, nil
	case Vector2, Vector2i:
		return 8, nil
	case Vector3, EulerAngles, HdrColor, Vector3i:
		return 12, nil
	case Vector4, Quaternion, Vector4i:
		return 16, nil
	case Transform:
		return 7 * 4, nil
	case ScaledTransform:
		return 10 * 4, nil
	case Mat3x4:
		return 12 * 4, nil
	case Mat4:
		return 16 * 4, nil
	}
	return 0, &Error{Kind: ErrKindLogic, Msg: fmt.Sprintf("type %s has no constant size", t)}
}

// SizeOfBase returns the size of the storage cell used for a value of kind
// t when it lives inside a trivial-valued Array: size_of(t) for trivial
// kinds, and the pointer/handle cell size for non-trivial kinds.
func SizeOfBase(t Type) int {
	if n, err := SizeOf(t); err == nil {
		return n
	}
	// Non-trivial payloads inside an Array are stored as owned Go values
	// behind an interface cell; report the platform pointer width the way
	// the original reports sizeof(its variant's pointer member).
	return 8
}

// NumComponents returns the number of scalar components making up a value
// of kind t: 1 for scalar numerics, component counts for vectors/matrices,
// 0 for kinds with no component decomposition (strings, containers, nil).
func NumComponents(t Type) int {
	if IsNumeric(t) {
		return 1
	}
	switch t {
	case Vector2, Vector2i:
		return 2
	case Vector3, Vector3i, EulerAngles, HdrColor:
		return 3
	case Vector4, Vector4i, Quaternion, Srgba:
		return 4
	case Transform:
		return 7
	case ScaledTransform:
		return 10
	case Mat3x4:
		return 12
	case Mat4:
		return 16
	}
	return 0
}
