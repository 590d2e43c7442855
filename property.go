package udm

import (
	"bytes"
	"math"
)

// Property is a single tagged value: the basic unit every Element child,
// Array element and Data root holds. Unlike the original's tagged union
// backed by a raw void*, a Go Property simply boxes its payload in an
// interface{}; Type still drives every codec and conversion decision, the
// Value field is never trusted on its own.
type Property struct {
	Type  Type
	Value any
}

// NewProperty creates a Property of kind t holding the zero value for
// that kind, mirroring Property::Create + Initialize's default-construct
// behavior.
func NewProperty(t Type) *Property {
	p := &Property{Type: t}
	p.Value = zeroValueFor(t)
	return p
}

// NewPropertyValue creates a Property of kind t holding v directly,
// without validating that v's concrete type matches t (callers that build
// Properties outside the codecs are expected to get this right; a
// mismatched value is stored as given and only surfaces later, when a
// codec or conversion type-asserts it).
func NewPropertyValue(t Type, v any) *Property {
	return &Property{Type: t, Value: v}
}

func zeroValueFor(t Type) any {
	switch t {
	case Nil:
		return nil
	case String:
		return ""
	case Utf8String:
		return Utf8StringValue(nil)
	case Int8:
		return int8(0)
	case UInt8:
		return uint8(0)
	case Int16:
		return int16(0)
	case UInt16:
		return uint16(0)
	case Int32:
		return int32(0)
	case UInt32:
		return uint32(0)
	case Int64:
		return int64(0)
	case UInt64:
		return uint64(0)
	case Float:
		return float32(0)
	case Double:
		return float64(0)
	case Boolean:
		return false
	case Half:
		return Half(0)
	case Vector2:
		return Vector2{}
	case Vector3:
		return Vector3{}
	case Vector4:
		return Vector4{}
	case Vector2i:
		return Vector2i{}
	case Vector3i:
		return Vector3i{}
	case Vector4i:
		return Vector4i{}
	case Quaternion:
		return QuaternionValue{W: 1}
	case EulerAngles:
		return EulerAnglesValue{}
	case Srgba:
		return SrgbaValue{}
	case HdrColor:
		return HdrColorValue{}
	case Transform:
		return TransformValue{Rotation: QuaternionValue{W: 1}}
	case ScaledTransform:
		return ScaledTransformValue{Rotation: QuaternionValue{W: 1}, Scale: Vector3{1, 1, 1}}
	case Mat3x4:
		return Mat3x4Value{}
	case Mat4:
		return Mat4Value{}
	case Blob:
		return BlobValue(nil)
	case BlobLz4:
		return BlobLz4Value{}
	case Element:
		return NewElement()
	case Array:
		return NewArray(Nil, 0)
	case ArrayLz4:
		return NewArrayLz4(Nil, 0)
	case Reference:
		return &Reference{}
	case Struct:
		return &StructValue{}
	}
	return nil
}

// GetBlobData copies up to len(buf) bytes of the property's decompressed
// blob payload into buf and returns the number of bytes written together
// with a BlobResult classifying the outcome, mirroring
// get_blob_data's non-exceptional probe contract: callers size a buffer,
// call once to learn the required size via BlobInsufficientSize, then call
// again with a buffer of that size.
func (p *Property) GetBlobData(buf []byte) (int, BlobResult) {
	if p == nil {
		return 0, BlobInvalidProperty
	}
	switch p.Type {
	case Blob:
		b, _ := p.Value.(BlobValue)
		if len(buf) < len(b) {
			return len(b), BlobInsufficientSize
		}
		return copy(buf, b), BlobSuccess
	case BlobLz4:
		b, _ := p.Value.(BlobLz4Value)
		if len(buf) < b.UncompressedSize {
			return b.UncompressedSize, BlobInsufficientSize
		}
		n, err := decompressLz4(b.Compressed, buf[:b.UncompressedSize])
		if err != nil {
			return 0, BlobDecompressedSizeMismatch
		}
		return n, BlobSuccess
	}
	return 0, BlobNotABlobType
}

// To converts the property's value to kind to, using the conversion
// matrix when to differs from the property's own kind.
func (p *Property) To(to Type) (any, error) {
	if p == nil {
		return nil, ErrTypeMismatch
	}
	if p.Type == to {
		return p.Value, nil
	}
	return Convert(p.Value, p.Type, to)
}

// Equal reports deep value equality between p and other, comparing float
// payloads by exact bit pattern the way the original's operator== does
// (no epsilon tolerance — UDM values are expected to round-trip exactly).
func (p *Property) Equal(other *Property) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.Type != other.Type {
		return false
	}
	switch p.Type {
	case Element:
		a, _ := p.Value.(*Element)
		b, _ := other.Value.(*Element)
		return a.Equal(b)
	case Array, ArrayLz4:
		a, _ := p.Value.(*Array)
		b, _ := other.Value.(*Array)
		return a.Equal(b)
	case Struct:
		a, _ := p.Value.(*StructValue)
		b, _ := other.Value.(*StructValue)
		return a.Equal(b)
	case Reference:
		a, _ := p.Value.(*Reference)
		b, _ := other.Value.(*Reference)
		return a.Path == b.Path
	case Blob:
		a, _ := p.Value.(BlobValue)
		b, _ := other.Value.(BlobValue)
		return bytes.Equal(a, b)
	case BlobLz4:
		a, _ := p.Value.(BlobLz4Value)
		b, _ := other.Value.(BlobLz4Value)
		return a.UncompressedSize == b.UncompressedSize && bytes.Equal(a.Compressed, b.Compressed)
	case Utf8String:
		a, _ := p.Value.(Utf8StringValue)
		b, _ := other.Value.(Utf8StringValue)
		return bytes.Equal(a, b)
	case Float:
		a, _ := p.Value.(float32)
		b, _ := other.Value.(float32)
		return math.Float32bits(a) == math.Float32bits(b)
	case Double:
		a, _ := p.Value.(float64)
		b, _ := other.Value.(float64)
		return math.Float64bits(a) == math.Float64bits(b)
	}
	return p.Value == other.Value
}

// Clone deep-copies p, recursing into container kinds exactly the way
// Element/Array's own Copy methods do.
func (p *Property) Clone() *Property {
	if p == nil {
		return nil
	}
	switch p.Type {
	case Element:
		el, _ := p.Value.(*Element)
		return &Property{Type: p.Type, Value: el.Clone()}
	case Array, ArrayLz4:
		a, _ := p.Value.(*Array)
		return &Property{Type: p.Type, Value: a.Clone()}
	case Struct:
		s, _ := p.Value.(*StructValue)
		return &Property{Type: p.Type, Value: s.Clone()}
	case Reference:
		r, _ := p.Value.(*Reference)
		return &Property{Type: p.Type, Value: &Reference{Path: r.Path}}
	case Blob:
		b, _ := p.Value.(BlobValue)
		cp := make(BlobValue, len(b))
		copy(cp, b)
		return &Property{Type: p.Type, Value: cp}
	case BlobLz4:
		b, _ := p.Value.(BlobLz4Value)
		cp := make([]byte, len(b.Compressed))
		copy(cp, b.Compressed)
		return &Property{Type: p.Type, Value: BlobLz4Value{Compressed: cp, UncompressedSize: b.UncompressedSize}}
	case Utf8String:
		b, _ := p.Value.(Utf8StringValue)
		cp := make(Utf8StringValue, len(b))
		copy(cp, b)
		return &Property{Type: p.Type, Value: cp}
	}
	return &Property{Type: p.Type, Value: p.Value}
}
