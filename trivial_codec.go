package udm

import "github.com/pragma-engine/udm/internal/wire"

// encodeTrivialValue packs the concrete Go value for a trivial (numeric
// or generic) kind into its fixed-width little-endian byte layout, the
// same layout the original keeps in its raw value buffer.
func encodeTrivialValue(t Type, v any) ([]byte, error) {
	var buf []byte
	switch t {
	case Int8:
		x, _ := v.(int8)
		buf = append(buf, byte(x))
	case UInt8:
		x, _ := v.(uint8)
		buf = append(buf, x)
	case Boolean:
		x, _ := v.(bool)
		if x {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	case Int16:
		x, _ := v.(int16)
		buf = wire.PutU16LE(buf, uint16(x))
	case UInt16:
		x, _ := v.(uint16)
		buf = wire.PutU16LE(buf, x)
	case Half:
		x, _ := v.(Half)
		buf = wire.PutU16LE(buf, uint16(x))
	case Int32:
		x, _ := v.(int32)
		buf = wire.PutU32LE(buf, uint32(x))
	case UInt32:
		x, _ := v.(uint32)
		buf = wire.PutU32LE(buf, x)
	case Float:
		x, _ := v.(float32)
		buf = wire.PutF32(buf, x)
	case Int64:
		x, _ := v.(int64)
		buf = wire.PutU64LE(buf, uint64(x))
	case UInt64:
		x, _ := v.(uint64)
		buf = wire.PutU64LE(buf, x)
	case Double:
		x, _ := v.(float64)
		buf = wire.PutF64(buf, x)
	case Nil:
		return nil, nil
	case Vector2:
		x, _ := v.(Vector2)
		buf = wire.PutF32(buf, x.X)
		buf = wire.PutF32(buf, x.Y)
	case Vector2i:
		x, _ := v.(Vector2i)
		buf = wire.PutU32LE(buf, uint32(x.X))
		buf = wire.PutU32LE(buf, uint32(x.Y))
	case Vector3:
		x, _ := v.(Vector3)
		buf = wire.PutF32(buf, x.X)
		buf = wire.PutF32(buf, x.Y)
		buf = wire.PutF32(buf, x.Z)
	case Vector3i:
		x, _ := v.(Vector3i)
		buf = wire.PutU32LE(buf, uint32(x.X))
		buf = wire.PutU32LE(buf, uint32(x.Y))
		buf = wire.PutU32LE(buf, uint32(x.Z))
	case Vector4:
		x, _ := v.(Vector4)
		buf = wire.PutF32(buf, x.X)
		buf = wire.PutF32(buf, x.Y)
		buf = wire.PutF32(buf, x.Z)
		buf = wire.PutF32(buf, x.W)
	case Vector4i:
		x, _ := v.(Vector4i)
		buf = wire.PutU32LE(buf, uint32(x.X))
		buf = wire.PutU32LE(buf, uint32(x.Y))
		buf = wire.PutU32LE(buf, uint32(x.Z))
		buf = wire.PutU32LE(buf, uint32(x.W))
	case Quaternion:
		x, _ := v.(QuaternionValue)
		buf = wire.PutF32(buf, x.X)
		buf = wire.PutF32(buf, x.Y)
		buf = wire.PutF32(buf, x.Z)
		buf = wire.PutF32(buf, x.W)
	case EulerAngles:
		x, _ := v.(EulerAnglesValue)
		buf = wire.PutF32(buf, x.P)
		buf = wire.PutF32(buf, x.Y)
		buf = wire.PutF32(buf, x.R)
	case Srgba:
		x, _ := v.(SrgbaValue)
		buf = append(buf, x.R, x.G, x.B, x.A)
	case HdrColor:
		x, _ := v.(HdrColorValue)
		buf = wire.PutF32(buf, x.R)
		buf = wire.PutF32(buf, x.G)
		buf = wire.PutF32(buf, x.B)
	case Transform:
		x, _ := v.(TransformValue)
		buf = appendVec3(buf, x.Translation)
		buf = appendQuat(buf, x.Rotation)
	case ScaledTransform:
		x, _ := v.(ScaledTransformValue)
		buf = appendVec3(buf, x.Translation)
		buf = appendQuat(buf, x.Rotation)
		buf = appendVec3(buf, x.Scale)
	case Mat3x4:
		x, _ := v.(Mat3x4Value)
		for _, f := range x {
			buf = wire.PutF32(buf, f)
		}
	case Mat4:
		x, _ := v.(Mat4Value)
		for _, f := range x {
			buf = wire.PutF32(buf, f)
		}
	default:
		return nil, &Error{Kind: ErrKindLogic, Msg: "type has no trivial byte layout: " + t.String()}
	}
	return buf, nil
}

func appendVec3(buf []byte, v Vector3) []byte {
	buf = wire.PutF32(buf, v.X)
	buf = wire.PutF32(buf, v.Y)
	return wire.PutF32(buf, v.Z)
}

func appendQuat(buf []byte, q QuaternionValue) []byte {
	buf = wire.PutF32(buf, q.X)
	buf = wire.PutF32(buf, q.Y)
	buf = wire.PutF32(buf, q.Z)
	return wire.PutF32(buf, q.W)
}

// decodeTrivialValue is encodeTrivialValue's inverse, reading from a byte
// slice of exactly SizeOf(t) length (the binary reader guarantees this via
// its skip-scan framing before calling in).
func decodeTrivialValue(t Type, b []byte) (any, error) {
	switch t {
	case Int8:
		return int8(b[0]), nil
	case UInt8:
		return b[0], nil
	case Boolean:
		return b[0] != 0, nil
	case Int16:
		return int16(wire.U16LE(b)), nil
	case UInt16:
		return wire.U16LE(b), nil
	case Half:
		return Half(wire.U16LE(b)), nil
	case Int32:
		return int32(wire.U32LE(b)), nil
	case UInt32:
		return wire.U32LE(b), nil
	case Float:
		return wire.F32(b), nil
	case Int64:
		return int64(wire.U64LE(b)), nil
	case UInt64:
		return wire.U64LE(b), nil
	case Double:
		return wire.F64(b), nil
	case Nil:
		return nil, nil
	case Vector2:
		return Vector2{wire.F32(b[0:]), wire.F32(b[4:])}, nil
	case Vector2i:
		return Vector2i{int32(wire.U32LE(b[0:])), int32(wire.U32LE(b[4:]))}, nil
	case Vector3:
		return Vector3{wire.F32(b[0:]), wire.F32(b[4:]), wire.F32(b[8:])}, nil
	case Vector3i:
		return Vector3i{int32(wire.U32LE(b[0:])), int32(wire.U32LE(b[4:])), int32(wire.U32LE(b[8:]))}, nil
	case Vector4:
		return Vector4{wire.F32(b[0:]), wire.F32(b[4:]), wire.F32(b[8:]), wire.F32(b[12:])}, nil
	case Vector4i:
		return Vector4i{int32(wire.U32LE(b[0:])), int32(wire.U32LE(b[4:])), int32(wire.U32LE(b[8:])), int32(wire.U32LE(b[12:]))}, nil
	case Quaternion:
		return QuaternionValue{wire.F32(b[0:]), wire.F32(b[4:]), wire.F32(b[8:]), wire.F32(b[12:])}, nil
	case EulerAngles:
		return EulerAnglesValue{wire.F32(b[0:]), wire.F32(b[4:]), wire.F32(b[8:])}, nil
	case Srgba:
		return SrgbaValue{b[0], b[1], b[2], b[3]}, nil
	case HdrColor:
		return HdrColorValue{wire.F32(b[0:]), wire.F32(b[4:]), wire.F32(b[8:])}, nil
	case Transform:
		return TransformValue{
			Translation: Vector3{wire.F32(b[0:]), wire.F32(b[4:]), wire.F32(b[8:])},
			Rotation:    QuaternionValue{wire.F32(b[12:]), wire.F32(b[16:]), wire.F32(b[20:]), wire.F32(b[24:])},
		}, nil
	case ScaledTransform:
		return ScaledTransformValue{
			Translation: Vector3{wire.F32(b[0:]), wire.F32(b[4:]), wire.F32(b[8:])},
			Rotation:    QuaternionValue{wire.F32(b[12:]), wire.F32(b[16:]), wire.F32(b[20:]), wire.F32(b[24:])},
			Scale:       Vector3{wire.F32(b[28:]), wire.F32(b[32:]), wire.F32(b[36:])},
		}, nil
	case Mat3x4:
		var m Mat3x4Value
		for i := range m {
			m[i] = wire.F32(b[i*4:])
		}
		return m, nil
	case Mat4:
		var m Mat4Value
		for i := range m {
			m[i] = wire.F32(b[i*4:])
		}
		return m, nil
	}
	return nil, &Error{Kind: ErrKindLogic, Msg: "type has no trivial byte layout: " + t.String()}
}
