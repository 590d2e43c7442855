package udm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeTrivialValueRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		typ  Type
		val  any
	}{
		{"int8", Int8, int8(-5)},
		{"uint8", UInt8, uint8(200)},
		{"bool_true", Boolean, true},
		{"bool_false", Boolean, false},
		{"int16", Int16, int16(-1000)},
		{"uint16", UInt16, uint16(60000)},
		{"half", Half, Half(0x3C00)},
		{"int32", Int32, int32(-123456)},
		{"uint32", UInt32, uint32(4000000000)},
		{"float", Float, float32(3.5)},
		{"int64", Int64, int64(-9000000000)},
		{"uint64", UInt64, uint64(18000000000000000000)},
		{"double", Double, float64(2.718281828)},
		{"vec2", Vector2, Vector2{1, 2}},
		{"vec2i", Vector2i, Vector2i{1, -2}},
		{"vec3", Vector3, Vector3{1, 2, 3}},
		{"vec3i", Vector3i, Vector3i{1, -2, 3}},
		{"vec4", Vector4, Vector4{1, 2, 3, 4}},
		{"vec4i", Vector4i, Vector4i{1, -2, 3, -4}},
		{"quat", Quaternion, QuaternionValue{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9}},
		{"ang", EulerAngles, EulerAnglesValue{P: 10, Y: 20, R: 30}},
		{"srgba", Srgba, SrgbaValue{R: 1, G: 2, B: 3, A: 4}},
		{"hdr", HdrColor, HdrColorValue{R: 1.5, G: 2.5, B: 3.5}},
		{"transform", Transform, TransformValue{Translation: Vector3{1, 2, 3}, Rotation: QuaternionValue{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9}}},
		{"stransform", ScaledTransform, ScaledTransformValue{
			Translation: Vector3{1, 2, 3},
			Rotation:    QuaternionValue{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9},
			Scale:       Vector3{2, 2, 2},
		}},
		{"mat3x4", Mat3x4, Mat3x4Value{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{"mat4", Mat4, Mat4Value{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf, err := encodeTrivialValue(c.typ, c.val)
			require.NoError(t, err)
			size, err := SizeOf(c.typ)
			require.NoError(t, err)
			require.Len(t, buf, size)

			got, err := decodeTrivialValue(c.typ, buf)
			require.NoError(t, err)
			require.Equal(t, c.val, got)
		})
	}
}

func TestEncodeTrivialValueNilIsEmpty(t *testing.T) {
	buf, err := encodeTrivialValue(Nil, nil)
	require.NoError(t, err)
	require.Nil(t, buf)
}

func TestEncodeTrivialValueRejectsNonTrivialKind(t *testing.T) {
	_, err := encodeTrivialValue(String, "x")
	require.Error(t, err)
}

func TestDecodeTrivialValueRejectsNonTrivialKind(t *testing.T) {
	_, err := decodeTrivialValue(Blob, []byte{1, 2, 3})
	require.Error(t, err)
}
