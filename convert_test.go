package udm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsConvertibleSameKindAlwaysTrue(t *testing.T) {
	require.True(t, IsConvertible(Int32, Int32))
	require.True(t, IsConvertible(Struct, Struct))
}

func TestConvertNumericPairwise(t *testing.T) {
	v, err := Convert(int32(42), Int32, Float)
	require.NoError(t, err)
	require.Equal(t, float32(42), v)

	v, err = Convert(float64(3.9), Double, Int32)
	require.NoError(t, err)
	require.Equal(t, int32(3), v)

	v, err = Convert(true, Boolean, Int8)
	require.NoError(t, err)
	require.Equal(t, int8(1), v)
}

func TestConvertUnregisteredPairErrors(t *testing.T) {
	require.False(t, IsConvertible(Struct, Blob))
	_, err := Convert(&StructValue{}, Struct, Blob)
	require.ErrorIs(t, err, ErrNotConvertible)
}

func TestConvertStringToNumeric(t *testing.T) {
	v, err := Convert("3.5", String, Float)
	require.NoError(t, err)
	require.Equal(t, float32(3.5), v)

	_, err = Convert("not-a-number", String, Int32)
	require.Error(t, err)
}

func TestConvertStringToBoolean(t *testing.T) {
	v, err := Convert("1", String, Boolean)
	require.NoError(t, err)
	require.Equal(t, true, v)

	v, err = Convert("0", String, Boolean)
	require.NoError(t, err)
	require.Equal(t, false, v)
}

func TestConvertNumericToStringRoundTrip(t *testing.T) {
	s, err := Convert(int32(7), Int32, String)
	require.NoError(t, err)
	require.Equal(t, "7", s)

	back, err := Convert(s, String, Int32)
	require.NoError(t, err)
	require.Equal(t, int32(7), back)
}

func TestConvertVector3StringRoundTrip(t *testing.T) {
	v := Vector3{1, 2, 3}
	s, err := Convert(v, Vector3, String)
	require.NoError(t, err)
	require.Equal(t, "1 2 3", s)

	back, err := Convert(s, String, Vector3)
	require.NoError(t, err)
	require.Equal(t, v, back)
}

func TestConvertQuaternionStringRoundTripPreservesComponents(t *testing.T) {
	q := QuaternionValue{X: 1, Y: 2, Z: 3, W: 4}
	s, err := Convert(q, Quaternion, String)
	require.NoError(t, err)
	require.Equal(t, "4 1 2 3", s)

	back, err := Convert(s, String, Quaternion)
	require.NoError(t, err)
	require.Equal(t, q, back)
}

func TestConvertTransformStringRoundTrip(t *testing.T) {
	tr := TransformValue{
		Translation: Vector3{1, 2, 3},
		Rotation:    QuaternionValue{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9},
	}
	s, err := Convert(tr, Transform, String)
	require.NoError(t, err)
	require.Len(t, strings.Fields(s.(string)), 7)

	back, err := Convert(s, String, Transform)
	require.NoError(t, err)
	require.Equal(t, tr, back)
}

func TestConvertScaledTransformStringRoundTrip(t *testing.T) {
	tr := ScaledTransformValue{
		Translation: Vector3{1, 2, 3},
		Rotation:    QuaternionValue{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9},
		Scale:       Vector3{2, 2, 2},
	}
	s, err := Convert(tr, ScaledTransform, String)
	require.NoError(t, err)
	require.Len(t, strings.Fields(s.(string)), 10)

	back, err := Convert(s, String, ScaledTransform)
	require.NoError(t, err)
	require.Equal(t, tr, back)
}

func TestConvertUtf8StringToStringTrimsNulTerminator(t *testing.T) {
	v, err := Convert(Utf8StringValue("hello\x00"), Utf8String, String)
	require.NoError(t, err)
	require.Equal(t, "hello", v)
}

func TestConvertStringToUtf8StringAppendsNulTerminator(t *testing.T) {
	v, err := Convert("hello", String, Utf8String)
	require.NoError(t, err)
	require.Equal(t, Utf8StringValue("hello\x00"), v)
}

func TestConvertColorRoundTrips(t *testing.T) {
	v, err := Convert(Vector3{1, 0.5, 0}, Vector3, Srgba)
	require.NoError(t, err)
	srgba := v.(SrgbaValue)
	require.Equal(t, SrgbaValue{R: 255, G: 128, B: 0, A: 0}, srgba)

	back, err := Convert(srgba, Srgba, Vector3)
	require.NoError(t, err)
	require.InDelta(t, 1.0, back.(Vector3).X, 0.01)
}

func TestConvertEulerToQuaternionIdentity(t *testing.T) {
	q, err := Convert(EulerAnglesValue{}, EulerAngles, Quaternion)
	require.NoError(t, err)
	require.InDelta(t, 1.0, float64(q.(QuaternionValue).W), 1e-6)
}

func TestConvertNilToElement(t *testing.T) {
	v, err := Convert(nil, Nil, Element)
	require.NoError(t, err)
	el, ok := v.(*Element)
	require.True(t, ok)
	require.Equal(t, 0, el.Len())
}

func TestConvertReferenceToString(t *testing.T) {
	v, err := Convert(&Reference{Path: "a/b"}, Reference, String)
	require.NoError(t, err)
	require.Equal(t, "a/b", v)
}

func TestHalfFloatRoundTrip(t *testing.T) {
	for _, f := range []float32{0, 1, -1, 0.5, 100.25} {
		h := float32ToHalf(f)
		back := halfToFloat32(h)
		require.InDelta(t, float64(f), float64(back), 1e-2)
	}
}
