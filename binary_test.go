package udm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildSampleDocument(t *testing.T) *Element {
	t.Helper()
	root := NewElement()
	root.Add("name", String).Value = "hello world"
	root.Add("count", Int32).Value = int32(-7)
	root.Add("ratio", Double).Value = float64(3.25)
	root.Add("flag", Boolean).Value = true
	root.Add("pos", Vector3).Value = Vector3{1, 2, 3}
	root.Add("rot", Quaternion).Value = QuaternionValue{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9}

	arr := root.AddArray("values", 3, Int32, false).Value.(*Array)
	arr.Set(0, int32(10))
	arr.Set(1, int32(20))
	arr.Set(2, int32(30))

	lz4Arr := root.AddArray("packed", 4, Float, true).Value.(*Array)
	for i := 0; i < 4; i++ {
		lz4Arr.Set(i, float32(i))
	}

	nested := root.Add("nested", Element).Value.(*Element)
	nested.Add("inner", String).Value = "child value"

	desc, err := DefineStruct([]string{"a", "b"}, []Type{Int32, Float})
	require.NoError(t, err)
	sv, err := NewStructValue(desc)
	require.NoError(t, err)
	require.NoError(t, sv.SetMember("a", int32(5)))
	require.NoError(t, sv.SetMember("b", float32(2.5)))
	root.Add("strukt", Struct).Value = sv

	root.Add("blob", Blob).Value = BlobValue([]byte{1, 2, 3, 4, 5})
	root.Add("ref", Reference).Value = &Reference{Path: "/name"}

	return root
}

func TestBinaryEncodeDecodeRoundTrip(t *testing.T) {
	root := buildSampleDocument(t)
	encoded, err := EncodeBinary(root)
	require.NoError(t, err)

	decoded, err := DecodeBinary(encoded)
	require.NoError(t, err)

	require.True(t, root.Equal(decoded))
	require.True(t, decoded.Equal(root))
}

func TestBinaryDecodeRejectsBadMagic(t *testing.T) {
	_, err := DecodeBinary([]byte("NOTUDM12345678"))
	require.Error(t, err)
}

func TestBinaryDecodeRejectsTruncatedData(t *testing.T) {
	root := NewElement()
	root.Add("x", Int32).Value = int32(1)
	encoded, err := EncodeBinary(root)
	require.NoError(t, err)

	_, err = DecodeBinary(encoded[:len(encoded)-2])
	require.Error(t, err)
}

func TestBinaryStringUsesLegacyEncoding(t *testing.T) {
	root := NewElement()
	root.Add("s", String).Value = "plain ascii"
	encoded, err := EncodeBinary(root)
	require.NoError(t, err)

	decoded, err := DecodeBinary(encoded)
	require.NoError(t, err)
	require.Equal(t, "plain ascii", decoded.Get("s").Value)
}

func TestBinaryLz4ArrayRoundTripsCompressedBytes(t *testing.T) {
	root := NewElement()
	arr := root.AddArray("nums", 8, Int32, true).Value.(*Array)
	for i := 0; i < 8; i++ {
		arr.Set(i, int32(i*i))
	}
	encoded, err := EncodeBinary(root)
	require.NoError(t, err)

	decoded, err := DecodeBinary(encoded)
	require.NoError(t, err)
	decodedArr := decoded.Get("nums").Value.(*Array)
	require.True(t, arr.Equal(decodedArr))
}

func TestBinaryExtendedStringLength(t *testing.T) {
	long := make([]byte, 400)
	for i := range long {
		long[i] = 'a'
	}
	root := NewElement()
	root.Add("long", String).Value = string(long)
	encoded, err := EncodeBinary(root)
	require.NoError(t, err)

	decoded, err := DecodeBinary(encoded)
	require.NoError(t, err)
	require.Equal(t, string(long), decoded.Get("long").Value)
}
