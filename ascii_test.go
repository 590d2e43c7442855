package udm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAsciiEncodeDecodeRoundTrip(t *testing.T) {
	root := buildSampleDocument(t)
	text := WriteAscii(root)

	decoded, err := ParseAscii(text)
	require.NoError(t, err)
	require.True(t, root.Equal(decoded))
	require.True(t, decoded.Equal(root))
}

func TestAsciiParseSimpleDocument(t *testing.T) {
	doc := []byte(`{
		int32 count 7
		string name "hello world"
		vec3 pos [1 2 3]
		element child
		{
			bool flag 1
		}
	}`)
	root, err := ParseAscii(doc)
	require.NoError(t, err)
	require.Equal(t, int32(7), root.Get("count").Value)
	require.Equal(t, "hello world", root.Get("name").Value)
	require.Equal(t, Vector3{1, 2, 3}, root.Get("pos").Value)

	child := root.Get("child").Value.(*Element)
	require.Equal(t, true, child.Get("flag").Value)
}

func TestAsciiParseArray(t *testing.T) {
	doc := []byte(`{
		array nums int32[3] [1, 2, 3]
	}`)
	root, err := ParseAscii(doc)
	require.NoError(t, err)
	arr := root.Get("nums").Value.(*Array)
	require.Equal(t, 3, arr.Len())
	v1, _ := arr.Get(1)
	require.Equal(t, int32(2), v1)
}

func TestAsciiParseQuotedStringEscapes(t *testing.T) {
	doc := []byte(`{
		string s "line1\nline2 \"quoted\""
	}`)
	root, err := ParseAscii(doc)
	require.NoError(t, err)
	require.Equal(t, "line1\nline2 \"quoted\"", root.Get("s").Value)
}

func TestAsciiParseBlob(t *testing.T) {
	root := NewElement()
	root.Add("b", Blob).Value = BlobValue([]byte{10, 20, 30})
	text := WriteAscii(root)

	decoded, err := ParseAscii(text)
	require.NoError(t, err)
	require.Equal(t, BlobValue([]byte{10, 20, 30}), decoded.Get("b").Value)
}

func TestAsciiParseBlobLz4(t *testing.T) {
	payload, err := compressLz4([]byte("some payload worth compressing, repeated, repeated, repeated"))
	require.NoError(t, err)

	root := NewElement()
	root.Add("b", BlobLz4).Value = payload

	text := WriteAscii(root)
	decoded, err := ParseAscii(text)
	require.NoError(t, err)
	got := decoded.Get("b").Value.(BlobLz4Value)
	require.Equal(t, payload.UncompressedSize, got.UncompressedSize)
	require.Equal(t, payload.Compressed, got.Compressed)
}

func TestAsciiStructRoundTrip(t *testing.T) {
	desc, err := DefineStruct([]string{"a", "b"}, []Type{Int32, Float})
	require.NoError(t, err)
	sv, err := NewStructValue(desc)
	require.NoError(t, err)
	require.NoError(t, sv.SetMember("a", int32(-3)))
	require.NoError(t, sv.SetMember("b", float32(1.5)))

	root := NewElement()
	root.Add("s", Struct).Value = sv

	text := WriteAscii(root)
	require.Contains(t, string(text), "struct s [a:int32, b:float]")

	decoded, err := ParseAscii(text)
	require.NoError(t, err)
	got := decoded.Get("s").Value.(*StructValue)
	require.True(t, sv.Equal(got))
}

func TestAsciiParseMissingClosingBraceErrors(t *testing.T) {
	_, err := ParseAscii([]byte(`{ int32 x 1`))
	require.Error(t, err)
}

func TestAsciiNilPropertyRoundTrip(t *testing.T) {
	root := NewElement()
	root.Add("n", Nil)
	root.Add("after", Int32).Value = int32(1)

	text := WriteAscii(root)
	decoded, err := ParseAscii(text)
	require.NoError(t, err)
	require.Equal(t, Nil, decoded.Get("n").Type)
	require.Equal(t, int32(1), decoded.Get("after").Value)
}

func TestAsciiParseUnknownTypeFallsBackToNil(t *testing.T) {
	doc := []byte(`{
		totallyUnknownType x nil
	}`)
	root, err := ParseAscii(doc)
	require.NoError(t, err)
	require.Equal(t, Nil, root.Get("x").Type)
}

func TestAsciiWriteAsciiIndentsNestedElements(t *testing.T) {
	root := NewElement()
	child := root.Add("child", Element).Value.(*Element)
	child.Add("leaf", Int32).Value = int32(1)

	text := string(WriteAscii(root))
	require.Contains(t, text, "element child")
	require.Contains(t, text, "\tint32 leaf 1")
}

func TestAsciiUtf8StringRoundTrip(t *testing.T) {
	root := NewElement()
	root.Add("u", Utf8String).Value = Utf8StringValue(append([]byte("utf8 value"), 0))

	text := WriteAscii(root)
	decoded, err := ParseAscii(text)
	require.NoError(t, err)
	require.Equal(t, Utf8StringValue(append([]byte("utf8 value"), 0)), decoded.Get("u").Value)
}

func TestAsciiBomStrippedBeforeParse(t *testing.T) {
	withBOM := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{ int32 x 5 }`)...)
	root, err := ParseAscii(withBOM)
	require.NoError(t, err)
	require.Equal(t, int32(5), root.Get("x").Value)
}
