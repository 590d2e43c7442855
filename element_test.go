package udm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElementAddCreatesIntermediateElements(t *testing.T) {
	root := NewElement()
	prop := root.Add("a/b/c", Int32)
	require.NotNil(t, prop)
	require.Equal(t, Int32, prop.Type)

	a := root.Get("a")
	require.NotNil(t, a)
	require.Equal(t, Element, a.Type)

	found := root.Find("a/b/c")
	require.Same(t, prop, found)
}

func TestElementAddReplacesMismatchedType(t *testing.T) {
	root := NewElement()
	root.Add("x", Int32)
	prop := root.Add("x", String)
	require.Equal(t, String, prop.Type)
}

func TestElementFindMissingSegmentReturnsNil(t *testing.T) {
	root := NewElement()
	root.Add("a/b", Int32)
	require.Nil(t, root.Find("a/missing"))
	require.Nil(t, root.Find("missing/b"))
}

func TestElementFindStopsAtNonElementAncestor(t *testing.T) {
	root := NewElement()
	root.Add("leaf", Int32)
	require.Nil(t, root.Find("leaf/further"))
}

func TestElementSetChildSanitizesSlashes(t *testing.T) {
	root := NewElement()
	root.SetChild("has/slash", NewProperty(Int32))
	require.Nil(t, root.Get("has/slash"))
	require.NotNil(t, root.Get("has_slash"))
}

func TestElementKeysPreservesInsertionOrder(t *testing.T) {
	root := NewElement()
	root.Add("z", Int32)
	root.Add("a", Int32)
	root.Add("m", Int32)
	require.Equal(t, []string{"z", "a", "m"}, root.Keys())
	require.Equal(t, []string{"a", "m", "z"}, root.SortedKeys())
}

func TestElementRemove(t *testing.T) {
	root := NewElement()
	root.Add("a", Int32)
	root.Add("b", Int32)
	root.Remove("a")
	require.Nil(t, root.Get("a"))
	require.Equal(t, []string{"b"}, root.Keys())
	require.Equal(t, 1, root.Len())
}

func TestElementAddArraySetsValueTypeAndSize(t *testing.T) {
	root := NewElement()
	prop := root.AddArray("values", 4, Int32, false)
	require.Equal(t, Array, prop.Type)
	a, ok := prop.Value.(*Array)
	require.True(t, ok)
	require.Equal(t, Int32, a.ValueType)
	require.Equal(t, 4, a.Len())
}

func TestElementAddArrayCompressed(t *testing.T) {
	root := NewElement()
	prop := root.AddArray("values", 0, Float, true)
	require.Equal(t, ArrayLz4, prop.Type)
}

func TestElementEqualIsNotSymmetricOnExtraKeys(t *testing.T) {
	a := NewElement()
	a.Add("shared", Int32).Value = int32(1)

	b := NewElement()
	b.Add("shared", Int32).Value = int32(1)
	b.Add("extra", Int32).Value = int32(2)

	require.True(t, a.Equal(b))
	require.False(t, b.Equal(a))
}

func TestElementCloneIsDeep(t *testing.T) {
	root := NewElement()
	root.Add("a/b", Int32).Value = int32(42)

	clone := root.Clone()
	clone.Find("a/b").Value = int32(99)

	require.Equal(t, int32(42), root.Find("a/b").Value)
	require.Equal(t, int32(99), clone.Find("a/b").Value)
}

func TestElementMergeOverwritesOnlyWithFlag(t *testing.T) {
	dst := NewElement()
	dst.Add("k", Int32).Value = int32(1)

	src := NewElement()
	src.Add("k", Int32).Value = int32(2)

	dst.Merge(src, MergeFlagsNone)
	require.Equal(t, int32(1), dst.Get("k").Value)

	dst.Merge(src, MergeFlagsOverwriteExisting)
	require.Equal(t, int32(2), dst.Get("k").Value)
}

func TestElementMergeRecursesIntoSubElements(t *testing.T) {
	dst := NewElement()
	dst.Add("child/x", Int32).Value = int32(1)

	src := NewElement()
	src.Add("child/y", Int32).Value = int32(2)

	dst.Merge(src, MergeFlagsNone)

	child := dst.Get("child").Value.(*Element)
	require.Equal(t, int32(1), child.Get("x").Value)
	require.Equal(t, int32(2), child.Get("y").Value)
}

func TestElementMergeDeepCopiesWhenRequested(t *testing.T) {
	dst := NewElement()
	src := NewElement()
	src.Add("k", Int32).Value = int32(5)

	dst.Merge(src, MergeFlagsDeepCopy)
	dst.Get("k").Value = int32(10)
	require.Equal(t, int32(5), src.Get("k").Value)
}
