package udm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeElementsDelegatesToElementMerge(t *testing.T) {
	dst := NewElement()
	dst.Add("k", Int32).Value = int32(1)
	src := NewElement()
	src.Add("k", Int32).Value = int32(2)

	MergeElements(dst, src, MergeFlagsOverwriteExisting)
	require.Equal(t, int32(2), dst.Get("k").Value)
}

func TestResolveReferencesAbsoluteAndRelative(t *testing.T) {
	root := NewElement()
	root.Add("target", Int32).Value = int32(99)

	group := root.Add("group", Element).Value.(*Element)
	group.Add("sibling", Int32).Value = int32(5)

	absRef := group.Add("abs", Reference)
	absRef.Value = &Reference{Path: "/target"}

	relRef := group.Add("rel", Reference)
	relRef.Value = &Reference{Path: "sibling"}

	ResolveReferences(root)

	abs := absRef.Value.(*Reference)
	require.NotNil(t, abs.Property)
	require.Equal(t, int32(99), abs.Property.Value)

	rel := relRef.Value.(*Reference)
	require.NotNil(t, rel.Property)
	require.Equal(t, int32(5), rel.Property.Value)
}

func TestResolveReferencesInsideArrayOfElements(t *testing.T) {
	root := NewElement()
	root.Add("target", Int32).Value = int32(11)

	arrProp := root.AddArray("items", 1, Element, false)
	arr := arrProp.Value.(*Array)
	item := NewElement()
	ref := item.Add("r", Reference)
	ref.Value = &Reference{Path: "/target"}
	arr.Set(0, item)

	ResolveReferences(root)

	resolved := ref.Value.(*Reference)
	require.NotNil(t, resolved.Property)
	require.Equal(t, int32(11), resolved.Property.Value)
}
