package udm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReferenceResolveAbsolute(t *testing.T) {
	root := NewElement()
	target := root.Add("a/b", Int32)
	target.Value = int32(42)

	r := &Reference{Path: "/a/b"}
	prop := r.Resolve(root, nil)
	require.Same(t, target, prop)
	require.Same(t, target, r.Property)
}

func TestReferenceResolveRelativeToBase(t *testing.T) {
	root := NewElement()
	base := root.Add("group", Element).Value.(*Element)
	target := base.Add("sibling", Int32)
	target.Value = int32(7)

	r := &Reference{Path: "sibling"}
	prop := r.Resolve(root, base)
	require.Same(t, target, prop)
}

func TestReferenceResolveEmptyPath(t *testing.T) {
	r := &Reference{}
	require.Nil(t, r.Resolve(NewElement(), nil))
}

func TestReferenceResolveMissingTarget(t *testing.T) {
	root := NewElement()
	r := &Reference{Path: "/does/not/exist"}
	require.Nil(t, r.Resolve(root, nil))
	require.Nil(t, r.Property)
}
