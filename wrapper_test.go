package udm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapPropertyBasics(t *testing.T) {
	p := &Property{Type: Int32, Value: int32(42)}
	w := WrapProperty(p)

	require.True(t, w.Valid())
	require.False(t, w.IsArrayItem())
	require.Nil(t, w.GetOwningArray())
	require.Equal(t, Int32, w.Type())
	require.Equal(t, int32(42), w.Value())
	require.Same(t, p, w.Property())

	require.NoError(t, w.SetValue(int32(7)))
	require.Equal(t, int32(7), p.Value)
}

func TestWrapPropertyUnboundIsInvalid(t *testing.T) {
	w := WrapProperty(nil)
	require.False(t, w.Valid())
	require.Equal(t, Invalid, w.Type())
	require.Nil(t, w.Value())
	require.ErrorIs(t, w.SetValue(int32(1)), ErrTypeMismatch)
}

func TestWrapArrayElementBasics(t *testing.T) {
	a := NewArray(Int32, 3)
	a.Set(0, int32(10))
	a.Set(1, int32(20))
	a.Set(2, int32(30))

	w := WrapArrayElement(a, 1)
	require.True(t, w.Valid())
	require.True(t, w.IsArrayItem())
	require.Same(t, a, w.GetOwningArray())
	require.Equal(t, Int32, w.Type())
	require.Equal(t, int32(20), w.Value())
	require.Nil(t, w.Property())

	require.NoError(t, w.SetValue(int32(99)))
	got, _ := a.Get(1)
	require.Equal(t, int32(99), got)
}

func TestWrapArrayElementOutOfBoundsIsInvalid(t *testing.T) {
	a := NewArray(Int32, 2)
	w := WrapArrayElement(a, 5)
	require.False(t, w.Valid())
	require.Equal(t, Invalid, w.Type())
	require.Nil(t, w.Value())
}

func TestToValueConvertsOrFallsBackToDefault(t *testing.T) {
	p := &Property{Type: Int32, Value: int32(5)}
	w := WrapProperty(p)

	require.Equal(t, float64(5), ToValue(w, Double, float64(0)))

	unbound := WrapProperty(nil)
	require.Equal(t, "fallback", ToValue(unbound, String, "fallback"))

	wrongAssert := ToValue(w, String, int32(-1))
	require.Equal(t, int32(-1), wrongAssert)
}

func TestLinkPathAndGetPath(t *testing.T) {
	root := NewElement()
	child := root.Add("child", Element).Value.(*Element)
	child.Add("leaf", Int32).Value = int32(3)

	l := LinkPath(root, "child/leaf")
	require.True(t, l.Valid())
	require.Equal(t, "child/leaf", l.GetPath())
	require.Equal(t, int32(3), l.Value())
}

func TestLinkedPropertyWrapperChildAndIndex(t *testing.T) {
	root := NewElement()
	child := root.Add("child", Element).Value.(*Element)
	arr := child.AddArray("items", 2, Int32, false).Value.(*Array)
	arr.Set(0, int32(1))
	arr.Set(1, int32(2))

	rootProp := &Property{Type: Element, Value: root}
	l := LinkedPropertyWrapper{PropertyWrapper: WrapProperty(rootProp)}
	c := l.Child("child")
	require.True(t, c.Valid())
	require.Equal(t, "child", c.GetPath())

	items := c.Child("items")
	require.True(t, items.Valid())
	require.True(t, IsArray(items.Type()))

	item0 := items.Index(0)
	require.True(t, item0.Valid())
	require.Equal(t, int32(1), item0.Value())
}

func TestLinkedPropertyWrapperChildOnNonElementIsInvalid(t *testing.T) {
	root := NewElement()
	root.Add("leaf", Int32).Value = int32(1)

	l := LinkPath(root, "leaf")
	c := l.Child("nope")
	require.False(t, c.Valid())
}

func TestLinkedPropertyWrapperIndexOnNonArrayIsInvalid(t *testing.T) {
	root := NewElement()
	root.Add("leaf", Int32).Value = int32(1)

	l := LinkPath(root, "leaf")
	idx := l.Index(0)
	require.False(t, idx.Valid())
}
