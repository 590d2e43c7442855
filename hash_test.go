package udm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalcHashDeterministic(t *testing.T) {
	p := NewPropertyValue(Int32, int32(42))
	require.Equal(t, p.CalcHash(), p.CalcHash())
}

func TestCalcHashDiffersOnValue(t *testing.T) {
	a := NewPropertyValue(Int32, int32(1))
	b := NewPropertyValue(Int32, int32(2))
	require.NotEqual(t, a.CalcHash(), b.CalcHash())
}

func TestCalcHashElementIsPermutationInvariant(t *testing.T) {
	a := NewElement()
	a.Add("x", Int32).Value = int32(1)
	a.Add("y", Int32).Value = int32(2)

	b := NewElement()
	b.Add("y", Int32).Value = int32(2)
	b.Add("x", Int32).Value = int32(1)

	pa := NewPropertyValue(Element, a)
	pb := NewPropertyValue(Element, b)
	require.Equal(t, pa.CalcHash(), pb.CalcHash())
}

func TestCalcHashElementSensitiveToChildValue(t *testing.T) {
	a := NewElement()
	a.Add("x", Int32).Value = int32(1)

	b := NewElement()
	b.Add("x", Int32).Value = int32(2)

	require.NotEqual(t, a.CalcHash(), b.CalcHash())
}

func TestCalcHashArrayTrivialMatchesFlattenedBytes(t *testing.T) {
	a1 := NewArray(Int32, 2)
	a1.Set(0, int32(1))
	a1.Set(1, int32(2))

	a2 := NewArray(Int32, 2)
	a2.Set(0, int32(1))
	a2.Set(1, int32(2))

	require.Equal(t, a1.CalcHash(), a2.CalcHash())

	a2.Set(1, int32(3))
	require.NotEqual(t, a1.CalcHash(), a2.CalcHash())
}

func TestCalcHashArrayLz4HashesCompressedBytes(t *testing.T) {
	a := NewArrayLz4(Int32, 3)
	a.Set(0, int32(1))
	a.Set(1, int32(2))
	a.Set(2, int32(3))
	require.Equal(t, a.CalcHash(), a.CalcHash())
}

func TestCalcHashStructSensitiveToMembersAndData(t *testing.T) {
	desc := &StructDescription{Names: []string{"a"}, Types: []Type{Int32}}
	s1 := &StructValue{Description: desc, Data: []byte{1, 0, 0, 0}}
	s2 := &StructValue{Description: desc, Data: []byte{2, 0, 0, 0}}
	require.NotEqual(t, s1.CalcHash(), s2.CalcHash())
}

func TestCalcHashNilPropertyIsZero(t *testing.T) {
	var p *Property
	require.Equal(t, Hash{}, p.CalcHash())
}
