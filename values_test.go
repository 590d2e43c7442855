package udm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranslateQuaternionIndexIsItsOwnInverse(t *testing.T) {
	for i := 0; i < 4; i++ {
		require.Equal(t, i, translateQuaternionIndex(translateQuaternionIndex(i)))
	}
}

func TestTranslateQuaternionIndexMapping(t *testing.T) {
	require.Equal(t, 3, translateQuaternionIndex(0)) // ascii w -> memory index 3
	require.Equal(t, 0, translateQuaternionIndex(1)) // ascii x -> memory index 0
	require.Equal(t, 1, translateQuaternionIndex(2)) // ascii y -> memory index 1
	require.Equal(t, 2, translateQuaternionIndex(3)) // ascii z -> memory index 2
}

func TestQuaternionStringOrdersWXYZ(t *testing.T) {
	q := QuaternionValue{X: 1, Y: 2, Z: 3, W: 4}
	require.Equal(t, "4 1 2 3", q.String())
}
