package udm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegacyStringEncodeDecodeRoundTrip(t *testing.T) {
	b, err := encodeLegacyString("plain ascii text")
	require.NoError(t, err)
	require.Equal(t, []byte("plain ascii text"), b)

	s, err := decodeLegacyString(b)
	require.NoError(t, err)
	require.Equal(t, "plain ascii text", s)
}

func TestLegacyStringEncodesWindows1252ExtendedCharacter(t *testing.T) {
	// U+00E9 (é) is representable in Windows-1252 as a single byte (0xE9).
	b, err := encodeLegacyString("café")
	require.NoError(t, err)
	require.Equal(t, byte(0xE9), b[len(b)-1])

	s, err := decodeLegacyString(b)
	require.NoError(t, err)
	require.Equal(t, "café", s)
}

func TestLegacyStringEncodeRejectsUnrepresentableCharacter(t *testing.T) {
	// CJK characters have no Windows-1252 code point.
	_, err := encodeLegacyString("中文")
	require.Error(t, err)
}
