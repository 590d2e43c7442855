package udm

import (
	"golang.org/x/text/encoding/charmap"
)

// The String kind is UDM's legacy "8-bit" string, distinct from Utf8String:
// on disk it is Windows-1252 encoded, the code page the format has always
// assumed for it, while in memory it is held as a plain decoded Go string
// so every other part of the codebase (conversions, hashing, ASCII text)
// can treat it like any other string. Only the binary codec's boundary
// needs to know about the code page.
func encodeLegacyString(s string) ([]byte, error) {
	b, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, &Error{Kind: ErrKindInvalidFormat, Msg: "string is not representable in the legacy 8-bit code page", Err: err}
	}
	return b, nil
}

func decodeLegacyString(b []byte) (string, error) {
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", &Error{Kind: ErrKindInvalidFormat, Msg: "malformed legacy 8-bit string", Err: err}
	}
	return string(out), nil
}
