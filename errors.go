package udm

import "fmt"

// ErrKind classifies errors so callers can branch on intent rather than on
// message text, matching the taxonomy UDM's source format defines.
type ErrKind int

const (
	ErrKindInvalidUsage   ErrKind = iota // caller precondition violated (wrong kind, bad path, size mismatch)
	ErrKindCompression                  // LZ4 compress/decompress failure or size mismatch
	ErrKindFile                         // underlying source/sink could not be opened or read/written
	ErrKindInvalidFormat                // binary header mismatch, or required root children missing/wrong type
	ErrKindPropertyLoad                 // lazy LoadProperty could not locate or traverse the requested path
	ErrKindOutOfBounds                  // array index >= size
	ErrKindImplementation                // internal assertion, should be unreachable
	ErrKindLogic                        // value/conversion logic contradiction
	ErrKindAsciiSyntax                  // ASCII tokenizer/parser hit an unexpected token
	ErrKindAsciiData                    // ASCII value parser could not coerce tokens into the declared type
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindInvalidUsage:
		return "invalid_usage"
	case ErrKindCompression:
		return "compression"
	case ErrKindFile:
		return "file"
	case ErrKindInvalidFormat:
		return "invalid_format"
	case ErrKindPropertyLoad:
		return "property_load"
	case ErrKindOutOfBounds:
		return "out_of_bounds"
	case ErrKindImplementation:
		return "implementation"
	case ErrKindLogic:
		return "logic"
	case ErrKindAsciiSyntax:
		return "ascii_syntax"
	case ErrKindAsciiData:
		return "ascii_data"
	default:
		return "unknown"
	}
}

// Error is UDM's typed error. AsciiSyntax and AsciiData errors carry a
// source position; every other kind leaves Line/Column at zero.
type Error struct {
	Kind   ErrKind
	Msg    string
	Err    error
	Line   int
	Column int
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (line %d, column %d)", msg, e.Line, e.Column)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Common sentinels, mirrored after the teacher's package-level Error vars.
var (
	ErrTypeMismatch   = &Error{Kind: ErrKindInvalidUsage, Msg: "property value type mismatch"}
	ErrNotConvertible = &Error{Kind: ErrKindLogic, Msg: "value not convertible to requested type"}
	ErrOutOfBounds    = &Error{Kind: ErrKindOutOfBounds, Msg: "array index out of bounds"}
	ErrInvalidFormat  = &Error{Kind: ErrKindInvalidFormat, Msg: "invalid UDM file format"}
	ErrPropertyLoad   = &Error{Kind: ErrKindPropertyLoad, Msg: "failed to load property at path"}
)

// BlobResult is a routine (non-exceptional) return code for GetBlobData,
// matching spec.md's §4.3 contract: callers probe buffer sizing without an
// error allocation on the common "buffer too small" path.
type BlobResult int

const (
	BlobSuccess BlobResult = iota
	BlobDecompressedSizeMismatch
	BlobInsufficientSize
	BlobValueTypeMismatch
	BlobNotABlobType
	BlobInvalidProperty
)

func (r BlobResult) String() string {
	switch r {
	case BlobSuccess:
		return "success"
	case BlobDecompressedSizeMismatch:
		return "decompressed_size_mismatch"
	case BlobInsufficientSize:
		return "insufficient_size"
	case BlobValueTypeMismatch:
		return "value_type_mismatch"
	case BlobNotABlobType:
		return "not_a_blob_type"
	case BlobInvalidProperty:
		return "invalid_property"
	default:
		return "unknown"
	}
}
