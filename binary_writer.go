package udm

import "github.com/pragma-engine/udm/internal/wire"

// encodeBinaryProperty appends prop's binary framing to buf: a one-byte
// type tag followed by the kind-specific payload. Element payloads are
// prefixed with an 8-byte body length; Array and ArrayLz4 payloads carry
// their value type and count, then either fixed-size raw values (trivial,
// uncompressed), an 8-byte body length (non-trivial, uncompressed), or the
// compressed and uncompressed sizes (compressed). Each form lets a reader
// skip the whole subtree without decoding it — the skip-scan framing that
// makes path-indexed lazy loading possible.
func encodeBinaryProperty(buf []byte, prop *Property) ([]byte, error) {
	buf = append(buf, byte(prop.Type))
	return encodeBinaryValue(buf, prop.Type, prop.Value)
}

func encodeBinaryValue(buf []byte, t Type, v any) ([]byte, error) {
	switch t {
	case Nil:
		return buf, nil
	case String:
		s, _ := v.(string)
		raw, err := encodeLegacyString(s)
		if err != nil {
			return nil, err
		}
		return encodeBinaryBytes(buf, raw), nil
	case Utf8String:
		b, _ := v.(Utf8StringValue)
		buf = wire.PutU32LE(buf, uint32(len(b)))
		return append(buf, b...), nil
	case Blob:
		b, _ := v.(BlobValue)
		buf = wire.PutU64LE(buf, uint64(len(b)))
		return append(buf, b...), nil
	case BlobLz4:
		b, _ := v.(BlobLz4Value)
		buf = wire.PutU64LE(buf, uint64(len(b.Compressed)))
		buf = wire.PutU64LE(buf, uint64(b.UncompressedSize))
		return append(buf, b.Compressed...), nil
	case Reference:
		r, _ := v.(*Reference)
		path := ""
		if r != nil {
			path = r.Path
		}
		return encodeBinaryString(buf, path), nil
	case Element:
		el, _ := v.(*Element)
		body, err := encodeElementBody(el)
		if err != nil {
			return nil, err
		}
		buf = wire.PutU64LE(buf, uint64(len(body)))
		return append(buf, body...), nil
	case Array, ArrayLz4:
		a, _ := v.(*Array)
		return encodeArray(buf, a)
	case Struct:
		s, _ := v.(*StructValue)
		return encodeStruct(buf, s)
	}
	if IsTrivial(t) {
		encoded, err := encodeTrivialValue(t, v)
		if err != nil {
			return nil, err
		}
		return append(buf, encoded...), nil
	}
	return nil, &Error{Kind: ErrKindLogic, Msg: "no binary encoding for type " + t.String()}
}

func encodeBinaryString(buf []byte, s string) []byte {
	return encodeBinaryBytes(buf, []byte(s))
}

// encodeBinaryBytes writes the length-prefixed byte framing shared by every
// string-shaped binary field: a one-byte length, or the extended-string
// marker followed by a uint32 length for anything 255 bytes or longer.
func encodeBinaryBytes(buf []byte, raw []byte) []byte {
	if len(raw) < wire.ExtendedStringMarker {
		buf = append(buf, byte(len(raw)))
	} else {
		buf = append(buf, wire.ExtendedStringMarker)
		buf = wire.PutU32LE(buf, uint32(len(raw)))
	}
	return append(buf, raw...)
}

// encodeElementBody encodes the child-name table followed by each child's
// framed property, matching the original's "string table, then parallel
// property list" layout (see Property::Read(Element&)).
func encodeElementBody(el *Element) ([]byte, error) {
	var body []byte
	keys := el.SortedKeys()
	body = wire.PutU32LE(body, uint32(len(keys)))
	for _, k := range keys {
		body = encodeBinaryString(body, k)
	}
	var err error
	for _, k := range keys {
		body, err = encodeBinaryProperty(body, el.Get(k))
		if err != nil {
			return nil, err
		}
	}
	return body, nil
}

// encodeArray writes one Array/ArrayLz4 payload. A Compressed array (of
// either trivial or non-trivial value type) reuses its cached compressed
// bytes via Array.compressedPayload when nothing has mutated it since
// they were last derived, rather than unconditionally re-compressing —
// the write side of the lazy state machine array.go documents.
func encodeArray(buf []byte, a *Array) ([]byte, error) {
	buf = append(buf, byte(a.ValueType))
	buf = wire.PutU32LE(buf, uint32(a.Len()))

	if a.Compressed {
		payload, err := a.compressedPayload()
		if err != nil {
			return nil, err
		}
		buf = wire.PutU64LE(buf, uint64(len(payload.Compressed)))
		buf = wire.PutU64LE(buf, uint64(payload.UncompressedSize))
		return append(buf, payload.Compressed...), nil
	}

	if !IsNonTrivial(a.ValueType) {
		raw, err := flattenTrivialArray(a)
		if err != nil {
			return nil, err
		}
		return append(buf, raw...), nil
	}
	body, err := flattenNonTrivialArray(a)
	if err != nil {
		return nil, err
	}
	buf = wire.PutU64LE(buf, uint64(len(body)))
	return append(buf, body...), nil
}

// flattenNonTrivialArray encodes a's elements back-to-back via
// encodeBinaryValue, the byte form both the uncompressed non-trivial
// Array path writes as-is and Array.compressedPayload LZ4-compresses.
func flattenNonTrivialArray(a *Array) ([]byte, error) {
	var body []byte
	for i := 0; i < a.Len(); i++ {
		v, err := a.Get(i)
		if err != nil {
			return nil, err
		}
		body, err = encodeBinaryValue(body, a.ValueType, v)
		if err != nil {
			return nil, err
		}
	}
	return body, nil
}

func encodeStruct(buf []byte, s *StructValue) ([]byte, error) {
	buf = append(buf, byte(len(s.Description.Names)))
	for i, name := range s.Description.Names {
		buf = encodeBinaryString(buf, name)
		buf = append(buf, byte(s.Description.Types[i]))
	}
	buf = wire.PutU16LE(buf, uint16(len(s.Data)))
	return append(buf, s.Data...), nil
}

// EncodeBinary serializes root as a complete UDM binary document,
// including the magic/version header data.go's Open/Load sniff on.
func EncodeBinary(root *Element) ([]byte, error) {
	buf := []byte(wire.Magic)
	buf = wire.PutU32LE(buf, wire.FormatVersion)
	prop := &Property{Type: Element, Value: root}
	return encodeBinaryProperty(buf, prop)
}
