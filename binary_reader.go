package udm

import "github.com/pragma-engine/udm/internal/wire"

// binaryCursor walks a byte slice without copying it, the same role the
// teacher's internal/buf bounds helpers play over a raw hive byte buffer.
type binaryCursor struct {
	data []byte
	pos  int
}

func (c *binaryCursor) take(n int) ([]byte, error) {
	b, ok := wire.Slice(c.data, c.pos, n)
	if !ok {
		return nil, &Error{Kind: ErrKindInvalidFormat, Msg: "unexpected end of binary data"}
	}
	c.pos += n
	return b, nil
}

func (c *binaryCursor) byte() (byte, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *binaryCursor) u32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return wire.U32LE(b), nil
}

func (c *binaryCursor) u64() (uint64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return wire.U64LE(b), nil
}

func (c *binaryCursor) skip(n int) error {
	if !wire.Has(c.data, c.pos, n) {
		return &Error{Kind: ErrKindInvalidFormat, Msg: "unexpected end of binary data"}
	}
	c.pos += n
	return nil
}

func (c *binaryCursor) readBytes() ([]byte, error) {
	n, err := c.byte()
	if err != nil {
		return nil, err
	}
	length := int(n)
	if n == wire.ExtendedStringMarker {
		ext, err := c.u32()
		if err != nil {
			return nil, err
		}
		length = int(ext)
	}
	return c.take(length)
}

func (c *binaryCursor) readString() (string, error) {
	b, err := c.readBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeBinary parses a complete UDM binary document (header + root
// Element), returning the root. Every Element/Array body is read in full
// here; lazy, path-indexed access without a full parse is provided
// separately by Data.LoadProperty over an mmap'd cursor (see data.go).
func DecodeBinary(data []byte) (*Element, error) {
	c := &binaryCursor{data: data}
	magic, err := c.take(len(wire.Magic))
	if err != nil {
		return nil, err
	}
	if string(magic) != wire.Magic {
		return nil, &Error{Kind: ErrKindInvalidFormat, Msg: "not a UDM binary document"}
	}
	if _, err := c.u32(); err != nil { // format version, currently unchecked beyond presence
		return nil, err
	}
	prop, err := decodeBinaryProperty(c)
	if err != nil {
		return nil, err
	}
	if prop.Type != Element {
		return nil, &Error{Kind: ErrKindInvalidFormat, Msg: "root property is not an Element"}
	}
	el, _ := prop.Value.(*Element)
	return el, nil
}

func decodeBinaryProperty(c *binaryCursor) (*Property, error) {
	tagByte, err := c.byte()
	if err != nil {
		return nil, err
	}
	t := Type(tagByte)
	v, err := decodeBinaryValue(c, t)
	if err != nil {
		return nil, err
	}
	return &Property{Type: t, Value: v}, nil
}

func decodeBinaryValue(c *binaryCursor, t Type) (any, error) {
	switch t {
	case Nil:
		return nil, nil
	case String:
		raw, err := c.readBytes()
		if err != nil {
			return nil, err
		}
		return decodeLegacyString(raw)
	case Utf8String:
		n, err := c.u32()
		if err != nil {
			return nil, err
		}
		b, err := c.take(int(n))
		if err != nil {
			return nil, err
		}
		out := make(Utf8StringValue, len(b))
		copy(out, b)
		return out, nil
	case Blob:
		n, err := c.u64()
		if err != nil {
			return nil, err
		}
		b, err := c.take(int(n))
		if err != nil {
			return nil, err
		}
		out := make(BlobValue, len(b))
		copy(out, b)
		return out, nil
	case BlobLz4:
		compSize, err := c.u64()
		if err != nil {
			return nil, err
		}
		uncompSize, err := c.u64()
		if err != nil {
			return nil, err
		}
		b, err := c.take(int(compSize))
		if err != nil {
			return nil, err
		}
		out := make([]byte, len(b))
		copy(out, b)
		return BlobLz4Value{Compressed: out, UncompressedSize: int(uncompSize)}, nil
	case Reference:
		path, err := c.readString()
		if err != nil {
			return nil, err
		}
		return &Reference{Path: path}, nil
	case Element:
		bodyLen, err := c.u64()
		if err != nil {
			return nil, err
		}
		body, err := c.take(int(bodyLen))
		if err != nil {
			return nil, err
		}
		return decodeElementBody(body)
	case Array, ArrayLz4:
		return decodeArray(c, t == ArrayLz4)
	case Struct:
		return decodeStruct(c)
	}
	if IsTrivial(t) {
		size, err := SizeOf(t)
		if err != nil {
			return nil, err
		}
		b, err := c.take(size)
		if err != nil {
			return nil, err
		}
		return decodeTrivialValue(t, b)
	}
	return nil, &Error{Kind: ErrKindInvalidFormat, Msg: "unknown binary type tag"}
}

func decodeElementBody(body []byte) (*Element, error) {
	c := &binaryCursor{data: body}
	count, err := c.u32()
	if err != nil {
		return nil, err
	}
	names := make([]string, count)
	for i := range names {
		names[i], err = c.readString()
		if err != nil {
			return nil, err
		}
	}
	el := NewElement()
	for i := uint32(0); i < count; i++ {
		prop, err := decodeBinaryProperty(c)
		if err != nil {
			return nil, err
		}
		el.SetChild(names[i], prop)
	}
	return el, nil
}

// decodeArray reads one Array/ArrayLz4 payload. Compressed arrays (trivial
// or non-trivial value type alike) are not decoded here: the compressed
// bytes and declared count are stashed on the Array and materialize (see
// array.go) decompresses lazily on first Get/Set, the skip-scan discipline
// spec.md's ArrayLz4 lazy state machine calls for. Only uncompressed
// Arrays are decoded eagerly, since there is no compressed payload to
// defer decoding of.
func decodeArray(c *binaryCursor, compressed bool) (*Array, error) {
	tagByte, err := c.byte()
	if err != nil {
		return nil, err
	}
	valueType := Type(tagByte)
	count, err := c.u32()
	if err != nil {
		return nil, err
	}

	if compressed {
		compSize, err := c.u64()
		if err != nil {
			return nil, err
		}
		uncompSize, err := c.u64()
		if err != nil {
			return nil, err
		}
		compData, err := c.take(int(compSize))
		if err != nil {
			return nil, err
		}
		payload := make([]byte, len(compData))
		copy(payload, compData)
		return &Array{
			ValueType:        valueType,
			Compressed:       true,
			count:            int(count),
			compressedBytes:  payload,
			uncompressedSize: int(uncompSize),
		}, nil
	}

	if !IsNonTrivial(valueType) {
		elemSize, err := SizeOf(valueType)
		if err != nil {
			return nil, err
		}
		raw, err := c.take(elemSize * int(count))
		if err != nil {
			return nil, err
		}
		a := &Array{ValueType: valueType}
		if err := unflattenTrivialArray(a, raw); err != nil {
			return nil, err
		}
		return a, nil
	}

	bodyLen, err := c.u64()
	if err != nil {
		return nil, err
	}
	body, err := c.take(int(bodyLen))
	if err != nil {
		return nil, err
	}
	a := &Array{ValueType: valueType, count: int(count)}
	if err := unflattenNonTrivialArray(a, body); err != nil {
		return nil, err
	}
	return a, nil
}

// unflattenNonTrivialArray decodes data as a.count back-to-back values of
// a.ValueType (the inverse of flattenNonTrivialArray in binary_writer.go),
// setting a.values directly rather than going through Set so no
// dirty/compressedBytes state is disturbed.
func unflattenNonTrivialArray(a *Array, data []byte) error {
	bc := &binaryCursor{data: data}
	values := make([]any, a.count)
	for i := 0; i < a.count; i++ {
		v, err := decodeBinaryValue(bc, a.ValueType)
		if err != nil {
			return err
		}
		values[i] = v
	}
	a.values = values
	return nil
}

func decodeStruct(c *binaryCursor) (*StructValue, error) {
	memberCount, err := c.byte()
	if err != nil {
		return nil, err
	}
	names := make([]string, memberCount)
	types := make([]Type, memberCount)
	for i := 0; i < int(memberCount); i++ {
		names[i], err = c.readString()
		if err != nil {
			return nil, err
		}
		tagByte, err := c.byte()
		if err != nil {
			return nil, err
		}
		types[i] = Type(tagByte)
	}
	lenBytes, err := c.take(2)
	if err != nil {
		return nil, err
	}
	dataLen := wire.U16LE(lenBytes)
	data, err := c.take(int(dataLen))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	copy(out, data)
	return &StructValue{Description: &StructDescription{Names: names, Types: types}, Data: out}, nil
}
