package udm

// This file holds the LZ4-specific framing helpers shared by the binary
// and ASCII codecs for ArrayLz4-kind Arrays (Array with Compressed set).
// In-memory element storage is identical to an uncompressed Array; only
// the serialized form differs, by wrapping the element bytes in a single
// LZ4 block the way BlobLz4 wraps an opaque byte blob. See array.go for
// the Compressed-only/Compressed+Decompressed/Decompressed-only lazy
// state machine this drives.

// flattenTrivialArray packs a's trivial-kind elements into a contiguous
// little-endian byte slice, the layout size_of(a.ValueType)*a.Len() the
// original's raw uint8_t buffer held directly.
func flattenTrivialArray(a *Array) ([]byte, error) {
	elemSize, err := SizeOf(a.ValueType)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, elemSize*a.Len())
	for i := 0; i < a.Len(); i++ {
		v, err := a.Get(i)
		if err != nil {
			return nil, err
		}
		b, err := encodeTrivialValue(a.ValueType, v)
		if err != nil {
			return nil, err
		}
		buf = append(buf, b...)
	}
	return buf, nil
}

// unflattenTrivialArray is flattenTrivialArray's inverse. It sets a.values
// and a.count directly rather than going through Resize/Set, so it is
// safe to call from materialize without recursing back into itself.
func unflattenTrivialArray(a *Array, data []byte) error {
	elemSize, err := SizeOf(a.ValueType)
	if err != nil {
		return err
	}
	if elemSize == 0 {
		a.values = []any{}
		a.count = 0
		return nil
	}
	count := len(data) / elemSize
	values := make([]any, count)
	for i := 0; i < count; i++ {
		v, err := decodeTrivialValue(a.ValueType, data[i*elemSize:(i+1)*elemSize])
		if err != nil {
			return err
		}
		values[i] = v
	}
	a.values = values
	a.count = count
	return nil
}

// compressedPayload returns the LZ4-compressed bytes that represent a's
// current elements: the cached payload when nothing has changed since it
// was last computed (Compressed-only or clean Compressed+Decompressed),
// or a freshly compressed one otherwise (Decompressed-only). A freshly
// computed payload is cached back onto a so a later call — another Save,
// or CalcHash — reuses it instead of recompressing.
func (a *Array) compressedPayload() (BlobLz4Value, error) {
	if !a.dirty && a.compressedBytes != nil {
		return BlobLz4Value{Compressed: a.compressedBytes, UncompressedSize: a.uncompressedSize}, nil
	}
	var raw []byte
	var err error
	if IsNonTrivial(a.ValueType) {
		raw, err = flattenNonTrivialArray(a)
	} else {
		raw, err = flattenTrivialArray(a)
	}
	if err != nil {
		return BlobLz4Value{}, err
	}
	payload, err := compressLz4(raw)
	if err != nil {
		return BlobLz4Value{}, err
	}
	a.compressedBytes = payload.Compressed
	a.uncompressedSize = payload.UncompressedSize
	a.dirty = false
	return payload, nil
}
