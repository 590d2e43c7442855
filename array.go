package udm

// Array is a homogeneously-typed sequence of values. The Compressed flag
// distinguishes Array from ArrayLz4 at the storage level (both share this
// type; ArrayLz4 is Array with Compressed set and its binary/ASCII framing
// wraps the element bytes in an LZ4 block, see arraylz4.go).
//
// A Compressed array additionally runs a small lazy state machine over
// values/compressedBytes: Compressed-only (values nil, compressedBytes
// set), Compressed+Decompressed (both set), and Decompressed-only (values
// set, dirty, compressedBytes stale/absent). materialize/release drive the
// transitions; every public accessor goes through them so the laziness is
// invisible to callers.
type Array struct {
	ValueType Type
	// Compressed marks this Array as ArrayLz4 at the storage level.
	Compressed bool
	// PersistentUncompressedData keeps the decompressed view resident
	// after an accessor call instead of dropping it immediately; set this
	// when a caller is about to sample a Compressed array repeatedly.
	PersistentUncompressedData bool

	values []any // nil while Compressed-only and not yet decompressed

	compressedBytes  []byte // cached LZ4 payload, valid only while !dirty
	uncompressedSize int
	count            int  // authoritative length, valid even when values is nil
	dirty            bool // true once values has been mutated since compressedBytes was derived
}

// NewArray returns an Array of the given element kind and length, with
// every slot default-initialized via zeroValueFor.
func NewArray(valueType Type, size int) *Array {
	a := &Array{ValueType: valueType}
	a.Resize(size)
	return a
}

// NewArrayLz4 returns a compressed Array; the Compressed flag only affects
// the binary/ASCII codecs, in-memory element storage is identical to a
// plain Array.
func NewArrayLz4(valueType Type, size int) *Array {
	a := NewArray(valueType, size)
	a.Compressed = true
	return a
}

// materialize ensures a.values holds a decoded view of every element:
// default-initializing a freshly-sized array, or LZ4-decompressing a's
// cached compressed payload, whichever applies. A no-op once a.values is
// already populated.
func (a *Array) materialize() error {
	if a == nil || a.values != nil {
		return nil
	}
	if a.compressedBytes == nil {
		values := make([]any, a.count)
		for i := range values {
			values[i] = zeroValueFor(a.ValueType)
		}
		a.values = values
		return nil
	}
	raw, err := decompressLz4Blob(BlobLz4Value{Compressed: a.compressedBytes, UncompressedSize: a.uncompressedSize})
	if err != nil {
		return err
	}
	if IsNonTrivial(a.ValueType) {
		return unflattenNonTrivialArray(a, raw)
	}
	return unflattenTrivialArray(a, raw)
}

// release drops the decoded view after a single accessor call, returning
// a Compressed array to Compressed-only, unless PersistentUncompressedData
// is set or the values have been mutated since decompression (the
// Decompressed-only state that precedes re-compression on save).
func (a *Array) release() {
	if a == nil || a.dirty || a.PersistentUncompressedData || a.compressedBytes == nil {
		return
	}
	a.values = nil
}

// Len returns the number of elements. Reading the length never triggers a
// decompression: count is tracked independently of the lazy values view.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	if a.values != nil {
		return len(a.values)
	}
	return a.count
}

// Get returns the element at idx, or an out-of-bounds error. Reading a
// Compressed-only array decompresses it on this first access and, per
// PersistentUncompressedData, either keeps or discards the decoded view
// afterward.
func (a *Array) Get(idx int) (any, error) {
	if a == nil || idx < 0 || idx >= a.Len() {
		return nil, ErrOutOfBounds
	}
	if err := a.materialize(); err != nil {
		return nil, err
	}
	v := a.values[idx]
	a.release()
	return v, nil
}

// Set overwrites the element at idx, marking the array dirty so a
// subsequent Save re-compresses instead of reusing cached bytes.
func (a *Array) Set(idx int, v any) error {
	if a == nil || idx < 0 || idx >= a.Len() {
		return ErrOutOfBounds
	}
	if err := a.materialize(); err != nil {
		return err
	}
	a.values[idx] = v
	a.dirty = true
	a.compressedBytes = nil
	return nil
}

// SetValueType changes the array's element kind, clearing and
// re-allocating storage at the current length exactly as the original's
// SetValueType does (it is not a reinterpret — every slot reverts to its
// new kind's zero value).
func (a *Array) SetValueType(valueType Type) {
	if valueType == a.ValueType {
		return
	}
	size := a.Len()
	a.ValueType = valueType
	a.values = nil
	a.compressedBytes = nil
	a.count = 0
	a.dirty = true
	a.Resize(size)
}

// Resize grows or shrinks the array, preserving existing elements up to
// min(oldSize,newSize) and default-initializing any newly added slots,
// matching Array::Resize's move-and-default-fill behavior.
func (a *Array) Resize(newSize int) {
	if newSize == a.Len() {
		return
	}
	if err := a.materialize(); err != nil {
		a.values = nil
	}
	newValues := make([]any, newSize)
	n := newSize
	if len(a.values) < n {
		n = len(a.values)
	}
	copy(newValues, a.values[:n])
	for i := n; i < newSize; i++ {
		newValues[i] = zeroValueFor(a.ValueType)
	}
	a.values = newValues
	a.count = newSize
	a.dirty = true
	a.compressedBytes = nil
}

// Append grows the array by one and sets the new last element to v.
func (a *Array) Append(v any) {
	_ = a.materialize()
	a.values = append(a.values, v)
	a.count = len(a.values)
	a.dirty = true
	a.compressedBytes = nil
}

// Equal compares element-wise; ValueType and length must match first.
func (a *Array) Equal(other *Array) bool {
	if a == nil || other == nil {
		return a == other
	}
	if a.ValueType != other.ValueType || a.Len() != other.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		av, _ := a.Get(i)
		bv, _ := other.Get(i)
		if !propertyValuesEqual(a.ValueType, av, bv) {
			return false
		}
	}
	return true
}

func propertyValuesEqual(t Type, a, b any) bool {
	pa := &Property{Type: t, Value: a}
	pb := &Property{Type: t, Value: b}
	return pa.Equal(pb)
}

// Clone deep-copies the array and, for container element kinds, every
// descendant element. A clone mirrors whichever lazy state a is currently
// in rather than forcing a decode: a Compressed-only clone stays
// Compressed-only, copying the compressed bytes rather than re-deriving
// them, matching PersistentUncompressedData's clone contract.
func (a *Array) Clone() *Array {
	if a == nil {
		return nil
	}
	out := &Array{
		ValueType:                  a.ValueType,
		Compressed:                 a.Compressed,
		PersistentUncompressedData: a.PersistentUncompressedData,
		count:                      a.count,
		uncompressedSize:           a.uncompressedSize,
		dirty:                      a.dirty,
	}
	if a.compressedBytes != nil {
		out.compressedBytes = append([]byte(nil), a.compressedBytes...)
	}
	if a.values != nil {
		out.values = make([]any, len(a.values))
		for i, v := range a.values {
			out.values[i] = (&Property{Type: a.ValueType, Value: v}).Clone().Value
		}
	}
	return out
}

// Merge appends other's elements to a, provided both arrays share a value
// type; a mismatched value type is a silent no-op, matching the
// original's Array::Merge (which only checks valueType equality and
// returns early otherwise).
func (a *Array) Merge(other *Array, flags MergeFlags) {
	if a.ValueType != other.ValueType {
		return
	}
	offset := a.Len()
	a.Resize(offset + other.Len())
	for i := 0; i < other.Len(); i++ {
		v, _ := other.Get(i)
		if flags.has(MergeFlagsDeepCopy) {
			v = (&Property{Type: other.ValueType, Value: v}).Clone().Value
		}
		a.values[offset+i] = v
	}
}
