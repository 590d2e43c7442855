package udm

import (
	"encoding/binary"

	"github.com/pragma-engine/udm/internal/murmur3"
)

// Hash is a 128-bit stable content digest, reinterpretable as four
// little-endian uint32 lanes for hash_combine.
type Hash [16]byte

const murmurSeed = 195574

func murmurHash(data []byte) Hash {
	h1, h2 := murmur3.Sum128(data, murmurSeed)
	var h Hash
	binary.LittleEndian.PutUint64(h[0:8], h1)
	binary.LittleEndian.PutUint64(h[8:16], h2)
	return h
}

// combine folds h into seed in place using the golden-ratio hash_combine
// rule, applied independently across the hash's four 32-bit lanes.
func combine(seed *Hash, h Hash) {
	for i := 0; i < 4; i++ {
		off := i * 4
		s := binary.LittleEndian.Uint32(seed[off : off+4])
		hh := binary.LittleEndian.Uint32(h[off : off+4])
		s ^= hh + 0x9e3779b9 + (s << 6) + (s >> 2)
		binary.LittleEndian.PutUint32(seed[off:off+4], s)
	}
}

// CalcHash computes prop's stable content hash: a per-kind digest for
// trivial values, and a recursive, combine-folded digest for containers.
// Permutation of Element children never changes the result (children are
// visited in sorted key order); ArrayLz4 hashes its compressed bytes, not
// the decompressed elements, a deliberate canonical choice matching the
// reference implementation (the compressed form is what two documents
// actually agree byte-for-byte on after a round trip).
func (p *Property) CalcHash() Hash {
	if p == nil {
		return Hash{}
	}
	if IsTrivial(p.Type) && p.Type != Element && !IsArray(p.Type) {
		encoded, err := encodeTrivialValue(p.Type, p.Value)
		if err != nil {
			return Hash{}
		}
		return murmurHash(encoded)
	}
	switch p.Type {
	case String:
		s, _ := p.Value.(string)
		return murmurHash([]byte(s))
	case Utf8String:
		b, _ := p.Value.(Utf8StringValue)
		return murmurHash(b)
	case Blob:
		b, _ := p.Value.(BlobValue)
		return murmurHash(b)
	case BlobLz4:
		b, _ := p.Value.(BlobLz4Value)
		return murmurHash(b.Compressed)
	case Reference:
		r, _ := p.Value.(*Reference)
		path := ""
		if r != nil {
			path = r.Path
		}
		return murmurHash([]byte(path))
	case Element:
		el, _ := p.Value.(*Element)
		return el.CalcHash()
	case Array, ArrayLz4:
		a, _ := p.Value.(*Array)
		return a.CalcHash()
	case Struct:
		s, _ := p.Value.(*StructValue)
		return s.CalcHash()
	}
	return Hash{}
}

// CalcHash hashes e's children in alphabetical key order (not insertion
// order), so permuting an Element's children never changes its hash.
func (e *Element) CalcHash() Hash {
	var seed Hash
	if e == nil {
		return seed
	}
	for _, key := range e.SortedKeys() {
		combine(&seed, murmurHash([]byte(key)))
		combine(&seed, e.Get(key).CalcHash())
	}
	return seed
}

// CalcHash hashes a compressed ArrayLz4's compressed bytes directly, and
// hashes a plain trivial-kind Array as one pass over its flattened bytes;
// non-trivial-kind arrays fold each element's own CalcHash.
func (a *Array) CalcHash() Hash {
	if a == nil {
		return Hash{}
	}
	if a.Compressed {
		payload, err := a.compressedPayload()
		if err != nil {
			return Hash{}
		}
		return murmurHash(payload.Compressed)
	}
	if !IsNonTrivial(a.ValueType) {
		raw, err := flattenTrivialArray(a)
		if err != nil {
			return Hash{}
		}
		return murmurHash(raw)
	}
	var seed Hash
	for i := 0; i < a.Len(); i++ {
		v, _ := a.Get(i)
		combine(&seed, (&Property{Type: a.ValueType, Value: v}).CalcHash())
	}
	return seed
}

// CalcHash hashes a struct's member names, member types and packed data,
// each combine-folded in turn.
func (s *StructValue) CalcHash() Hash {
	var seed Hash
	if s == nil || s.Description == nil {
		return seed
	}
	for _, name := range s.Description.Names {
		combine(&seed, murmurHash([]byte(name)))
	}
	for _, t := range s.Description.Types {
		combine(&seed, murmurHash([]byte{byte(t)}))
	}
	combine(&seed, murmurHash(s.Data))
	return seed
}
