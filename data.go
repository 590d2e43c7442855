package udm

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pragma-engine/udm/internal/mmapfile"
	"github.com/pragma-engine/udm/internal/wire"
)

// Data is the top-level document envelope: a root Element plus whatever
// backing storage it was opened from. Create starts an empty in-memory
// document; Load and Open both read an existing one and decode the whole
// tree up front. They differ only in how the bytes are obtained: Load
// reads the file into memory, Open memory-maps it. Neither defers decoding
// until a property is accessed.
type Data struct {
	root   *Element
	path   string
	raw    []byte // binary bytes backing LoadProperty's skip-scan, when available
	closer func() error
}

// Create starts a new, empty document.
func Create() *Data {
	return &Data{root: NewElement()}
}

// Root returns the document's root Element.
func (d *Data) Root() *Element {
	return d.root
}

// Load reads path fully into memory, sniffs its form, fully decodes it
// into a Property tree, and resolves its References.
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: ErrKindFile, Msg: "failed to read " + path, Err: err}
	}
	root, isBinary, err := decodeDocument(raw)
	if err != nil {
		return nil, err
	}
	ResolveReferences(root)
	d := &Data{root: root, path: path}
	if isBinary {
		d.raw = raw
	}
	return d, nil
}

// Open memory-maps path read-only, decodes the whole tree, and resolves
// its References, keeping the mapped bytes alive so LoadProperty can
// skip-scan them afterward without re-reading the file. Close must be
// called to release the mapping.
func Open(path string) (*Data, error) {
	raw, closer, err := mmapfile.Map(path)
	if err != nil {
		return nil, &Error{Kind: ErrKindFile, Msg: "failed to open " + path, Err: err}
	}
	root, isBinary, err := decodeDocument(raw)
	if err != nil {
		if closer != nil {
			_ = closer()
		}
		return nil, err
	}
	ResolveReferences(root)
	d := &Data{root: root, path: path, closer: closer}
	if isBinary {
		d.raw = raw
	}
	return d, nil
}

// Close releases any mapping Open established. It is a no-op for
// documents created with Create or Load.
func (d *Data) Close() error {
	if d.closer == nil {
		return nil
	}
	err := d.closer()
	d.closer = nil
	return err
}

// decodeDocument sniffs raw as either UDM binary or UDM ASCII and fully
// decodes it, reporting which form it was.
func decodeDocument(raw []byte) (*Element, bool, error) {
	if len(raw) >= len(wire.Magic) && string(raw[:len(wire.Magic)]) == wire.Magic {
		root, err := DecodeBinary(raw)
		return root, true, err
	}
	stripped := bytes.TrimLeft(stripUTF16LEBOM(raw), " \t\r\n")
	if len(stripped) > 0 && stripped[0] == '{' {
		root, err := ParseAscii(raw)
		return root, false, err
	}
	return nil, false, &Error{Kind: ErrKindInvalidFormat, Msg: "unrecognized UDM document: neither binary magic nor ASCII opening brace found"}
}

// LoadProperty resolves a single dot-free, slash-separated path against
// the document's binary form without decoding any sibling the path
// doesn't pass through — the skip-scan access spec.md's lazy loading
// names. It requires the document to have been opened from a binary
// source (Open, or Load of a binary file); ASCII-backed documents have
// no skip-scannable byte layout, so LoadProperty falls back to Root().Find
// for those.
func (d *Data) LoadProperty(path string) (*Property, error) {
	if d.raw == nil {
		if p := d.root.Find(path); p != nil {
			return p, nil
		}
		return nil, &Error{Kind: ErrKindPropertyLoad, Msg: "property not found: " + path}
	}
	segs := strings.Split(strings.Trim(path, "/"), "/")
	if len(segs) == 1 && segs[0] == "" {
		return &Property{Type: Element, Value: d.root}, nil
	}

	c := &binaryCursor{data: d.raw}
	if _, err := c.take(len(wire.Magic)); err != nil {
		return nil, err
	}
	if _, err := c.u32(); err != nil {
		return nil, err
	}
	tagByte, err := c.byte()
	if err != nil {
		return nil, err
	}
	if Type(tagByte) != Element {
		return nil, &Error{Kind: ErrKindInvalidFormat, Msg: "root property is not an Element"}
	}
	bodyLen, err := c.u64()
	if err != nil {
		return nil, err
	}
	body, err := c.take(int(bodyLen))
	if err != nil {
		return nil, err
	}
	return loadPropertyFromBody(&binaryCursor{data: body}, segs)
}

// loadPropertyFromBody walks one Element body's name table, decoding only
// the child that matches path[0] (recursing into it if more path segments
// remain) and skipping every other child's value without allocating it.
func loadPropertyFromBody(c *binaryCursor, path []string) (*Property, error) {
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
	for i := uint32(0); i < count; i++ {
		tagByte, err := c.byte()
		if err != nil {
			return nil, err
		}
		t := Type(tagByte)
		if names[i] != path[0] {
			if err := skipBinaryValue(c, t); err != nil {
				return nil, err
			}
			continue
		}
		if len(path) == 1 {
			v, err := decodeBinaryValue(c, t)
			if err != nil {
				return nil, err
			}
			return &Property{Type: t, Value: v}, nil
		}
		if t != Element {
			return nil, &Error{Kind: ErrKindPropertyLoad, Msg: names[i] + " is not an element, cannot descend into " + path[1]}
		}
		bodyLen, err := c.u64()
		if err != nil {
			return nil, err
		}
		body, err := c.take(int(bodyLen))
		if err != nil {
			return nil, err
		}
		return loadPropertyFromBody(&binaryCursor{data: body}, path[1:])
	}
	return nil, &Error{Kind: ErrKindPropertyLoad, Msg: "property not found: " + strings.Join(path, "/")}
}

// skipBinaryValue advances c past one value of kind t without decoding
// it into a Go value, the zero-allocation half of the skip-scan contract:
// a sibling LoadProperty doesn't need is never parsed, only stepped over
// by its declared length.
func skipBinaryValue(c *binaryCursor, t Type) error {
	switch t {
	case Nil:
		return nil
	case String, Utf8String, Reference:
		return skipLengthPrefixed(c, t == Utf8String)
	case Blob:
		n, err := c.u64()
		if err != nil {
			return err
		}
		return c.skip(int(n))
	case BlobLz4:
		compSize, err := c.u64()
		if err != nil {
			return err
		}
		if _, err := c.u64(); err != nil { // uncompressed size, unused when skipping
			return err
		}
		return c.skip(int(compSize))
	case Element:
		bodyLen, err := c.u64()
		if err != nil {
			return err
		}
		return c.skip(int(bodyLen))
	case Array, ArrayLz4:
		return skipArray(c, t == ArrayLz4)
	case Struct:
		return skipStruct(c)
	}
	size, err := SizeOf(t)
	if err != nil {
		return err
	}
	return c.skip(size)
}

// skipLengthPrefixed skips one length-prefixed byte string: a one-byte
// length, or the extended marker followed by a uint32 length, matching
// encodeBinaryBytes' framing. utf8 strings use a plain uint32 length with
// no one-byte fast path, matching encodeBinaryValue's Utf8String case.
func skipLengthPrefixed(c *binaryCursor, isUtf8 bool) error {
	if isUtf8 {
		n, err := c.u32()
		if err != nil {
			return err
		}
		return c.skip(int(n))
	}
	n, err := c.byte()
	if err != nil {
		return err
	}
	length := int(n)
	if n == wire.ExtendedStringMarker {
		ext, err := c.u32()
		if err != nil {
			return err
		}
		length = int(ext)
	}
	return c.skip(length)
}

// skipArray advances c past one Array/ArrayLz4 payload without decoding
// it. A compressed array (trivial or non-trivial value type alike) is
// framed as compSize/uncompSize/compressed-bytes regardless of value
// type — mirroring decodeArray's unified compressed branch — so the
// compressed-size skip must happen before the value-type check, not
// conditionally only for trivial kinds.
func skipArray(c *binaryCursor, compressed bool) error {
	tagByte, err := c.byte()
	if err != nil {
		return err
	}
	valueType := Type(tagByte)
	count, err := c.u32()
	if err != nil {
		return err
	}
	if compressed {
		compSize, err := c.u64()
		if err != nil {
			return err
		}
		if _, err := c.u64(); err != nil { // uncompressed size, unused when skipping
			return err
		}
		return c.skip(int(compSize))
	}
	if !IsNonTrivial(valueType) {
		elemSize, err := SizeOf(valueType)
		if err != nil {
			return err
		}
		return c.skip(elemSize * int(count))
	}
	bodyLen, err := c.u64()
	if err != nil {
		return err
	}
	return c.skip(int(bodyLen))
}

func skipStruct(c *binaryCursor) error {
	memberCount, err := c.byte()
	if err != nil {
		return err
	}
	for i := 0; i < int(memberCount); i++ {
		if err := skipLengthPrefixed(c, false); err != nil {
			return err
		}
		if _, err := c.byte(); err != nil {
			return err
		}
	}
	lenBytes, err := c.take(2)
	if err != nil {
		return err
	}
	return c.skip(int(wire.U16LE(lenBytes)))
}

// Save writes the document in UDM binary form.
func (d *Data) Save(path string) error {
	encoded, err := EncodeBinary(d.root)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return &Error{Kind: ErrKindFile, Msg: "failed to write " + path, Err: err}
	}
	return nil
}

// SaveAscii writes the document in UDM ASCII form.
func (d *Data) SaveAscii(path string) error {
	if err := os.WriteFile(path, WriteAscii(d.root), 0o644); err != nil {
		return &Error{Kind: ErrKindFile, Msg: "failed to write " + path, Err: err}
	}
	return nil
}

// WriteJSON renders the document as JSON to w, for tooling interop; see
// ToJSON for the (one-way) conversion rules.
func (d *Data) WriteJSON(w io.Writer) error {
	encoded, err := ToJSON(d.root)
	if err != nil {
		return err
	}
	_, err = w.Write(encoded)
	return err
}
