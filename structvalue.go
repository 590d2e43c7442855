package udm

import "strings"

// StructDescription names and types the fixed-layout members of a Struct
// value, letting a Struct store its members packed as raw bytes instead
// of as N separate Properties.
type StructDescription struct {
	Names []string
	Types []Type
}

// DefineStruct builds a StructDescription from parallel name/type slices.
func DefineStruct(names []string, types []Type) (*StructDescription, error) {
	if len(names) != len(types) {
		return nil, &Error{Kind: ErrKindInvalidUsage, Msg: "struct member name/type count mismatch"}
	}
	return &StructDescription{Names: append([]string{}, names...), Types: append([]Type{}, types...)}, nil
}

// MemberCount returns the number of described members.
func (d *StructDescription) MemberCount() int {
	if d == nil {
		return 0
	}
	return len(d.Names)
}

// DataSizeRequirement returns the total packed byte size every member's
// SizeOf sums to, erroring if any member kind has no constant size.
func (d *StructDescription) DataSizeRequirement() (int, error) {
	total := 0
	for _, t := range d.Types {
		n, err := SizeOf(t)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// TemplateArgumentList renders the member type names joined by commas,
// e.g. "int32,vec3,float". The ASCII codec's struct header uses its own
// "[name:type, ...]" form, not this one.
func (d *StructDescription) TemplateArgumentList() string {
	parts := make([]string, len(d.Types))
	for i, t := range d.Types {
		parts[i] = t.String()
	}
	return strings.Join(parts, ",")
}

// Equal compares two descriptions member-by-member.
func (d *StructDescription) Equal(other *StructDescription) bool {
	if d == nil || other == nil {
		return d == other
	}
	if len(d.Names) != len(other.Names) {
		return false
	}
	for i := range d.Names {
		if d.Names[i] != other.Names[i] || d.Types[i] != other.Types[i] {
			return false
		}
	}
	return true
}

// memberOffset returns the byte offset of the i-th member within the
// struct's packed Data.
func (d *StructDescription) memberOffset(i int) (int, error) {
	offset := 0
	for j := 0; j < i; j++ {
		n, err := SizeOf(d.Types[j])
		if err != nil {
			return 0, err
		}
		offset += n
	}
	return offset, nil
}

// IndexOf returns the member index for name, or -1 if not described.
func (d *StructDescription) IndexOf(name string) int {
	for i, n := range d.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// StructValue is a Struct property's payload: a description plus the
// packed little-endian bytes of its members, laid out back-to-back with
// no padding (matching the original's #pragma pack(1) struct storage).
type StructValue struct {
	Description *StructDescription
	Data        []byte
}

// NewStructValue allocates a zero-filled StructValue matching desc's size
// requirement.
func NewStructValue(desc *StructDescription) (*StructValue, error) {
	size, err := desc.DataSizeRequirement()
	if err != nil {
		return nil, err
	}
	return &StructValue{Description: desc, Data: make([]byte, size)}, nil
}

// Member decodes the named member's value from the packed byte buffer.
func (s *StructValue) Member(name string) (any, error) {
	idx := s.Description.IndexOf(name)
	if idx < 0 {
		return nil, &Error{Kind: ErrKindInvalidUsage, Msg: "unknown struct member: " + name}
	}
	offset, err := s.Description.memberOffset(idx)
	if err != nil {
		return nil, err
	}
	t := s.Description.Types[idx]
	size, err := SizeOf(t)
	if err != nil {
		return nil, err
	}
	if offset+size > len(s.Data) {
		return nil, ErrOutOfBounds
	}
	return decodeTrivialValue(t, s.Data[offset:offset+size])
}

// SetMember encodes v into the named member's byte range.
func (s *StructValue) SetMember(name string, v any) error {
	idx := s.Description.IndexOf(name)
	if idx < 0 {
		return &Error{Kind: ErrKindInvalidUsage, Msg: "unknown struct member: " + name}
	}
	offset, err := s.Description.memberOffset(idx)
	if err != nil {
		return err
	}
	t := s.Description.Types[idx]
	encoded, err := encodeTrivialValue(t, v)
	if err != nil {
		return err
	}
	if offset+len(encoded) > len(s.Data) {
		return ErrOutOfBounds
	}
	copy(s.Data[offset:offset+len(encoded)], encoded)
	return nil
}

// Equal compares the description and packed bytes.
func (s *StructValue) Equal(other *StructValue) bool {
	if s == nil || other == nil {
		return s == other
	}
	if !s.Description.Equal(other.Description) {
		return false
	}
	if len(s.Data) != len(other.Data) {
		return false
	}
	for i := range s.Data {
		if s.Data[i] != other.Data[i] {
			return false
		}
	}
	return true
}

// Clone deep-copies the struct value.
func (s *StructValue) Clone() *StructValue {
	if s == nil {
		return nil
	}
	desc := &StructDescription{Names: append([]string{}, s.Description.Names...), Types: append([]Type{}, s.Description.Types...)}
	data := append([]byte{}, s.Data...)
	return &StructValue{Description: desc, Data: data}
}
