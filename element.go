package udm

import (
	"sort"
	"strings"
)

// MergeFlags controls Element.Merge and Array.Merge behavior.
type MergeFlags uint32

const (
	MergeFlagsNone              MergeFlags = 0
	MergeFlagsOverwriteExisting MergeFlags = 1 << 0
	MergeFlagsDeepCopy          MergeFlags = 1 << 1
)

func (f MergeFlags) has(flag MergeFlags) bool { return f&flag != 0 }

// Element is an ordered map of named Properties, UDM's container kind for
// everything that isn't a flat array. Child order is not significant to
// equality or hashing (hashing sorts alphabetically, see hash.go). Keys
// reports children in insertion order; the binary and ASCII writers both
// emit them alphabetically (SortedKeys).
type Element struct {
	children map[string]*Property
	order    []string
}

// NewElement returns an empty Element ready for Add/Set calls.
func NewElement() *Element {
	return &Element{children: make(map[string]*Property)}
}

// Keys returns the element's child names in insertion order.
func (e *Element) Keys() []string {
	if e == nil {
		return nil
	}
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// SortedKeys returns the element's child names sorted alphabetically,
// the order hash.go's content hash visits children in.
func (e *Element) SortedKeys() []string {
	keys := e.Keys()
	sort.Strings(keys)
	return keys
}

// Len returns the number of direct children.
func (e *Element) Len() int {
	if e == nil {
		return 0
	}
	return len(e.order)
}

// Get returns the direct child named name, or nil if absent.
func (e *Element) Get(name string) *Property {
	if e == nil {
		return nil
	}
	return e.children[name]
}

// SetChild inserts or replaces the direct child named name. Unlike Add/Find,
// name is a single key, not a path: any '/' in it would otherwise collide
// with path-segment parsing, so it is sanitized first.
func (e *Element) SetChild(name string, prop *Property) {
	name = sanitizeKeyName(name)
	if _, exists := e.children[name]; !exists {
		e.order = append(e.order, name)
	}
	e.children[name] = prop
}

// sanitizeKeyName rewrites a single key segment so it can never be
// mistaken for a path: '/' would otherwise let a programmatically built
// key silently turn into two levels of nesting the caller didn't ask for.
func sanitizeKeyName(name string) string {
	return strings.ReplaceAll(name, "/", "_")
}

// Remove deletes the direct child named name, if present.
func (e *Element) Remove(name string) {
	if _, exists := e.children[name]; !exists {
		return
	}
	delete(e.children, name)
	for i, k := range e.order {
		if k == name {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// Add walks a slash-separated path, creating intermediate Elements as
// needed, and returns the Property at the final path segment, creating it
// as kind t if it doesn't exist or exists with a different kind.
func (e *Element) Add(path string, t Type) *Property {
	name, rest, isLast := splitPathSegment(path)
	if name == "" {
		return nil
	}
	existing, ok := e.children[name]
	if isLast {
		if ok && existing.Type != t {
			e.Remove(name)
			ok = false
		}
		if !ok {
			existing = NewProperty(t)
			e.SetChild(name, existing)
		}
		return existing
	}
	if !ok || existing.Type != Element {
		existing = NewProperty(Element)
		e.SetChild(name, existing)
	}
	child, _ := existing.Value.(*Element)
	return child.Add(rest, t)
}

// AddArray is Add, followed by configuring the resulting Array/ArrayLz4's
// value type and, if size is non-negative, resizing it.
func (e *Element) AddArray(path string, size int, valueType Type, compressed bool) *Property {
	containerType := Array
	if compressed {
		containerType = ArrayLz4
	}
	prop := e.Add(path, containerType)
	if prop == nil {
		return nil
	}
	a, _ := prop.Value.(*Array)
	a.ValueType = valueType
	if size >= 0 {
		a.Resize(size)
	}
	return prop
}

// Find walks a slash-separated path without creating anything, returning
// nil if any segment is missing.
func (e *Element) Find(path string) *Property {
	name, rest, isLast := splitPathSegment(path)
	if name == "" {
		return nil
	}
	prop, ok := e.children[name]
	if !ok {
		return nil
	}
	if isLast {
		return prop
	}
	child, ok := prop.Value.(*Element)
	if !ok {
		return nil
	}
	return child.Find(rest)
}

func splitPathSegment(path string) (name, rest string, isLast bool) {
	idx := strings.IndexByte(path, '/')
	if idx < 0 {
		return path, "", true
	}
	return path[:idx], path[idx+1:], false
}

// Equal compares e against other the way the original's operator== does:
// every child of e must be present in other with an equal value. This is
// not symmetric in the original either (extra children on other's side
// are not checked), so this mirrors that exactly rather than "fixing" it.
func (e *Element) Equal(other *Element) bool {
	if e == nil || other == nil {
		return e == other
	}
	for name, prop := range e.children {
		otherProp, ok := other.children[name]
		if !ok || !prop.Equal(otherProp) {
			return false
		}
	}
	return true
}

// Clone deep-copies e and every descendant.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	out := NewElement()
	for _, name := range e.order {
		out.SetChild(name, e.children[name].Clone())
	}
	return out
}

// Merge folds other's children into e according to flags, recursing into
// Element and Array children that already exist with a compatible type
// and otherwise overwriting (subject to MergeFlagsOverwriteExisting) or
// skipping existing keys.
func (e *Element) Merge(other *Element, flags MergeFlags) {
	for _, name := range other.order {
		prop := other.children[name]
		if prop.Type != Element && !IsArray(prop.Type) {
			if _, exists := e.children[name]; exists && !flags.has(MergeFlagsOverwriteExisting) {
				continue
			}
			e.SetChild(name, propertyForMerge(prop, flags))
			continue
		}
		existing, ok := e.children[name]
		sameContainerFamily := ok && ((prop.Type == existing.Type) ||
			(IsArray(prop.Type) && IsArray(existing.Type)))
		if !ok || !sameContainerFamily {
			if ok && !flags.has(MergeFlagsOverwriteExisting) {
				continue
			}
			e.SetChild(name, propertyForMerge(prop, flags))
			continue
		}
		if prop.Type == Element {
			a, _ := existing.Value.(*Element)
			b, _ := prop.Value.(*Element)
			a.Merge(b, flags)
			continue
		}
		a, _ := existing.Value.(*Array)
		b, _ := prop.Value.(*Array)
		a.Merge(b, flags)
	}
}

func propertyForMerge(p *Property, flags MergeFlags) *Property {
	if flags.has(MergeFlagsDeepCopy) {
		return p.Clone()
	}
	return p
}
