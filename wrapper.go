package udm

// PropertyWrapper is a thin handle over either a standalone Property or
// one element of an Array, giving both the same read/write/convert API
// without the caller needing to branch on which it has.
type PropertyWrapper struct {
	prop       *Property
	owningArr  *Array
	arrayIndex int // -1 when not an array element
}

// WrapProperty wraps a standalone Property.
func WrapProperty(p *Property) PropertyWrapper {
	return PropertyWrapper{prop: p, arrayIndex: -1}
}

// WrapArrayElement wraps element idx of array a.
func WrapArrayElement(a *Array, idx int) PropertyWrapper {
	return PropertyWrapper{owningArr: a, arrayIndex: idx}
}

// Valid reports whether the wrapper refers to an existing property or
// in-bounds array element.
func (w PropertyWrapper) Valid() bool {
	if w.owningArr != nil {
		return w.arrayIndex >= 0 && w.arrayIndex < w.owningArr.Len()
	}
	return w.prop != nil
}

// IsArrayItem reports whether this wrapper addresses an Array element
// rather than a standalone Property.
func (w PropertyWrapper) IsArrayItem() bool { return w.owningArr != nil }

// GetOwningArray returns the Array this wrapper indexes into, or nil.
func (w PropertyWrapper) GetOwningArray() *Array { return w.owningArr }

// Type returns the wrapped value's kind, or Invalid if the wrapper is
// unbound.
func (w PropertyWrapper) Type() Type {
	if w.owningArr != nil {
		if !w.Valid() {
			return Invalid
		}
		return w.owningArr.ValueType
	}
	if w.prop == nil {
		return Invalid
	}
	return w.prop.Type
}

// Value returns the raw boxed value, or nil if unbound/out of range.
func (w PropertyWrapper) Value() any {
	if w.owningArr != nil {
		v, err := w.owningArr.Get(w.arrayIndex)
		if err != nil {
			return nil
		}
		return v
	}
	if w.prop == nil {
		return nil
	}
	return w.prop.Value
}

// SetValue overwrites the wrapped value in place.
func (w PropertyWrapper) SetValue(v any) error {
	if w.owningArr != nil {
		return w.owningArr.Set(w.arrayIndex, v)
	}
	if w.prop == nil {
		return ErrTypeMismatch
	}
	w.prop.Value = v
	return nil
}

// Property returns the underlying *Property for a standalone wrapper, or
// nil for an array-element wrapper (array elements are not individually
// boxed as Properties, matching the original's GetValuePtr-based access).
func (w PropertyWrapper) Property() *Property { return w.prop }

// ToValue converts the wrapped value to T's corresponding Type and
// type-asserts the result, returning def if the wrapper is unbound, the
// kinds aren't convertible, or the assertion fails.
func ToValue[T any](w PropertyWrapper, toType Type, def T) T {
	if !w.Valid() {
		return def
	}
	converted, err := Convert(w.Value(), w.Type(), toType)
	if err != nil {
		return def
	}
	if typed, ok := converted.(T); ok {
		return typed
	}
	return def
}

// LinkedPropertyWrapper extends PropertyWrapper with the root and path it
// was resolved from, so it can report the slash-separated path back to
// callers (GetPath). It only wraps a Property that already exists in the
// tree; it does not create missing properties or load them from disk.
type LinkedPropertyWrapper struct {
	PropertyWrapper
	root *Element
	path string
}

// LinkPath returns a LinkedPropertyWrapper bound to root and the property
// found at path; it creates nothing, so the wrapper is invalid when no
// property exists there.
func LinkPath(root *Element, path string) LinkedPropertyWrapper {
	prop := root.Find(path)
	return LinkedPropertyWrapper{PropertyWrapper: WrapProperty(prop), root: root, path: path}
}

// GetPath returns the slash-separated path this wrapper was resolved from.
func (l LinkedPropertyWrapper) GetPath() string { return l.path }

// Index descends into an array-typed wrapper at idx, returning an
// invalid wrapper if the current value isn't an array.
func (l LinkedPropertyWrapper) Index(idx int) LinkedPropertyWrapper {
	if l.prop == nil || !IsArray(l.prop.Type) {
		return LinkedPropertyWrapper{}
	}
	a, _ := l.prop.Value.(*Array)
	return LinkedPropertyWrapper{
		PropertyWrapper: WrapArrayElement(a, idx),
		root:            l.root,
		path:            l.path,
	}
}

// Child descends into an element-typed wrapper by name, creating nothing.
func (l LinkedPropertyWrapper) Child(name string) LinkedPropertyWrapper {
	if l.prop == nil || l.prop.Type != Element {
		return LinkedPropertyWrapper{}
	}
	el, _ := l.prop.Value.(*Element)
	child := el.Get(name)
	newPath := name
	if l.path != "" {
		newPath = l.path + "/" + name
	}
	return LinkedPropertyWrapper{PropertyWrapper: WrapProperty(child), root: l.root, path: newPath}
}
