package udm

// MergeElements folds src's children into dst according to flags. The
// recursive work itself lives on Element.Merge/Array.Merge so that
// sub-elements merge the same way whether reached from here or from a
// nested call.
func MergeElements(dst, src *Element, flags MergeFlags) {
	dst.Merge(src, flags)
}

// ResolveReferences walks every Reference-kind property reachable from
// root and resolves it against root, following the convention that a
// path beginning with "/" is absolute and anything else is resolved
// relative to the Element the Reference itself lives under.
func ResolveReferences(root *Element) {
	resolveReferencesIn(root, root)
}

func resolveReferencesIn(root, el *Element) {
	if el == nil {
		return
	}
	for _, key := range el.Keys() {
		prop := el.Get(key)
		switch prop.Type {
		case Reference:
			r, _ := prop.Value.(*Reference)
			r.Resolve(root, el)
		case Element:
			child, _ := prop.Value.(*Element)
			resolveReferencesIn(root, child)
		case Array, ArrayLz4:
			a, _ := prop.Value.(*Array)
			if a.ValueType != Element {
				continue
			}
			for i := 0; i < a.Len(); i++ {
				v, _ := a.Get(i)
				if child, ok := v.(*Element); ok {
					resolveReferencesIn(root, child)
				}
			}
		}
	}
}
