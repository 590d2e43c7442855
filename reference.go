package udm

// Reference is a path string bound to another Property in the same
// document, resolved lazily after the whole tree is available (a
// Reference read mid-parse may name a sibling that hasn't been parsed
// yet). Property stays nil until Resolve succeeds.
type Reference struct {
	Path     string
	Property *Property
}

// Resolve walks root using Path and caches the result, returning it. A
// Path starting with "/" is treated as absolute from root; anything else
// is resolved relative to base (the Element the Reference itself lives
// under), matching how relative .reg-style key references resolve
// against their containing key.
func (r *Reference) Resolve(root *Element, base *Element) *Property {
	if r == nil || r.Path == "" {
		return nil
	}
	path := r.Path
	target := root
	if len(path) > 0 && path[0] == '/' {
		path = path[1:]
	} else if base != nil {
		target = base
	}
	prop := target.Find(path)
	r.Property = prop
	return prop
}
