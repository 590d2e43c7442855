package udm

import (
	"encoding/base64"
	"encoding/json"
)

// ToJSON renders root as a one-way JSON export: Elements become objects,
// Arrays become arrays, Nil becomes null, Boolean a JSON bool, numeric
// kinds JSON numbers, Blob/BlobLz4 base64 strings (BlobLz4 of its
// compressed bytes), and every other kind is converted to its ASCII
// string form via the conversion matrix. This loses type-fidelity by
// design (JSON has no vec3/quat/struct kinds of its own) and is meant
// for tooling interop, not round-tripping.
func ToJSON(root *Element) ([]byte, error) {
	return json.MarshalIndent(elementToJSONValue(root), "", "  ")
}

func elementToJSONValue(el *Element) map[string]any {
	out := make(map[string]any, el.Len())
	for _, key := range el.Keys() {
		out[key] = propertyToJSONValue(el.Get(key))
	}
	return out
}

func propertyToJSONValue(p *Property) any {
	switch p.Type {
	case Element:
		el, _ := p.Value.(*Element)
		return elementToJSONValue(el)
	case Array, ArrayLz4:
		a, _ := p.Value.(*Array)
		out := make([]any, a.Len())
		for i := 0; i < a.Len(); i++ {
			v, _ := a.Get(i)
			out[i] = propertyToJSONValue(&Property{Type: a.ValueType, Value: v})
		}
		return out
	case Nil:
		return nil
	case Boolean:
		b, _ := p.Value.(bool)
		return b
	case String, Utf8String:
		s, err := p.To(String)
		if err != nil {
			return ""
		}
		return s
	case Blob:
		b, _ := p.Value.(BlobValue)
		return base64.StdEncoding.EncodeToString(b)
	case BlobLz4:
		b, _ := p.Value.(BlobLz4Value)
		return base64.StdEncoding.EncodeToString(b.Compressed)
	}
	var numeric float64
	if err := VisitNumeric(p.Type, p.Value, func(v any) error {
		numeric = toFloat64(v)
		return nil
	}); err == nil {
		return numeric
	}
	s, err := p.To(String)
	if err != nil {
		return nil
	}
	return s
}
