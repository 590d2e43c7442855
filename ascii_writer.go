package udm

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// asciiWriter pretty-prints an Element tree in UDM's ASCII form, the
// counterpart to asciiParser: brace-delimited blocks, one `<type> <name>
// <value>` line per property, bracket-delimited lists for array and
// generic values, tab indentation growing with nesting depth.
type asciiWriter struct {
	buf    strings.Builder
	indent int
}

// WriteAscii renders root as a complete ASCII document.
func WriteAscii(root *Element) []byte {
	w := &asciiWriter{}
	w.writeLine("{")
	w.indent++
	w.writeBlockBody(root)
	w.indent--
	w.writeLine("}")
	return []byte(w.buf.String())
}

func (w *asciiWriter) writeLine(s string) {
	w.buf.WriteString(strings.Repeat("\t", w.indent))
	w.buf.WriteString(s)
	w.buf.WriteByte('\n')
}

func (w *asciiWriter) writeBlockBody(el *Element) {
	for _, key := range el.SortedKeys() {
		w.writeProperty(key, el.Get(key))
	}
}

func (w *asciiWriter) writeProperty(name string, p *Property) {
	switch p.Type {
	case Element:
		child, _ := p.Value.(*Element)
		w.writeLine("element " + sanitizeAsciiName(name))
		w.writeLine("{")
		w.indent++
		w.writeBlockBody(child)
		w.indent--
		w.writeLine("}")
	case Array, ArrayLz4:
		a, _ := p.Value.(*Array)
		w.writeLine(p.Type.String() + " " + sanitizeAsciiName(name) + " " + a.ValueType.String() +
			"[" + strconv.Itoa(a.Len()) + "] " + w.arrayValueList(a))
	case Struct:
		sv, _ := p.Value.(*StructValue)
		w.writeLine(p.Type.String() + " " + sanitizeAsciiName(name) + " " +
			w.structMemberList(sv.Description) + " " + w.structValueList(sv))
	default:
		w.writeLine(p.Type.String() + " " + sanitizeAsciiName(name) + " " + w.scalarValueText(p.Type, p.Value))
	}
}

func (w *asciiWriter) arrayValueList(a *Array) string {
	var parts []string
	for i := 0; i < a.Len(); i++ {
		v, _ := a.Get(i)
		parts = append(parts, w.scalarValueText(a.ValueType, v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// structMemberList renders a struct's member names and types, e.g.
// "[a:int32, b:float]", so the parser can rebuild the StructDescription
// without any outside schema.
func (w *asciiWriter) structMemberList(desc *StructDescription) string {
	parts := make([]string, len(desc.Names))
	for i, n := range desc.Names {
		parts[i] = n + ":" + desc.Types[i].String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// structValueList renders a struct's decoded member values in description
// order, one scalarValueText per member.
func (w *asciiWriter) structValueList(sv *StructValue) string {
	parts := make([]string, len(sv.Description.Names))
	for i, n := range sv.Description.Names {
		v, _ := sv.Member(n)
		parts[i] = w.scalarValueText(sv.Description.Types[i], v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// scalarValueText renders one value of kind t as it appears on the right
// of a property line or inside an array's value list.
func (w *asciiWriter) scalarValueText(t Type, v any) string {
	switch t {
	case Nil:
		return "nil"
	case Blob:
		b, _ := v.(BlobValue)
		return "[" + base64.StdEncoding.EncodeToString(b) + "]"
	case BlobLz4:
		b, _ := v.(BlobLz4Value)
		return "[" + strconv.Itoa(b.UncompressedSize) + "][" + base64.StdEncoding.EncodeToString(b.Compressed) + "]"
	case Reference:
		r, _ := v.(*Reference)
		path := ""
		if r != nil {
			path = r.Path
		}
		return quoteAsciiString(path)
	case String:
		s, _ := v.(string)
		return quoteAsciiString(s)
	case Utf8String:
		b, _ := v.(Utf8StringValue)
		return quoteAsciiString(strings.TrimRight(string(b), "\x00"))
	}
	if IsGeneric(t) || t == Quaternion {
		s, err := Convert(v, t, String)
		if err != nil {
			return "[]"
		}
		text, _ := s.(string)
		return "[" + text + "]"
	}
	s, err := Convert(v, t, String)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	text, _ := s.(string)
	return quoteAsciiStringIfNeeded(text)
}

func quoteAsciiString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(s[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}

// quoteAsciiStringIfNeeded leaves plain numeric/word tokens bare (matching
// how numbers print in the original's text form) and quotes anything
// containing whitespace or structural characters.
func quoteAsciiStringIfNeeded(s string) string {
	if s == "" {
		return `""`
	}
	for i := 0; i < len(s); i++ {
		if isWordBreak(s[i]) {
			return quoteAsciiString(s)
		}
	}
	return s
}

// sanitizeAsciiName returns name unchanged: property names are always
// bare words (the grammar reads them with expect(tokWord, ...), which
// cannot consume a quoted string), so a name containing whitespace or a
// structural character is a caller bug rather than something to escape
// here.
func sanitizeAsciiName(name string) string {
	return name
}
