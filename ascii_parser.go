package udm

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// asciiParser builds a typed Element tree from a token stream, the
// recursive-descent counterpart to the original's AsciiReader. Grammar,
// per Element block:
//
//	{
//	    <type> <name> <value>
//	    element <name>
//	    {
//	        ...
//	    }
//	}
//
// where <value> is a bare word, a quoted string, or a bracketed list for
// vector/matrix/array/struct kinds.
type asciiParser struct {
	lex  *asciiLexer
	peek *token
}

func newAsciiParser(data []byte) *asciiParser {
	return &asciiParser{lex: newAsciiLexer(data)}
}

func (p *asciiParser) nextToken() (token, error) {
	if p.peek != nil {
		t := *p.peek
		p.peek = nil
		return t, nil
	}
	return p.lex.next()
}

func (p *asciiParser) peekToken() (token, error) {
	if p.peek == nil {
		t, err := p.lex.next()
		if err != nil {
			return token{}, err
		}
		p.peek = &t
	}
	return *p.peek, nil
}

func (p *asciiParser) expect(kind tokenKind, what string) (token, error) {
	t, err := p.nextToken()
	if err != nil {
		return token{}, err
	}
	if t.Kind != kind {
		return token{}, &Error{Kind: ErrKindAsciiSyntax, Msg: "expected " + what, Line: t.Line, Column: t.Column}
	}
	return t, nil
}

// ParseAscii parses a complete ASCII document (a single top-level
// element block) into an Element tree.
func ParseAscii(data []byte) (*Element, error) {
	p := newAsciiParser(data)
	if _, err := p.expect(tokLBrace, "'{' to begin document"); err != nil {
		return nil, err
	}
	el, err := p.parseBlockBody()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRBrace, "'}' to close document"); err != nil {
		return nil, err
	}
	return el, nil
}

func (p *asciiParser) parseBlockBody() (*Element, error) {
	el := NewElement()
	for {
		next, err := p.peekToken()
		if err != nil {
			return nil, err
		}
		if next.Kind == tokRBrace || next.Kind == tokEOF {
			return el, nil
		}
		typeTok, err := p.nextToken()
		if err != nil {
			return nil, err
		}
		if typeTok.Kind != tokWord {
			return nil, &Error{Kind: ErrKindAsciiSyntax, Msg: "expected a type name", Line: typeTok.Line, Column: typeTok.Column}
		}
		t := AsciiTypeToEnum(typeTok.Text)
		nameTok, err := p.expect(tokWord, "a property name")
		if err != nil {
			return nil, err
		}

		if t == Element {
			if _, err := p.expect(tokLBrace, "'{' to begin element body"); err != nil {
				return nil, err
			}
			child, err := p.parseBlockBody()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(tokRBrace, "'}' to close element body"); err != nil {
				return nil, err
			}
			el.SetChild(nameTok.Text, &Property{Type: Element, Value: child})
			continue
		}

		if IsArray(t) {
			arr, err := p.parseArray(t == ArrayLz4)
			if err != nil {
				return nil, err
			}
			el.SetChild(nameTok.Text, &Property{Type: t, Value: arr})
			continue
		}

		if t == Struct {
			sv, err := p.parseStruct()
			if err != nil {
				return nil, err
			}
			el.SetChild(nameTok.Text, &Property{Type: t, Value: sv})
			continue
		}

		val, err := p.parseScalarValue(t)
		if err != nil {
			return nil, err
		}
		el.SetChild(nameTok.Text, &Property{Type: t, Value: val})
	}
}

// parseArray reads `<elemType>[<count>] [v0, v1, ...]`.
func (p *asciiParser) parseArray(compressed bool) (*Array, error) {
	elemTypeTok, err := p.expect(tokWord, "array element type")
	if err != nil {
		return nil, err
	}
	elemType := AsciiTypeToEnum(elemTypeTok.Text)
	if _, err := p.expect(tokLBracket, "'[' to open array size"); err != nil {
		return nil, err
	}
	sizeTok, err := p.expect(tokWord, "array size")
	if err != nil {
		return nil, err
	}
	size, convErr := strconv.Atoi(sizeTok.Text)
	if convErr != nil {
		return nil, &Error{Kind: ErrKindAsciiData, Msg: "invalid array size", Line: sizeTok.Line, Column: sizeTok.Column}
	}
	if _, err := p.expect(tokRBracket, "']' to close array size"); err != nil {
		return nil, err
	}

	a := NewArray(elemType, 0)
	a.Compressed = compressed
	if _, err := p.expect(tokLBracket, "'[' to open array values"); err != nil {
		return nil, err
	}
	for i := 0; i < size; i++ {
		if i > 0 {
			if _, err := p.expect(tokComma, "',' between array values"); err != nil {
				return nil, err
			}
		}
		v, err := p.parseScalarValue(elemType)
		if err != nil {
			return nil, err
		}
		a.Append(v)
	}
	if _, err := p.expect(tokRBracket, "']' to close array values"); err != nil {
		return nil, err
	}
	return a, nil
}

// parseStruct reads `[name:type, ...] [v0, v1, ...]`: the bracketed member
// list rebuilds the StructDescription, then the bracketed value list fills
// the member values in the same order, matching asciiWriter's
// structMemberList/structValueList pairing.
func (p *asciiParser) parseStruct() (*StructValue, error) {
	if _, err := p.expect(tokLBracket, "'[' to open struct members"); err != nil {
		return nil, err
	}
	var names []string
	var types []Type
	for {
		next, err := p.peekToken()
		if err != nil {
			return nil, err
		}
		if next.Kind == tokRBracket {
			p.nextToken()
			break
		}
		if len(names) > 0 {
			if _, err := p.expect(tokComma, "',' between struct members"); err != nil {
				return nil, err
			}
		}
		memberTok, err := p.expect(tokWord, "a struct member name:type pair")
		if err != nil {
			return nil, err
		}
		memberName, typeName, ok := strings.Cut(memberTok.Text, ":")
		if !ok {
			return nil, &Error{Kind: ErrKindAsciiSyntax, Msg: "malformed struct member, expected name:type", Line: memberTok.Line, Column: memberTok.Column}
		}
		names = append(names, memberName)
		types = append(types, AsciiTypeToEnum(typeName))
	}

	desc, err := DefineStruct(names, types)
	if err != nil {
		return nil, err
	}
	sv, err := NewStructValue(desc)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokLBracket, "'[' to open struct values"); err != nil {
		return nil, err
	}
	for i, name := range names {
		if i > 0 {
			if _, err := p.expect(tokComma, "',' between struct values"); err != nil {
				return nil, err
			}
		}
		v, err := p.parseScalarValue(types[i])
		if err != nil {
			return nil, err
		}
		if err := sv.SetMember(name, v); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(tokRBracket, "']' to close struct values"); err != nil {
		return nil, err
	}
	return sv, nil
}

// parseScalarValue reads one value of kind t: a bracketed float/int list
// for vector/matrix/transform kinds (quaternion components translated
// from ASCII w-x-y-z order), base64 payloads for blob kinds, a quoted or
// bare string otherwise.
func (p *asciiParser) parseScalarValue(t Type) (any, error) {
	switch t {
	case Nil:
		// The writer always emits a placeholder token ("nil") for a
		// Nil-kind scalar even though the kind itself carries no value;
		// consume it so the stream stays in sync with the writer's output.
		if _, err := p.readWordOrString(); err != nil {
			return nil, err
		}
		return nil, nil
	case Blob:
		b, err := p.parseBase64Block()
		if err != nil {
			return nil, err
		}
		return BlobValue(b), nil
	case BlobLz4:
		if _, err := p.expect(tokLBracket, "'[' to open lz4 blob"); err != nil {
			return nil, err
		}
		sizeTok, err := p.expect(tokWord, "uncompressed size")
		if err != nil {
			return nil, err
		}
		uncompSize, _ := strconv.Atoi(sizeTok.Text)
		if _, err := p.expect(tokRBracket, "']' to close uncompressed size"); err != nil {
			return nil, err
		}
		b, err := p.parseBase64Block()
		if err != nil {
			return nil, err
		}
		return BlobLz4Value{Compressed: b, UncompressedSize: uncompSize}, nil
	case Reference:
		s, err := p.readWordOrString()
		if err != nil {
			return nil, err
		}
		return &Reference{Path: s}, nil
	case String:
		return p.readWordOrString()
	case Utf8String:
		s, err := p.readWordOrString()
		if err != nil {
			return nil, err
		}
		return Utf8StringValue(append([]byte(s), 0)), nil
	}
	if IsGeneric(t) || t == Quaternion {
		return p.parseBracketedFloats(t)
	}
	s, err := p.readWordOrString()
	if err != nil {
		return nil, err
	}
	return parseStringAs(s, t)
}

func (p *asciiParser) readWordOrString() (string, error) {
	tok, err := p.nextToken()
	if err != nil {
		return "", err
	}
	if tok.Kind != tokWord && tok.Kind != tokString {
		return "", &Error{Kind: ErrKindAsciiSyntax, Msg: "expected a value", Line: tok.Line, Column: tok.Column}
	}
	return tok.Text, nil
}

func (p *asciiParser) parseBase64Block() ([]byte, error) {
	if _, err := p.expect(tokLBracket, "'[' to open base64 data"); err != nil {
		return nil, err
	}
	tok, err := p.nextToken()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRBracket, "']' to close base64 data"); err != nil {
		return nil, err
	}
	decoded, decErr := base64.StdEncoding.DecodeString(tok.Text)
	if decErr != nil {
		return nil, &Error{Kind: ErrKindAsciiData, Msg: "invalid base64 data", Line: tok.Line, Column: tok.Column}
	}
	return decoded, nil
}

// parseBracketedFloats reads "[f0 f1 f2 ...]" and hands the joined token
// text to the same string-parsing path String->T conversion uses, so
// quaternion index translation stays in exactly one place (parseStringAs).
func (p *asciiParser) parseBracketedFloats(t Type) (any, error) {
	if _, err := p.expect(tokLBracket, "'[' to open value list"); err != nil {
		return nil, err
	}
	var words []string
	for {
		next, err := p.peekToken()
		if err != nil {
			return nil, err
		}
		if next.Kind == tokRBracket {
			p.nextToken()
			break
		}
		tok, err := p.nextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == tokWord || tok.Kind == tokString {
			words = append(words, tok.Text)
		}
	}
	return parseStringAs(strings.Join(words, " "), t)
}
