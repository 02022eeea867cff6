// Package parse parses JSON text into IR values.
package parse

import (
	"strconv"

	"github.com/minijson-format/go-minijson/ir"
)

// escapes maps the character after a backslash to its replacement byte.
// \u is handled separately (rejected), everything else is invalid.
var escapes = map[byte]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Parse parses a complete JSON document from d. On failure it returns a
// *Error whose Cursor is the byte offset where the problem was detected;
// Context renders a caret snippet from it. The parse is all or nothing:
// the first error anywhere abandons the whole document.
func Parse(d []byte, opts ...ParseOption) (*ir.Value, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{d: d, opts: pOpts}
	return p.value()
}

// ParseString is Parse for string input.
func ParseString(s string, opts ...ParseOption) (*ir.Value, error) {
	return Parse([]byte(s), opts...)
}

// parser holds the input buffer and a forward-only cursor shared by the
// mutually recursive grammar rules. The cursor never rewinds; an error
// return abandons the parse instead.
type parser struct {
	d    []byte
	cur  int
	opts *parseOpts
}

func (p *parser) value() (*ir.Value, error) {
	p.ws()
	if p.cur >= len(p.d) {
		return nil, errAt(p.cur, ErrExpectedValue)
	}
	switch p.d[p.cur] {
	case '{':
		p.cur++
		return p.object()
	case '[':
		p.cur++
		return p.array()
	case '"':
		s, err := p.string_()
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	default:
		return p.literal()
	}
}

// literal scans a maximal run of value characters and classifies it as
// null, true, false, or a number. One wide scan keeps the keyword and
// number cases on a single path.
func (p *parser) literal() (*ir.Value, error) {
	start := p.cur
	for p.cur < len(p.d) && isValueChar(p.d[p.cur]) {
		p.cur++
	}
	tok := string(p.d[start:p.cur])
	switch tok {
	case "":
		return nil, errAt(start, ErrEmptyValue)
	case "null":
		return ir.Null(), nil
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	}
	// the whole token must convert; ParseFloat rejects trailing garbage
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil, errAt(start, ErrInvalidNumber)
	}
	return ir.FromFloat(f), nil
}

// string_ consumes a quoted string, cursor on the opening quote. The escape
// selector is read from the source buffer at the post-backslash cursor.
func (p *parser) string_() (string, error) {
	p.cur++
	var str []byte
	for p.cur < len(p.d) {
		switch c := p.d[p.cur]; c {
		case '\\':
			p.cur++
			if p.cur >= len(p.d) {
				return "", errAt(p.cur, ErrIncompleteEscape)
			}
			esc := p.d[p.cur]
			if esc == 'u' {
				return "", errAt(p.cur, ErrUnicodeEscape)
			}
			rep, ok := escapes[esc]
			if !ok {
				return "", errAt(p.cur, ErrInvalidEscape)
			}
			str = append(str, rep)
			p.cur++
		case '"':
			p.cur++
			return string(str), nil
		default:
			str = append(str, c)
			p.cur++
		}
	}
	return "", errAt(p.cur, ErrUnterminatedString)
}

func (p *parser) array() (*ir.Value, error) {
	arr := &ir.Value{Type: ir.ArrayType}
	for {
		p.ws()
		if p.cur >= len(p.d) {
			return nil, errAt(p.cur, ErrUnterminatedArray)
		}
		if p.d[p.cur] == ']' {
			p.cur++
			return arr, nil
		}
		elt, err := p.value()
		if err != nil {
			return nil, err
		}
		arr.Values = append(arr.Values, elt)

		sep := p.separator()
		if p.cur < len(p.d) && p.d[p.cur] == ']' {
			if sep && p.opts.strict {
				return nil, errAt(p.cur, ErrExpectedValue)
			}
			p.cur++
			return arr, nil
		}
		if !sep {
			return nil, errAt(p.cur, ErrExpectedSeparator)
		}
	}
}

func (p *parser) object() (*ir.Value, error) {
	obj := ir.NewObject()
	for {
		p.ws()
		if p.cur >= len(p.d) {
			return nil, errAt(p.cur, ErrUnterminatedObject)
		}
		if p.d[p.cur] == '}' {
			p.cur++
			return obj, nil
		}

		if p.d[p.cur] != '"' {
			return nil, errAt(p.cur, ErrExpectedKey)
		}
		key, err := p.string_()
		if err != nil {
			return nil, err
		}

		p.ws()
		if p.cur >= len(p.d) || p.d[p.cur] != ':' {
			return nil, errAt(p.cur, ErrExpectedColon)
		}
		p.cur++

		p.ws()
		if p.cur >= len(p.d) {
			return nil, errAt(p.cur, ErrExpectedValue)
		}
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		// duplicate keys keep the first value
		obj.Insert(key, val)

		sep := p.separator()
		if p.cur < len(p.d) && p.d[p.cur] == '}' {
			if sep && p.opts.strict {
				return nil, errAt(p.cur, ErrExpectedKey)
			}
			p.cur++
			return obj, nil
		}
		if !sep {
			return nil, errAt(p.cur, ErrExpectedSeparator)
		}
	}
}

// separator consumes surrounding whitespace and at most one comma,
// reporting whether a comma was seen. The closing bracket check in the
// container rules runs after this, which is what permits one trailing
// comma before a closer unless Strict is set.
func (p *parser) separator() bool {
	p.ws()
	if p.cur < len(p.d) && p.d[p.cur] == ',' {
		p.cur++
		p.ws()
		return true
	}
	return false
}

func (p *parser) ws() {
	for p.cur < len(p.d) && isWhitespace(p.d[p.cur]) {
		p.cur++
	}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

func isValueChar(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c == '.' || c == '+' || c == '-':
		return true
	}
	return false
}
