package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/minijson-format/go-minijson/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent string
	depth  int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes the canonical text rendering of node to w. Containers are
// rendered one element per line with the indent unit repeated per nesting
// level; object members appear in the object's sorted key order.
func Encode(node *ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: "  "}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

// Dump renders node with the given indent unit, starting at depth
// indentLevel. The node must be valid; Dump panics on an invalid value the
// way the As accessors do.
func Dump(node *ir.Value, indent string, indentLevel int) string {
	var sb strings.Builder
	if err := Encode(node, &sb, EncodeIndent(indent), Depth(indentLevel)); err != nil {
		panic(err)
	}
	return sb.String()
}

func encode(node *ir.Value, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeToken(w, es, ir.NullType, ValueColor, "null")
	case ir.BoolType:
		if node.Bool {
			return writeToken(w, es, ir.BoolType, ValueColor, "true")
		}
		return writeToken(w, es, ir.BoolType, ValueColor, "false")
	case ir.NumberType:
		return writeToken(w, es, ir.NumberType, ValueColor,
			strconv.FormatFloat(node.Number, 'g', -1, 64))
	case ir.StringType:
		// TODO: escape quote, backslash and control characters; until then
		// strings containing them do not round trip through Parse
		return writeToken(w, es, ir.StringType, ValueColor, `"`+node.String+`"`)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	default:
		return fmt.Errorf("%w: cannot encode %s value", ErrEncoding, node.Type)
	}
}

func encodeArray(node *ir.Value, w io.Writer, es *EncState) error {
	indentStr := strings.Repeat(es.indent, es.depth)
	if err := writeToken(w, es, ir.ArrayType, SepColor, "["); err != nil {
		return err
	}
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	n := len(node.Values)
	for i, elt := range node.Values {
		if err := writeString(w, indentStr+es.indent); err != nil {
			return err
		}
		es.depth++
		err := encode(elt, w, es)
		es.depth--
		if err != nil {
			return err
		}
		if i < n-1 {
			if err := writeToken(w, es, ir.ArrayType, SepColor, ","); err != nil {
				return err
			}
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	if err := writeString(w, indentStr); err != nil {
		return err
	}
	return writeToken(w, es, ir.ArrayType, SepColor, "]")
}

func encodeObject(node *ir.Value, w io.Writer, es *EncState) error {
	indentStr := strings.Repeat(es.indent, es.depth)
	if err := writeToken(w, es, ir.ObjectType, SepColor, "{"); err != nil {
		return err
	}
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	n := len(node.Fields)
	for i, key := range node.Fields {
		if err := writeString(w, indentStr+es.indent); err != nil {
			return err
		}
		if err := writeToken(w, es, ir.ObjectType, FieldColor, `"`+key+`"`); err != nil {
			return err
		}
		if err := writeToken(w, es, ir.ObjectType, SepColor, ":"); err != nil {
			return err
		}
		if err := writeString(w, " "); err != nil {
			return err
		}
		es.depth++
		err := encode(node.Values[i], w, es)
		es.depth--
		if err != nil {
			return err
		}
		if i < n-1 {
			if err := writeToken(w, es, ir.ObjectType, SepColor, ","); err != nil {
				return err
			}
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	if err := writeString(w, indentStr); err != nil {
		return err
	}
	return writeToken(w, es, ir.ObjectType, SepColor, "}")
}

func writeToken(w io.Writer, es *EncState, t ir.Type, a ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
