package eval

import (
	"bytes"
	"encoding/json"

	"github.com/minijson-format/go-minijson/ir"
	"github.com/minijson-format/go-minijson/parse"
)

// MarshalJSON renders node as RFC-valid JSON, escapes included. It is the
// interchange form of a value tree; the encode package's Dump is the
// human-facing one.
func MarshalJSON(node *ir.Value) ([]byte, error) {
	return marshalAny(ToAny(node))
}

func FromAny(v any) (*ir.Value, error) {
	// already a value tree
	if node, ok := v.(*ir.Value); ok {
		return node.Clone(), nil
	}
	if nodes, ok := v.([]*ir.Value); ok {
		return ir.FromSlice(nodes), nil
	}
	if nodeMap, ok := v.(map[string]*ir.Value); ok {
		return ir.FromMap(nodeMap), nil
	}
	d, err := marshalAny(v)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d)
}

func ToAny(node *ir.Value) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, key := range node.Fields {
			res[key] = ToAny(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.NumberType:
		return node.Number
	case ir.BoolType:
		return node.Bool
	case ir.NullType:
		return nil
	default:
		panic("invalid value has no any form")
	}
}

// marshalAny is json.Marshal without HTML escaping, so the output stays
// within the escape set the parser understands. The exception is control
// bytes below 0x20 other than newline, carriage return, and tab, which
// encoding/json must render as unicode escapes the parser rejects.
func marshalAny(v any) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
