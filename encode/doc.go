// Package encode renders IR values as JSON-shaped text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Value{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromFloat(30),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// or as a string, with a chosen indent unit
//	text := encode.Dump(node, "    ", 0)
//
// Object members are rendered in the object's sorted key order, so the
// output for a given tree is canonical. Strings are written without escape
// sequences; for interchange with strict JSON consumers use
// eval.MarshalJSON instead.
//
// # Related Packages
//
//   - github.com/minijson-format/go-minijson/ir - value representation
//   - github.com/minijson-format/go-minijson/parse - parse text to values
package encode
