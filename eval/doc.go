// Package eval bridges IR value trees with Go values and runs expressions
// against parsed documents.
//
// ToAny/FromAny convert between *ir.Value and the any-shaped form used by
// encoding/json (maps, slices, float64, string, bool, nil). MarshalJSON and
// the YAML functions build on that conversion; Query evaluates an
// expr-lang expression with the document bound to "doc".
package eval
