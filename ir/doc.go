// Package ir provides the in-memory representation for JSON documents.
//
// # Overview
//
// All documents (whether parsed from text or created programmatically) are
// represented as trees of ir.Value. A Value is a tagged union over the JSON
// kinds plus an Invalid kind meaning "no value": the zero Value is invalid,
// and total lookup operations return an invalid sentinel on a miss instead
// of failing.
//
// # Value Types
//
// The Type field indicates the value's kind:
//
//   - InvalidType: no value (lookup miss, zero Value)
//   - NullType: null
//   - BoolType: boolean
//   - NumberType: 64-bit IEEE float (JSON has no integer subtype)
//   - StringType: string, stored as written
//   - ArrayType: ordered list of values
//   - ObjectType: key-value pairs with unique keys sorted by key
//
// Object members are kept sorted by key rather than in insertion order.
// This makes encoding and iteration order reproducible and key lookup
// logarithmic; inserting a duplicate key keeps the first value.
//
// # Creating Values
//
// Use constructor functions to create values:
//
//	v := ir.FromString("hello")
//	num := ir.FromFloat(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Value{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Value{
//	    ir.FromFloat(1),
//	    ir.FromFloat(2),
//	})
//
// # Reading Values
//
// Three accessor families cover the reading cases:
//
//   - Is<Kind>() reports whether the tag matches.
//   - As<Kind>() returns the payload and panics on a tag mismatch; for call
//     sites which already know the kind.
//   - To<Kind>() returns (payload, ok) and is the safe form for documents
//     of uncertain shape.
//
// Key and At look up object members and array elements. They are total:
// any miss (wrong kind, absent key, out of range index) returns an invalid
// sentinel, so chains like doc.Key("a").Key("b").At(0) are always safe.
//
// # Thread Safety
//
// Value trees are not synchronized. Trees returned by parsing are
// independent, so distinct documents may be used from distinct goroutines
// without coordination.
//
// # Related Packages
//
//   - github.com/minijson-format/go-minijson/parse - Parses text into values
//   - github.com/minijson-format/go-minijson/encode - Encodes values to text
//   - github.com/minijson-format/go-minijson/eval - Bridges values and Go any
package ir
