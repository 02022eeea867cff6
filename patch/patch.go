// Package patch applies RFC 6902 JSON patches and RFC 7386 merge patches
// to value trees. Patches run over the interchange JSON form of the
// documents, so string escaping is handled by the marshal/parse bridge
// rather than the patch engine.
//
// The bridge renders control bytes below 0x20 (other than newline,
// carriage return, and tab) as unicode escapes, which the parser rejects.
// Strings containing such bytes do not survive the round trip.
package patch

import (
	"fmt"

	"github.com/minijson-format/go-minijson/eval"
	"github.com/minijson-format/go-minijson/ir"
	"github.com/minijson-format/go-minijson/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// Apply applies patchDoc, an RFC 6902 operation array, to doc and returns
// the patched tree. Neither input is modified.
func Apply(doc, patchDoc *ir.Value) (*ir.Value, error) {
	if patchDoc.Type != ir.ArrayType {
		return nil, fmt.Errorf("patch document is %s, want Array", patchDoc.Type)
	}
	pd, err := eval.MarshalJSON(patchDoc)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	d, err := eval.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	return parse.Parse(out)
}

// Merge applies mergeDoc as an RFC 7386 merge patch to doc.
func Merge(doc, mergeDoc *ir.Value) (*ir.Value, error) {
	d, err := eval.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	md, err := eval.MarshalJSON(mergeDoc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, md)
	if err != nil {
		return nil, fmt.Errorf("applying merge patch: %w", err)
	}
	return parse.Parse(out)
}
