package eval

import (
	"fmt"

	"github.com/minijson-format/go-minijson/ir"

	"github.com/expr-lang/expr"
)

// Query compiles and runs an expression against doc. The expression sees
// the document under the identifier "doc" (objects as maps, arrays as
// slices, numbers as float64), plus any entries of env. The result is
// converted back into a value tree.
//
//	eval.Query(doc, `doc.users[0].name`, nil)
//	eval.Query(doc, `filter(doc.items, # > lim)`, map[string]any{"lim": 2.0})
func Query(doc *ir.Value, src string, env map[string]any) (*ir.Value, error) {
	exprEnv := map[string]any{"doc": ToAny(doc)}
	for k, v := range env {
		if k == "doc" {
			continue
		}
		exprEnv[k] = v
	}
	prg, err := expr.Compile(src, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, err)
	}
	res, err := expr.Run(prg, exprEnv)
	if err != nil {
		return nil, fmt.Errorf("running %q: %w", src, err)
	}
	return FromAny(res)
}

func exprOpts(doc *ir.Value) []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			key := params[0].(string)
			res := doc.Key(key)
			if !res.IsValid() {
				return nil, nil
			}
			return ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("size", func(params ...any) (any, error) {
			return doc.Size(), nil
		},
			new(func() int)),
	}
}
