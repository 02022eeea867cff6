package encode

import (
	"bytes"

	"github.com/minijson-format/go-minijson/ir"
)

func MustString(node *ir.Value) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
