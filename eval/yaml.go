package eval

import (
	"github.com/minijson-format/go-minijson/ir"

	"github.com/goccy/go-yaml"
)

// MarshalYAML renders node as YAML.
func MarshalYAML(node *ir.Value) ([]byte, error) {
	return yaml.Marshal(ToAny(node))
}

// UnmarshalYAML parses YAML into a value tree. Numbers collapse to
// float64 on the way in, like everywhere else in the model.
func UnmarshalYAML(d []byte) (*ir.Value, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return FromAny(v)
}
