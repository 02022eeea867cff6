package ir

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Value
		want int
	}{
		{"nil both", nil, nil, 0},
		{"nil left", nil, Null(), -1},
		{"nil right", Null(), nil, 1},
		{"null null", Null(), Null(), 0},
		{"invalid < null", Invalid(), Null(), -1},
		{"null < bool", Null(), FromBool(false), -1},
		{"false < true", FromBool(false), FromBool(true), -1},
		{"numbers", FromFloat(1), FromFloat(2), -1},
		{"number eq", FromFloat(2.5), FromFloat(2.5), 0},
		{"number < string", FromFloat(99), FromString(""), -1},
		{"strings", FromString("a"), FromString("b"), -1},
		{"array prefix", FromSlice([]*Value{FromFloat(1)}),
			FromSlice([]*Value{FromFloat(1), FromFloat(2)}), -1},
		{"array elt", FromSlice([]*Value{FromFloat(2)}),
			FromSlice([]*Value{FromFloat(1), FromFloat(2)}), 1},
		{"array < object", FromSlice(nil), NewObject(), -1},
		{"object keys", FromMap(map[string]*Value{"a": Null()}),
			FromMap(map[string]*Value{"b": Null()}), -1},
		{"object values", FromMap(map[string]*Value{"a": FromFloat(1)}),
			FromMap(map[string]*Value{"a": FromFloat(2)}), -1},
		{"object eq", FromMap(map[string]*Value{"a": FromFloat(1), "b": Null()}),
			FromMap(map[string]*Value{"b": Null(), "a": FromFloat(1)}), 0},
	}
	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: Compare = %d, want %d", tt.name, got, tt.want)
		}
		if got := Compare(tt.b, tt.a); got != -tt.want {
			t.Errorf("%s (flipped): Compare = %d, want %d", tt.name, got, -tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	a := FromMap(map[string]*Value{
		"x": FromSlice([]*Value{FromFloat(1), FromString("s"), Null()}),
	})
	if !Equal(a, a.Clone()) {
		t.Error("value not equal to its clone")
	}
	if Equal(a, Null()) {
		t.Error("object equal to null")
	}
}
