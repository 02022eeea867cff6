package encode

import (
	"strings"
	"testing"

	"github.com/minijson-format/go-minijson/ir"
	"github.com/minijson-format/go-minijson/parse"
)

func TestDumpScalars(t *testing.T) {
	tests := []struct {
		name string
		v    *ir.Value
		want string
	}{
		{"null", ir.Null(), "null"},
		{"true", ir.FromBool(true), "true"},
		{"false", ir.FromBool(false), "false"},
		{"int-valued number", ir.FromFloat(12), "12"},
		{"fraction", ir.FromFloat(2.5), "2.5"},
		{"negative", ir.FromFloat(-0.25), "-0.25"},
		{"exponent", ir.FromFloat(1e14), "1e+14"},
		{"string", ir.FromString("hello"), `"hello"`},
		{"empty string", ir.FromString(""), `""`},
	}
	for _, tt := range tests {
		if got := Dump(tt.v, "  ", 0); got != tt.want {
			t.Errorf("%s: Dump = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDumpContainers(t *testing.T) {
	doc := ir.FromMap(map[string]*ir.Value{
		"a": ir.FromFloat(12),
		"arr": ir.FromSlice([]*ir.Value{
			ir.FromFloat(1),
			ir.FromFloat(2),
			ir.FromFloat(3),
		}),
	})
	want := `{
  "a": 12,
  "arr": [
    1,
    2,
    3
  ]
}`
	if got := Dump(doc, "  ", 0); got != want {
		t.Errorf("Dump =\n%s\nwant:\n%s", got, want)
	}
}

func TestDumpEmptyContainers(t *testing.T) {
	if got := Dump(ir.FromSlice(nil), "  ", 0); got != "[\n]" {
		t.Errorf("empty array Dump = %q", got)
	}
	if got := Dump(ir.NewObject(), "  ", 0); got != "{\n}" {
		t.Errorf("empty object Dump = %q", got)
	}
}

func TestDumpDepth(t *testing.T) {
	arr := ir.FromSlice([]*ir.Value{ir.FromFloat(1)})
	want := "[\n      1\n    ]"
	if got := Dump(arr, "  ", 2); got != want {
		t.Errorf("Dump at depth 2 = %q, want %q", got, want)
	}
}

func TestDumpSortedKeyOrder(t *testing.T) {
	doc, err := parse.Parse([]byte(`{"zebra": 1, "apple": 2, "mango": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	got := Dump(doc, "", 0)
	ia := strings.Index(got, "apple")
	im := strings.Index(got, "mango")
	iz := strings.Index(got, "zebra")
	if ia < 0 || im < 0 || iz < 0 || !(ia < im && im < iz) {
		t.Errorf("keys not in sorted order:\n%s", got)
	}
}

// dump is a pure function of the tree: rendering twice is identical,
// and re-parsing a rendering reproduces the tree
func TestDumpRoundTrip(t *testing.T) {
	docs := []string{
		`null`,
		`true`,
		`12.25`,
		`"plain text"`,
		`[1, [2, []], null]`,
		`{"a": 12, "arr": [1, 2, 3], "obj": {"foo": "bar"}, "n": null}`,
	}
	for _, in := range docs {
		doc, err := parse.Parse([]byte(in))
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		first := Dump(doc, "    ", 0)
		second := Dump(doc, "    ", 0)
		if first != second {
			t.Errorf("Dump(%q) not idempotent", in)
		}
		back, err := parse.Parse([]byte(first))
		if err != nil {
			t.Fatalf("re-parse of Dump(%q): %v\n%s", in, err, first)
		}
		if !ir.Equal(doc, back) {
			t.Errorf("round trip of %q changed the tree:\n%s", in, first)
		}
	}
}

func TestMustString(t *testing.T) {
	got := MustString(ir.FromSlice([]*ir.Value{ir.FromBool(true)}))
	if got != "[\n  true\n]" {
		t.Errorf("MustString = %q", got)
	}
}

func TestEncodeInvalid(t *testing.T) {
	var sb strings.Builder
	if err := Encode(ir.Invalid(), &sb); err == nil {
		t.Error("Encode of invalid value did not error")
	}
}

func TestEncodeColors(t *testing.T) {
	colors := NewColors()
	doc := ir.FromMap(map[string]*ir.Value{
		"k": ir.FromSlice([]*ir.Value{ir.FromFloat(1), ir.FromString("s"), ir.Null()}),
	})
	var sb strings.Builder
	if err := Encode(doc, &sb, EncodeColors(colors)); err != nil {
		t.Fatal(err)
	}
	// colored or not (depending on terminal detection), the text content
	// is preserved
	for _, frag := range []string{"k", "1", "s", "null"} {
		if !strings.Contains(sb.String(), frag) {
			t.Errorf("colored output lost %q", frag)
		}
	}
}
