package eval

import (
	"testing"

	"github.com/minijson-format/go-minijson/ir"
	"github.com/minijson-format/go-minijson/parse"
)

func mustParse(t *testing.T, in string) *ir.Value {
	t.Helper()
	node, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse(%q): %v", in, err)
	}
	return node
}

func TestQuery(t *testing.T) {
	doc := mustParse(t, `{
		"users": [
			{"name": "alice", "age": 30},
			{"name": "bob", "age": 25}
		],
		"count": 2
	}`)

	tests := []struct {
		name string
		src  string
		env  map[string]any
		want string
	}{
		{
			name: "member access",
			src:  `doc.count`,
			want: `2`,
		},
		{
			name: "nested index",
			src:  `doc.users[0].name`,
			want: `"alice"`,
		},
		{
			name: "map over array",
			src:  `map(doc.users, .name)`,
			want: `["alice", "bob"]`,
		},
		{
			name: "filter with env",
			src:  `filter(doc.users, .age > minAge)[0].name`,
			env:  map[string]any{"minAge": 26.0},
			want: `"alice"`,
		},
		{
			name: "get function",
			src:  `get("count")`,
			want: `2`,
		},
		{
			name: "size function",
			src:  `size()`,
			want: `2`,
		},
	}
	for _, tt := range tests {
		got, err := Query(doc, tt.src, tt.env)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		want := mustParse(t, tt.want)
		if !ir.Equal(got, want) {
			t.Errorf("%s: Query(%q) != %s", tt.name, tt.src, tt.want)
		}
	}
}

func TestQueryErrors(t *testing.T) {
	doc := mustParse(t, `{"a": 1}`)
	if _, err := Query(doc, `doc.a +`, nil); err == nil {
		t.Error("bad expression compiled")
	}
	if _, err := Query(doc, `doc.a.b.c`, nil); err == nil {
		t.Error("member access through a number succeeded")
	}
}
