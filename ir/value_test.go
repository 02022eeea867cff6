package ir

import (
	"testing"
)

func TestSize(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		size int
	}{
		{"invalid", Invalid(), 0},
		{"zero", &Value{}, 0},
		{"null", Null(), 0},
		{"bool", FromBool(true), 1},
		{"number", FromFloat(3.5), 1},
		{"string", FromString(""), 1},
		{"empty array", FromSlice(nil), 0},
		{"array", FromSlice([]*Value{Null(), Null(), Null()}), 3},
		{"empty object", NewObject(), 0},
		{"object", FromMap(map[string]*Value{
			"a": Null(),
			"b": FromFloat(1),
		}), 2},
	}
	for _, tt := range tests {
		if got := tt.v.Size(); got != tt.size {
			t.Errorf("%s: Size() = %d, want %d", tt.name, got, tt.size)
		}
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	obj := FromMap(map[string]*Value{
		"zebra": FromFloat(1),
		"apple": FromFloat(2),
		"mango": FromFloat(3),
	})
	want := []string{"apple", "mango", "zebra"}
	if len(obj.Fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(obj.Fields), len(want))
	}
	for i, key := range want {
		if obj.Fields[i] != key {
			t.Errorf("field %d: got %q, want %q", i, obj.Fields[i], key)
		}
	}
}

func TestInsertFirstWins(t *testing.T) {
	obj := NewObject()
	if !obj.Insert("x", FromFloat(1)) {
		t.Fatal("first insert rejected")
	}
	if obj.Insert("x", FromFloat(2)) {
		t.Fatal("duplicate insert accepted")
	}
	if n, ok := obj.Key("x").ToNumber(); !ok || n != 1 {
		t.Errorf("Key(x) = %v, %v; want 1, true", n, ok)
	}
	if obj.Size() != 1 {
		t.Errorf("Size() = %d, want 1", obj.Size())
	}
}

func TestInsertKeepsFieldsSorted(t *testing.T) {
	obj := NewObject()
	for _, key := range []string{"m", "a", "z", "b"} {
		obj.Insert(key, Null())
	}
	want := []string{"a", "b", "m", "z"}
	for i, key := range want {
		if obj.Fields[i] != key {
			t.Errorf("field %d: got %q, want %q", i, obj.Fields[i], key)
		}
	}
}

func TestLookupIsTotal(t *testing.T) {
	doc := FromMap(map[string]*Value{
		"a": FromMap(map[string]*Value{
			"b": FromSlice([]*Value{FromFloat(7)}),
		}),
		"n": Null(),
	})

	if n, ok := doc.Key("a").Key("b").At(0).ToNumber(); !ok || n != 7 {
		t.Errorf("chained lookup = %v, %v; want 7, true", n, ok)
	}

	// every miss, on any kind of value, yields an invalid sentinel
	misses := []*Value{
		doc.Key("missing"),
		doc.Key("a").Key("missing"),
		doc.Key("a").Key("b").At(1),
		doc.Key("a").Key("b").At(-1),
		doc.Key("a").At(0),
		doc.Key("n").Key("x"),
		FromFloat(1).Key("x"),
		FromString("s").At(0),
		Invalid().Key("x").At(0).Key("y"),
	}
	for i, m := range misses {
		if m == nil {
			t.Fatalf("miss %d: got nil", i)
		}
		if m.IsValid() {
			t.Errorf("miss %d: IsValid() = true, want false", i)
		}
	}

	// present-but-null is distinguishable from absent
	if !doc.Key("n").IsNull() {
		t.Error("Key(n) should be null")
	}
	if doc.Key("missing").IsNull() {
		t.Error("missing key should be invalid, not null")
	}
}

func TestToAccessors(t *testing.T) {
	v := FromString("hi")
	if s, ok := v.ToString(); !ok || s != "hi" {
		t.Errorf("ToString() = %q, %v", s, ok)
	}
	if _, ok := v.ToNumber(); ok {
		t.Error("ToNumber() on string should not be ok")
	}
	if _, ok := v.ToBool(); ok {
		t.Error("ToBool() on string should not be ok")
	}
	if _, ok := v.ToArray(); ok {
		t.Error("ToArray() on string should not be ok")
	}
	obj := FromMap(map[string]*Value{"k": Null()})
	m, ok := obj.ToObject()
	if !ok || len(m) != 1 || !m["k"].IsNull() {
		t.Errorf("ToObject() = %v, %v", m, ok)
	}
}

func TestAsPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("AsNumber on a string did not panic")
		}
	}()
	FromString("no").AsNumber()
}

func TestClone(t *testing.T) {
	orig := FromMap(map[string]*Value{
		"arr": FromSlice([]*Value{FromFloat(1), FromBool(true)}),
		"s":   FromString("x"),
	})
	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatal("clone not equal to original")
	}
	cp.Key("arr").Values[0].Number = 99
	if Equal(orig, cp) {
		t.Fatal("mutating the clone changed the original")
	}
}

func TestVisit(t *testing.T) {
	doc := FromMap(map[string]*Value{
		"arr": FromSlice([]*Value{FromFloat(1), FromFloat(2)}),
		"s":   FromString("x"),
	})
	pre, post := 0, 0
	err := doc.Visit(func(v *Value, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// root + arr + 2 elements + s
	if pre != 5 || post != 5 {
		t.Errorf("visited pre=%d post=%d, want 5/5", pre, post)
	}
}
