package ir

import (
	"fmt"
	"maps"
	"slices"
)

// Value is a tagged union over the JSON kinds. The payload field
// corresponding to Type holds the value; all other payload fields are zero.
//
// For ObjectType, Fields[i] is the key for Values[i], so there are always as
// many fields as values. Fields are kept unique and sorted, which fixes the
// member order observed by encoding and iteration. For ArrayType, Values
// holds the elements in insertion order and Fields is nil.
type Value struct {
	Type Type

	Bool   bool
	Number float64
	String string

	Fields []string
	Values []*Value
}

func Invalid() *Value {
	return &Value{Type: InvalidType}
}

func Null() *Value {
	return &Value{Type: NullType}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

func FromFloat(f float64) *Value {
	return &Value{Type: NumberType, Number: f}
}

func FromString(v string) *Value {
	return &Value{Type: StringType, String: v}
}

func FromSlice(vs []*Value) *Value {
	res := &Value{Type: ArrayType}
	res.Values = make([]*Value, len(vs))
	copy(res.Values, vs)
	return res
}

func FromMap(vMap map[string]*Value) *Value {
	res := &Value{Type: ObjectType}
	res.Fields = slices.Sorted(maps.Keys(vMap))
	res.Values = make([]*Value, len(res.Fields))
	for i, key := range res.Fields {
		res.Values[i] = vMap[key]
	}
	return res
}

func NewObject() *Value {
	return &Value{Type: ObjectType}
}

// Insert adds a member to an object, keeping Fields sorted. If the key is
// already present the existing member is kept and Insert reports false.
func (v *Value) Insert(key string, val *Value) bool {
	v.mustBe(ObjectType)
	i, found := slices.BinarySearch(v.Fields, key)
	if found {
		return false
	}
	v.Fields = slices.Insert(v.Fields, i, key)
	v.Values = slices.Insert(v.Values, i, val)
	return true
}

func (v *Value) IsValid() bool  { return v.Type != InvalidType }
func (v *Value) IsNull() bool   { return v.Type == NullType }
func (v *Value) IsBool() bool   { return v.Type == BoolType }
func (v *Value) IsNumber() bool { return v.Type == NumberType }
func (v *Value) IsString() bool { return v.Type == StringType }
func (v *Value) IsArray() bool  { return v.Type == ArrayType }
func (v *Value) IsObject() bool { return v.Type == ObjectType }

// The As accessors require the tag to match and panic otherwise. They are
// for call sites which already know the type; use the To accessors when the
// type is not known.

func (v *Value) AsBool() bool {
	v.mustBe(BoolType)
	return v.Bool
}

func (v *Value) AsNumber() float64 {
	v.mustBe(NumberType)
	return v.Number
}

func (v *Value) AsString() string {
	v.mustBe(StringType)
	return v.String
}

func (v *Value) AsArray() []*Value {
	v.mustBe(ArrayType)
	return v.Values
}

func (v *Value) mustBe(t Type) {
	if v.Type != t {
		panic(fmt.Sprintf("ir: %s value used as %s", v.Type, t))
	}
}

func (v *Value) ToBool() (bool, bool) {
	if v.Type != BoolType {
		return false, false
	}
	return v.Bool, true
}

func (v *Value) ToNumber() (float64, bool) {
	if v.Type != NumberType {
		return 0, false
	}
	return v.Number, true
}

func (v *Value) ToString() (string, bool) {
	if v.Type != StringType {
		return "", false
	}
	return v.String, true
}

func (v *Value) ToArray() ([]*Value, bool) {
	if v.Type != ArrayType {
		return nil, false
	}
	return v.Values, true
}

func (v *Value) ToObject() (map[string]*Value, bool) {
	if v.Type != ObjectType {
		return nil, false
	}
	res := make(map[string]*Value, len(v.Fields))
	for i, key := range v.Fields {
		res[key] = v.Values[i]
	}
	return res, true
}

// Size is 0 for Invalid and Null, the member or element count for objects
// and arrays, and 1 for every other kind.
func (v *Value) Size() int {
	switch v.Type {
	case InvalidType, NullType:
		return 0
	case ArrayType, ObjectType:
		return len(v.Values)
	default:
		return 1
	}
}

// Key looks up an object member. It never fails: on a non-object value or a
// missing key it returns an invalid sentinel, so lookups chain safely over
// documents of uncertain shape.
func (v *Value) Key(key string) *Value {
	if v.Type != ObjectType {
		return Invalid()
	}
	i, found := slices.BinarySearch(v.Fields, key)
	if !found {
		return Invalid()
	}
	return v.Values[i]
}

// At looks up an array element, returning an invalid sentinel on a
// non-array value or an out of range index.
func (v *Value) At(i int) *Value {
	if v.Type != ArrayType || i < 0 || i >= len(v.Values) {
		return Invalid()
	}
	return v.Values[i]
}

func (v *Value) Clone() *Value {
	res := &Value{}
	return v.CloneTo(res)
}

func (v *Value) CloneTo(dst *Value) *Value {
	dst.Type = v.Type
	dst.Bool = v.Bool
	dst.Number = v.Number
	dst.String = v.String
	dst.Fields = slices.Clone(v.Fields)
	dst.Values = make([]*Value, len(v.Values))
	for i, vv := range v.Values {
		dst.Values[i] = vv.Clone()
	}
	return dst
}

func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		for _, vv := range v.Values {
			if err := vv.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}
