package ir

import (
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		typ  Type
	}{
		{"String", FromString("hi"), StringType},
		{"Int", FromInt(-3), IntType},
		{"Uint", FromUint(3), UintType},
		{"Float", FromFloat(10.7), FloatType},
		{"Bool", FromBool(true), BoolType},
		{"Null", Null(), NullType},
		{"Slice", FromSlice([]*Node{FromInt(1)}), ArrayType},
		{"KeyVals", FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}), ObjectType},
		{"Map", FromMap(map[string]*Node{"a": FromInt(1)}), ObjectType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.node.Type != tt.typ {
				t.Errorf("Type = %v, want %v", tt.node.Type, tt.typ)
			}
		})
	}
}

func TestFromMapSortsFields(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"c": FromInt(3),
		"a": FromInt(1),
		"b": FromInt(2),
	})
	want := []string{"a", "b", "c"}
	if len(obj.Fields) != len(want) {
		t.Fatalf("len(Fields) = %d, want %d", len(obj.Fields), len(want))
	}
	for i, field := range want {
		if obj.Fields[i].String != field {
			t.Errorf("Fields[%d] = %q, want %q", i, obj.Fields[i].String, field)
		}
	}
}

func TestFromKeyValsKeepsOrder(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "z", Val: FromInt(1)},
		{Key: "a", Val: FromInt(2)},
	})
	if obj.Fields[0].String != "z" || obj.Fields[1].String != "a" {
		t.Errorf("Fields = [%q, %q], want [z, a]", obj.Fields[0].String, obj.Fields[1].String)
	}
}

func TestParentLinks(t *testing.T) {
	inner := FromString("cool programming")
	arr := FromSlice([]*Node{inner})
	obj := FromKeyVals([]KeyVal{{Key: "applications", Val: arr}})

	if arr.Parent != obj {
		t.Errorf("arr.Parent = %v, want obj", arr.Parent)
	}
	if arr.ParentField != "applications" {
		t.Errorf("arr.ParentField = %q, want %q", arr.ParentField, "applications")
	}
	if inner.Parent != arr {
		t.Errorf("inner.Parent = %v, want arr", inner.Parent)
	}
	if inner.ParentIndex != 0 {
		t.Errorf("inner.ParentIndex = %d, want 0", inner.ParentIndex)
	}
	if got := inner.Root(); got != obj {
		t.Errorf("inner.Root() = %v, want obj", got)
	}
	if got := obj.Root(); got != obj {
		t.Errorf("obj.Root() = %v, want obj", got)
	}
}

func TestGet(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "name", Val: FromString("go")},
		{Key: "age", Val: FromInt(15)},
	})
	tests := []struct {
		name  string
		node  *Node
		field string
		want  *Node
	}{
		{"present", obj, "name", obj.Values[0]},
		{"present second", obj, "age", obj.Values[1]},
		{"absent", obj, "nope", nil},
		{"non-object", FromInt(1), "name", nil},
		{"nil node", nil, "name", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Get(tt.node, tt.field); got != tt.want {
				t.Errorf("Get(%q) = %v, want %v", tt.field, got, tt.want)
			}
		})
	}
}

func TestAt(t *testing.T) {
	arr := FromSlice([]*Node{FromInt(10), FromInt(20)})
	tests := []struct {
		name string
		node *Node
		i    int
		want *Node
	}{
		{"first", arr, 0, arr.Values[0]},
		{"last", arr, 1, arr.Values[1]},
		{"past end", arr, 2, nil},
		{"negative", arr, -1, nil},
		{"non-array", FromString("x"), 0, nil},
		{"nil node", nil, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := At(tt.node, tt.i); got != tt.want {
				t.Errorf("At(%d) = %v, want %v", tt.i, got, tt.want)
			}
		})
	}
}

func TestClone(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Node{FromInt(1), FromString("x")})},
		{Key: "b", Val: Null()},
	})
	dup := orig.Clone()
	if dup == orig {
		t.Fatal("Clone() returned the receiver")
	}
	if Compare(orig, dup) != 0 {
		t.Errorf("Compare(orig, clone) != 0")
	}

	// Mutating the clone must not affect the original.
	dup.Values[0].Values[0].Int64 = 99
	if orig.Values[0].Values[0].Int64 != 1 {
		t.Errorf("mutating clone changed original")
	}

	// Parent links inside the clone point into the clone.
	if dup.Values[0].Parent != dup {
		t.Errorf("clone child Parent = %v, want clone", dup.Values[0].Parent)
	}
	if dup.Values[0].Values[0].Parent != dup.Values[0] {
		t.Errorf("clone grandchild Parent not re-linked")
	}
}

func TestToMap(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromString("two")},
	})
	m := ToMap(obj)
	if len(m) != 2 {
		t.Fatalf("len = %d, want 2", len(m))
	}
	if m["a"].Int64 != 1 {
		t.Errorf("m[a] = %v, want 1", m["a"].Int64)
	}
	if m["b"].String != "two" {
		t.Errorf("m[b] = %v, want two", m["b"].String)
	}
	if got := ToMap(FromInt(1)); got != nil {
		t.Errorf("ToMap(non-object) = %v, want nil", got)
	}
}
