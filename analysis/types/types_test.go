package types

import "testing"

func TestNamespaceFollow(t *testing.T) {
	ns := NewNamespace()

	i32 := MakeBasic(Int32)
	pair := MakeStruct(Field{Name: "x", Type: i32}, Field{Name: "y", Type: i32})
	named := MakeNamed("pair", pair)
	doubly := MakeNamed("alias", named)

	tests := []struct {
		typ      Type
		expected Type
	}{
		{i32, i32},
		{pair, pair},
		{named, pair},
		{doubly, pair},
		{MakePointer(named), MakePointer(named)},
	}

	for _, test := range tests {
		if res := ns.Follow(test.typ); res != test.expected {
			t.Errorf("Follow(%s) = %s, expected %s", test.typ, res, test.expected)
		}
	}
}

func TestIdentical(t *testing.T) {
	i32 := MakeBasic(Int32)
	i64 := MakeBasic(Int64)
	pair := func() *Struct {
		return MakeStruct(Field{Name: "x", Type: i32}, Field{Name: "y", Type: i32})
	}

	tests := []struct {
		t1, t2   Type
		expected bool
	}{
		{i32, i32, true},
		{i32, MakeBasic(Int32), true},
		{i32, i64, false},
		{MakeArray(i32, 4), MakeArray(i32, 4), true},
		{MakeArray(i32, 4), MakeArray(i32, 8), false},
		{MakeArray(i32, 4), MakeArray(i64, 4), false},
		{MakePointer(i32), MakePointer(i32), true},
		{MakePointer(i32), MakePointer(i64), false},
		{pair(), pair(), true},
		{pair(), MakeStruct(Field{Name: "x", Type: i32}), false},
		{MakeUnion(Field{Name: "i", Type: i32}), MakeUnion(Field{Name: "i", Type: i32}), true},
		{MakeUnion(Field{Name: "i", Type: i32}), pair(), false},
		{MakeNamed("a", i32), MakeNamed("a", i64), true},
		{MakeNamed("a", i32), MakeNamed("b", i32), false},
	}

	for _, test := range tests {
		if res := Identical(test.t1, test.t2); res != test.expected {
			t.Errorf("Identical(%s, %s) = %v, expected %v", test.t1, test.t2, res, test.expected)
		}
	}
}
