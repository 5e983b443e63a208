package vsd

import (
	"testing"

	T "github.com/fbbotero-aws/cbmc/analysis/types"
)

func TestClassify(t *testing.T) {
	i32 := T.MakeBasic(T.Int32)
	boolean := T.MakeBasic(T.Bool)
	arr := T.MakeArray(i32, 4)
	ptr := T.MakePointer(i32)
	str := T.MakeStruct(T.Field{Name: "x", Type: i32})
	union := T.MakeUnion(T.Field{Name: "i", Type: i32})

	insensitive := Config{}
	sensitive := Config{
		Primitive: PrimitiveSensitivity{Structs: true, Arrays: true, Pointers: true},
	}

	tests := []struct {
		name     string
		typ      T.Type
		conf     Config
		expected OBJECT_TYPE
	}{
		{"scalar defaults to two-value", i32, insensitive, TWO_VALUE},
		{"scalar still two-value under aggregate sensitivity", i32, sensitive, TWO_VALUE},
		{"scalar under constant domain", i32, ConstantDomain(), TWO_VALUE},
		{"numeric scalar under intervals", i32, Intervals(), INTERVAL},
		{"float scalar under intervals", T.MakeBasic(T.Float64), Intervals(), INTERVAL},
		{"bool scalar under intervals", boolean, Intervals(), CONSTANT},
		{"scalar under value set", i32, ValueSetDomain(), VALUE_SET},
		{"value set wins over intervals", i32,
			Config{Advanced: AdvancedSensitivities{ValueSet: true, Intervals: true}}, VALUE_SET},
		{"new value set wins over intervals", i32,
			Config{Advanced: AdvancedSensitivities{NewValueSet: true, Intervals: true}}, VALUE_SET},
		{"array insensitive", arr, insensitive, ARRAY_INSENSITIVE},
		{"array sensitive", arr, sensitive, ARRAY_SENSITIVE},
		{"array ignores scalar flags", arr, ValueSetDomain(), ARRAY_SENSITIVE},
		{"pointer insensitive", ptr, insensitive, POINTER_INSENSITIVE},
		{"pointer sensitive", ptr, sensitive, POINTER_SENSITIVE},
		{"struct insensitive", str, insensitive, STRUCT_INSENSITIVE},
		{"struct sensitive", str, sensitive, STRUCT_SENSITIVE},
		{"struct ignores scalar flags", str, Intervals(), STRUCT_SENSITIVE},
		{"union always insensitive", union, insensitive, UNION_INSENSITIVE},
		{"union always insensitive under full sensitivity", union, sensitive, UNION_INSENSITIVE},
	}

	for _, test := range tests {
		res := Classify(test.typ, test.conf)
		if res != test.expected {
			t.Errorf("%s: Classify(%s) = %s, expected %s", test.name, test.typ, res, test.expected)
		}
		// Classification is deterministic.
		if again := Classify(test.typ, test.conf); again != res {
			t.Errorf("%s: repeated classification changed from %s to %s", test.name, res, again)
		}
	}
}

func TestClassifyUnknownCategoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("classifying an unresolved named type should panic")
		}
	}()
	Classify(T.MakeNamed("pair", T.MakeBasic(T.Int32)), ConstantDomain())
}
