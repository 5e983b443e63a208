package vsd

import (
	"testing"

	env "github.com/fbbotero-aws/cbmc/analysis/environment"
	E "github.com/fbbotero-aws/cbmc/analysis/expr"
	L "github.com/fbbotero-aws/cbmc/analysis/lattice"
	T "github.com/fbbotero-aws/cbmc/analysis/types"
)

var (
	ns   = T.NewNamespace()
	i32  = T.MakeBasic(T.Int32)
	pair = T.MakeStruct(T.Field{Name: "x", Type: i32}, T.Field{Name: "y", Type: i32})
)

// TestConstantDomainScalarTop covers: constant domain preset, top int32
// scalar. No advanced sensitivity is enabled, so scalars fall through
// to two-value tracking, wrapped in a last-write context.
func TestConstantDomainScalarTop(t *testing.T) {
	factory := ConfiguredWith(ConstantDomain())

	obj := factory.GetAbstractObject(i32, true, false, nil, env.New(), ns)

	ctx, isCtx := obj.(L.Context)
	if !isCtx {
		t.Fatalf("expected a context-wrapped object, got %T", obj)
	}
	if _, isLastWrite := ctx.(*L.WriteLocationContext); !isLastWrite {
		t.Fatalf("expected a last-write wrapper, got %T", ctx)
	}
	if _, isTwoValue := ctx.Child().(L.TwoValue); !isTwoValue {
		t.Errorf("expected a two-value scalar inside the wrapper, got %T", ctx.Child())
	}
	if !obj.IsTop() || obj.IsBottom() {
		t.Errorf("expected a ⊤ handle, got %s", obj)
	}
	if len(ctx.LastWritten()) != 0 {
		t.Errorf("extreme-mode wrapper should carry no write locations")
	}
}

// TestIntervalsDerivedScalar covers: intervals preset, int32 bound to
// 5, derived mode. The result is the singleton interval [5, 5] wrapped
// in a last-write context.
func TestIntervalsDerivedScalar(t *testing.T) {
	factory := ConfiguredWith(Intervals())

	environment := env.New()
	x := E.MakeSymbol("x", i32)
	environment = environment.Bind("x",
		factory.GetAbstractObject(i32, false, false, E.MakeConstant(5, i32), environment, ns))

	obj := factory.GetAbstractObject(i32, false, false, x, environment, ns)

	ctx, isCtx := obj.(*L.WriteLocationContext)
	if !isCtx {
		t.Fatalf("expected a last-write wrapper, got %T", obj)
	}
	iv, isInterval := ctx.Child().(L.Interval)
	if !isInterval {
		t.Fatalf("expected an interval inside the wrapper, got %T", ctx.Child())
	}
	if iv.Low() != L.FiniteBound(5) || iv.High() != L.FiniteBound(5) {
		t.Errorf("interval = %s, expected [5, 5]", iv)
	}
	if locs := ctx.LastWritten(); len(locs) != 1 || locs[0].String() != "x" {
		t.Errorf("wrapper locations = %v, expected [x]", locs)
	}
}

// TestValueSetDerivedStruct covers: value-set preset, struct with two
// integer fields, derived mode. The struct is field sensitive and no
// context wrapper is applied.
func TestValueSetDerivedStruct(t *testing.T) {
	factory := ConfiguredWith(ValueSetDomain())

	lit := E.MakeStructLit(pair, E.MakeConstant(1, i32), E.MakeConstant(2, i32))
	obj := factory.GetAbstractObject(pair, false, false, lit, env.New(), ns)

	if _, isCtx := obj.(L.Context); isCtx {
		t.Fatalf("value-set preset should not wrap objects, got %T", obj)
	}
	st, isStruct := obj.(L.StructSensitive)
	if !isStruct {
		t.Fatalf("expected a field-sensitive struct, got %T", obj)
	}

	for _, field := range []struct {
		name     string
		expected any
	}{
		{"x", 1},
		{"y", 2},
	} {
		fieldObj, found := st.Field(field.name)
		if !found {
			t.Errorf("field %s not tracked", field.name)
			continue
		}
		vs, isValueSet := fieldObj.(L.ValueSet)
		if !isValueSet {
			t.Errorf("field %s: expected a value set, got %T", field.name, fieldObj)
			continue
		}
		if vs.Size() != 1 || !vs.Contains(field.expected) {
			t.Errorf("field %s = %s, expected { %v }", field.name, vs, field.expected)
		}
	}
}

// TestDataDependencyWrapping checks the data-dependency wrapper wins
// and is seeded from the construction arguments.
func TestDataDependencyWrapping(t *testing.T) {
	conf, err := FromOptions(map[string]bool{"data-dependencies": true})
	if err != nil {
		t.Fatal(err)
	}
	factory := ConfiguredWith(conf)

	environment := env.New()
	x := E.MakeSymbol("x", i32)
	environment = environment.Bind("x",
		factory.GetAbstractObject(i32, true, false, nil, environment, ns))

	obj := factory.GetAbstractObject(i32, false, false, x, environment, ns)

	ctx, isDataDep := obj.(*L.DataDependencyContext)
	if !isDataDep {
		t.Fatalf("expected a data-dependency wrapper, got %T", obj)
	}
	if deps := ctx.Dependencies(); len(deps) != 1 || deps[0].String() != "x" {
		t.Errorf("dependencies = %v, expected [x]", deps)
	}
}

// TestExtremeModeIgnoresEnvironment checks that changing the
// environment without changing (type, top, bottom) produces an
// observably equal handle.
func TestExtremeModeIgnoresEnvironment(t *testing.T) {
	factory := ConfiguredWith(ConstantDomain())

	empty := env.New()
	populated := empty.Bind("x", L.NewConstant(i32, true, false))

	o1 := factory.GetAbstractObject(i32, true, false, nil, empty, ns)
	o2 := factory.GetAbstractObject(i32, true, false, nil, populated, ns)
	if !o1.Equal(o2) {
		t.Errorf("extreme-mode handles differ across environments: %s vs %s", o1, o2)
	}
}

// TestDeterministicConstruction checks that identical calls against an
// unchanged environment produce observably equal handles.
func TestDeterministicConstruction(t *testing.T) {
	factory := ConfiguredWith(Intervals())

	environment := env.New()
	five := E.MakeConstant(5, i32)

	o1 := factory.GetAbstractObject(i32, false, false, five, environment, ns)
	o2 := factory.GetAbstractObject(i32, false, false, five, environment, ns)
	if !o1.Equal(o2) {
		t.Errorf("identical derived-mode calls differ: %s vs %s", o1, o2)
	}
}

func TestTopAndBottomRejected(t *testing.T) {
	factory := ConfiguredWith(ConstantDomain())

	defer func() {
		if recover() == nil {
			t.Errorf("requesting top and bottom together should panic")
		}
	}()
	factory.GetAbstractObject(i32, true, true, nil, env.New(), ns)
}

func TestDerivedModeTypeMismatchRejected(t *testing.T) {
	factory := ConfiguredWith(ConstantDomain())

	defer func() {
		if recover() == nil {
			t.Errorf("a type mismatching the expression's resolved type should panic")
		}
	}()
	factory.GetAbstractObject(pair, false, false, E.MakeConstant(5, i32), env.New(), ns)
}

func TestDerivedModeRequiresExpression(t *testing.T) {
	factory := ConfiguredWith(ConstantDomain())

	defer func() {
		if recover() == nil {
			t.Errorf("derived mode without an expression should panic")
		}
	}()
	factory.GetAbstractObject(i32, false, false, nil, env.New(), ns)
}

// TestNamedTypesFollowed checks that symbolic types are resolved before
// classification and recursion.
func TestNamedTypesFollowed(t *testing.T) {
	factory := ConfiguredWith(ConstantDomain())
	named := T.MakeNamed("pair", pair)

	obj := factory.GetAbstractObject(named, true, false, nil, env.New(), ns)
	if _, isStruct := obj.Unwrap().(L.StructSensitive); !isStruct {
		t.Errorf("expected a field-sensitive struct for a named struct type, got %T", obj.Unwrap())
	}
}

// TestSingleWrapperLayer checks that nested fields built through the
// factory carry at most one wrapper layer each and the outer object
// exactly one.
func TestSingleWrapperLayer(t *testing.T) {
	factory := ConfiguredWith(ConstantDomain())

	lit := E.MakeStructLit(pair, E.MakeConstant(1, i32), E.MakeConstant(2, i32))
	obj := factory.GetAbstractObject(pair, false, false, lit, env.New(), ns)

	ctx, isCtx := obj.(L.Context)
	if !isCtx {
		t.Fatalf("expected a wrapped struct, got %T", obj)
	}
	if _, nested := ctx.Child().(L.Context); nested {
		t.Fatalf("wrapper layers must not nest")
	}

	st := ctx.Child().(L.StructSensitive)
	st.ForEachField(func(name string, fieldObj L.AbstractObject) {
		fieldCtx, wrapped := fieldObj.(L.Context)
		if !wrapped {
			t.Errorf("field %s: expected a wrapped field object, got %T", name, fieldObj)
			return
		}
		if _, nested := fieldCtx.Child().(L.Context); nested {
			t.Errorf("field %s: wrapper layers must not nest", name)
		}
	})
}
