package environment

import (
	"testing"

	E "github.com/fbbotero-aws/cbmc/analysis/expr"
	L "github.com/fbbotero-aws/cbmc/analysis/lattice"
	T "github.com/fbbotero-aws/cbmc/analysis/types"
)

func TestBindAndEval(t *testing.T) {
	i32 := T.MakeBasic(T.Int32)
	x := E.MakeSymbol("x", i32)

	env := New()
	if _, found := env.Eval(x); found {
		t.Errorf("empty environment should have no binding for x")
	}

	obj := L.NewTwoValue(i32, true, false)
	env2 := env.Bind("x", obj)

	if _, found := env.Eval(x); found {
		t.Errorf("Bind mutated the original environment")
	}
	bound, found := env2.Eval(x)
	if !found || !bound.Equal(obj) {
		t.Errorf("Eval(x) = %v, expected the bound object", bound)
	}

	// Only symbols resolve to bindings.
	if _, found := env2.Eval(E.MakeConstant(5, i32)); found {
		t.Errorf("literals should have no binding")
	}

	if env.Size() != 0 || env2.Size() != 1 {
		t.Errorf("environment sizes = %d, %d, expected 0, 1", env.Size(), env2.Size())
	}
}
