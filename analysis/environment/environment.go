// Package environment implements the abstract environment collaborator:
// a persistent map from program variables to abstract objects. The
// domain construction layer only ever reads through it; updates produce
// a fresh environment and leave every older snapshot untouched.
package environment

import (
	E "github.com/fbbotero-aws/cbmc/analysis/expr"
	L "github.com/fbbotero-aws/cbmc/analysis/lattice"

	"github.com/benbjohnson/immutable"
)

// Environment maps variable names to their current abstract binding.
type Environment struct {
	bindings *immutable.Map[string, L.AbstractObject]
}

// New creates an empty abstract environment.
func New() Environment {
	return Environment{immutable.NewMap[string, L.AbstractObject](nil)}
}

// Bind returns a new environment where the named variable is bound to
// the given abstract object. The receiver is unchanged.
func (env Environment) Bind(name string, obj L.AbstractObject) Environment {
	return Environment{env.bindings.Set(name, obj)}
}

// Eval resolves an expression's current abstract binding. Only symbols
// have bindings; every other expression kind yields no binding.
func (env Environment) Eval(e E.Expr) (L.AbstractObject, bool) {
	s, ok := e.(E.Symbol)
	if !ok {
		return nil, false
	}
	return env.bindings.Get(s.Name())
}

// Size retrieves the number of bound variables.
func (env Environment) Size() int {
	return env.bindings.Len()
}
