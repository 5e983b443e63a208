package lattice

import (
	"fmt"

	E "github.com/fbbotero-aws/cbmc/analysis/expr"
	T "github.com/fbbotero-aws/cbmc/analysis/types"
)

// Constant is the constant propagation abstraction for scalars: either
// an extreme state or exactly one known concrete value.
type Constant struct {
	abstractObject
	value any
}

// NewConstant creates a constant object in the given extreme state.
func NewConstant(typ T.Type, top, bottom bool) Constant {
	return Constant{makeBase(typ, top, bottom), nil}
}

// ConstantFromExpr creates a constant object derived from the given
// expression. Literals yield their value directly; symbols inherit the
// value of their current binding when it is itself a known constant.
func ConstantFromExpr(e E.Expr, env Environment, res T.Resolver) Constant {
	typ := res.Follow(e.Type())

	if c, ok := e.(E.Constant); ok {
		return Constant{makeBase(typ, false, false), c.Value()}
	}

	if bound, ok := resolveBinding(e, env); ok {
		if inner, ok := bound.Unwrap().(Constant); ok && inner.IsValue() {
			return Constant{makeBase(typ, false, false), inner.value}
		}
	}

	return NewConstant(typ, true, false)
}

// IsValue is true when the object tracks a known concrete value.
func (o Constant) IsValue() bool {
	return !o.top && !o.bottom
}

// Value retrieves the known concrete value. It must only be invoked on
// valued objects.
func (o Constant) Value() any {
	if !o.IsValue() {
		panic("Called Value() on an extreme constant object")
	}
	return o.value
}

// Constant safely converts a constant object.
func (o Constant) Constant() Constant {
	return o
}

// Unwrap is the identity for undecorated objects.
func (o Constant) Unwrap() AbstractObject {
	return o
}

// Equal checks value equality with another abstract object.
func (o Constant) Equal(p AbstractObject) bool {
	p2, ok := p.(Constant)
	return ok && o.baseEqual(p2.abstractObject) && o.value == p2.value
}

func (o Constant) String() string {
	if o.IsValue() {
		return colorize.Const(fmt.Sprintf("%v", o.value))
	}
	return o.extremeString()
}
