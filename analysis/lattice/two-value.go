package lattice

import (
	E "github.com/fbbotero-aws/cbmc/analysis/expr"
	T "github.com/fbbotero-aws/cbmc/analysis/types"
)

// TwoValue is the coarsest scalar abstraction. It tracks only whether a
// value is ⊤ or ⊥, never a concrete value.
type TwoValue struct {
	abstractObject
}

// NewTwoValue creates a two-value object in the given extreme state.
func NewTwoValue(typ T.Type, top, bottom bool) TwoValue {
	return TwoValue{makeBase(typ, top, bottom)}
}

// TwoValueFromExpr creates a two-value object for the given expression.
// The variant has no payload to derive, so any reachable value is ⊤.
func TwoValueFromExpr(e E.Expr, env Environment, res T.Resolver) TwoValue {
	return NewTwoValue(res.Follow(e.Type()), true, false)
}

// TwoValue safely converts a two-value object.
func (o TwoValue) TwoValue() TwoValue {
	return o
}

// Unwrap is the identity for undecorated objects.
func (o TwoValue) Unwrap() AbstractObject {
	return o
}

// Equal checks value equality with another abstract object.
func (o TwoValue) Equal(p AbstractObject) bool {
	p2, ok := p.(TwoValue)
	return ok && o.baseEqual(p2.abstractObject)
}

func (o TwoValue) String() string {
	return o.extremeString()
}
