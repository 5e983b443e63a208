package lattice

import (
	E "github.com/fbbotero-aws/cbmc/analysis/expr"
	T "github.com/fbbotero-aws/cbmc/analysis/types"
)

// PointerSensitive is the target-sensitive pointer abstraction: it
// tracks the single expression the pointer is known to point at.
type PointerSensitive struct {
	abstractObject
	target E.Expr
}

// NewPointerSensitive creates a target-sensitive pointer object in the
// given extreme state.
func NewPointerSensitive(typ T.Type, top, bottom bool) PointerSensitive {
	return PointerSensitive{makeBase(typ, top, bottom), nil}
}

// PointerSensitiveFromExpr creates a target-sensitive pointer derived
// from the given expression. Address-of expressions yield a known
// target; symbols inherit the target of their current binding when it
// is itself a known pointer.
func PointerSensitiveFromExpr(e E.Expr, env Environment, res T.Resolver) PointerSensitive {
	typ := res.Follow(e.Type())

	if a, ok := e.(E.AddressOf); ok {
		return PointerSensitive{makeBase(typ, false, false), a.Target()}
	}

	if bound, ok := resolveBinding(e, env); ok {
		if inner, ok := bound.Unwrap().(PointerSensitive); ok && inner.IsKnown() {
			return PointerSensitive{makeBase(typ, false, false), inner.target}
		}
	}

	return NewPointerSensitive(typ, true, false)
}

// IsKnown is true when the object tracks a concrete target.
func (o PointerSensitive) IsKnown() bool {
	return !o.top && !o.bottom
}

// Target retrieves the expression the pointer points at. It must only
// be invoked on objects with a known target.
func (o PointerSensitive) Target() E.Expr {
	if !o.IsKnown() {
		panic("Called Target() on an extreme pointer object")
	}
	return o.target
}

// PointerSensitive safely converts a target-sensitive pointer object.
func (o PointerSensitive) PointerSensitive() PointerSensitive {
	return o
}

// Unwrap is the identity for undecorated objects.
func (o PointerSensitive) Unwrap() AbstractObject {
	return o
}

// Equal checks value equality with another abstract object.
func (o PointerSensitive) Equal(p AbstractObject) bool {
	p2, ok := p.(PointerSensitive)
	if !ok || !o.baseEqual(p2.abstractObject) {
		return false
	}
	switch {
	case o.target == nil && p2.target == nil:
		return true
	case o.target == nil || p2.target == nil:
		return false
	}
	return o.target.String() == p2.target.String()
}

func (o PointerSensitive) String() string {
	if !o.IsKnown() {
		return o.extremeString()
	}
	return colorize.Attr("&") + o.target.String()
}

// PointerInsensitive collapses a pointer into one two-value
// approximation.
type PointerInsensitive struct {
	abstractObject
}

// NewPointerInsensitive creates a target-insensitive pointer object in
// the given extreme state.
func NewPointerInsensitive(typ T.Type, top, bottom bool) PointerInsensitive {
	return PointerInsensitive{makeBase(typ, top, bottom)}
}

// PointerInsensitiveFromExpr creates a target-insensitive pointer
// object for the given expression. No target is tracked, so any
// reachable value is ⊤.
func PointerInsensitiveFromExpr(e E.Expr, env Environment, res T.Resolver) PointerInsensitive {
	return NewPointerInsensitive(res.Follow(e.Type()), true, false)
}

// PointerInsensitive safely converts a target-insensitive pointer object.
func (o PointerInsensitive) PointerInsensitive() PointerInsensitive {
	return o
}

// Unwrap is the identity for undecorated objects.
func (o PointerInsensitive) Unwrap() AbstractObject {
	return o
}

// Equal checks value equality with another abstract object.
func (o PointerInsensitive) Equal(p AbstractObject) bool {
	p2, ok := p.(PointerInsensitive)
	return ok && o.baseEqual(p2.abstractObject)
}

func (o PointerInsensitive) String() string {
	return o.extremeString()
}
