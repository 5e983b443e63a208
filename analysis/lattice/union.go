package lattice

import (
	E "github.com/fbbotero-aws/cbmc/analysis/expr"
	T "github.com/fbbotero-aws/cbmc/analysis/types"
)

// UnionInsensitive collapses a union into one two-value approximation.
// Unions have no sensitive counterpart yet; a field-sensitive union
// variant is a known extension point of the domain.
type UnionInsensitive struct {
	abstractObject
}

// NewUnionInsensitive creates a union object in the given extreme state.
func NewUnionInsensitive(typ T.Type, top, bottom bool) UnionInsensitive {
	return UnionInsensitive{makeBase(typ, top, bottom)}
}

// UnionInsensitiveFromExpr creates a union object for the given
// expression. No substructure is tracked, so any reachable value is ⊤.
func UnionInsensitiveFromExpr(e E.Expr, env Environment, res T.Resolver) UnionInsensitive {
	return NewUnionInsensitive(res.Follow(e.Type()), true, false)
}

// UnionInsensitive safely converts a union object.
func (o UnionInsensitive) UnionInsensitive() UnionInsensitive {
	return o
}

// Unwrap is the identity for undecorated objects.
func (o UnionInsensitive) Unwrap() AbstractObject {
	return o
}

// Equal checks value equality with another abstract object.
func (o UnionInsensitive) Equal(p AbstractObject) bool {
	p2, ok := p.(UnionInsensitive)
	return ok && o.baseEqual(p2.abstractObject)
}

func (o UnionInsensitive) String() string {
	return o.extremeString()
}
