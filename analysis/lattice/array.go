package lattice

import (
	"fmt"
	"strings"

	E "github.com/fbbotero-aws/cbmc/analysis/expr"
	T "github.com/fbbotero-aws/cbmc/analysis/types"

	"github.com/benbjohnson/immutable"
)

// ArraySensitive is the element-sensitive array abstraction: one
// abstract object per index.
type ArraySensitive struct {
	abstractObject
	elems *immutable.Map[int64, AbstractObject]
}

// NewArraySensitive creates an element-sensitive array object in the
// given extreme state. Elements are not materialized; the extreme state
// covers every index.
func NewArraySensitive(typ T.Type, top, bottom bool) ArraySensitive {
	return ArraySensitive{makeBase(typ, top, bottom), immutable.NewMap[int64, AbstractObject](nil)}
}

// ArraySensitiveFromExpr creates an element-sensitive array derived
// from the given expression. Array literals recurse into every element
// through the builder; symbols inherit the elements of their current
// binding when it is itself an element-sensitive array.
func ArraySensitiveFromExpr(e E.Expr, env Environment, res T.Resolver, build Builder) ArraySensitive {
	typ := res.Follow(e.Type())
	at, ok := typ.(*T.Array)
	if !ok {
		panic(errPatternMatch(typ))
	}

	if lit, ok := e.(E.ArrayLit); ok && int64(lit.NumElems()) == at.Len() {
		elems := immutable.NewMap[int64, AbstractObject](nil)
		elemType := res.Follow(at.Elem())
		for i := 0; i < lit.NumElems(); i++ {
			elemObj := build.Build(elemType, false, false, lit.Elem(i), env, res)
			elems = elems.Set(int64(i), elemObj)
		}
		return ArraySensitive{makeBase(typ, false, false), elems}
	}

	if bound, ok := resolveBinding(e, env); ok {
		if inner, ok := bound.Unwrap().(ArraySensitive); ok && inner.IsKnown() {
			return ArraySensitive{makeBase(typ, false, false), inner.elems}
		}
	}

	return NewArraySensitive(typ, true, false)
}

// IsKnown is true when the object tracks elements individually.
func (o ArraySensitive) IsKnown() bool {
	return !o.top && !o.bottom
}

// Elem retrieves the abstract object tracked for the given index.
func (o ArraySensitive) Elem(i int64) (AbstractObject, bool) {
	return o.elems.Get(i)
}

// NumElems retrieves the number of tracked elements.
func (o ArraySensitive) NumElems() int {
	return o.elems.Len()
}

// ArraySensitive safely converts an element-sensitive array object.
func (o ArraySensitive) ArraySensitive() ArraySensitive {
	return o
}

// Unwrap is the identity for undecorated objects.
func (o ArraySensitive) Unwrap() AbstractObject {
	return o
}

// Equal checks value equality with another abstract object.
func (o ArraySensitive) Equal(p AbstractObject) bool {
	p2, ok := p.(ArraySensitive)
	if !ok || !o.baseEqual(p2.abstractObject) || o.elems.Len() != p2.elems.Len() {
		return false
	}
	iter := o.elems.Iterator()
	for !iter.Done() {
		i, obj, _ := iter.Next()
		other, found := p2.elems.Get(i)
		if !found || !obj.Equal(other) {
			return false
		}
	}
	return true
}

func (o ArraySensitive) String() string {
	if !o.IsKnown() {
		return o.extremeString()
	}

	strs := []string{}
	if at, isArray := o.typ.(*T.Array); isArray {
		for i := int64(0); i < at.Len(); i++ {
			if obj, found := o.elems.Get(i); found {
				strs = append(strs, fmt.Sprintf("%s: %s", colorize.Field(i), obj))
			}
		}
	}
	return "[ " + strings.Join(strs, ", ") + " ]"
}

// ArrayInsensitive collapses a whole array into one two-value
// approximation.
type ArrayInsensitive struct {
	abstractObject
}

// NewArrayInsensitive creates an element-insensitive array object in
// the given extreme state.
func NewArrayInsensitive(typ T.Type, top, bottom bool) ArrayInsensitive {
	return ArrayInsensitive{makeBase(typ, top, bottom)}
}

// ArrayInsensitiveFromExpr creates an element-insensitive array object
// for the given expression. No substructure is tracked, so any
// reachable value is ⊤.
func ArrayInsensitiveFromExpr(e E.Expr, env Environment, res T.Resolver) ArrayInsensitive {
	return NewArrayInsensitive(res.Follow(e.Type()), true, false)
}

// ArrayInsensitive safely converts an element-insensitive array object.
func (o ArrayInsensitive) ArrayInsensitive() ArrayInsensitive {
	return o
}

// Unwrap is the identity for undecorated objects.
func (o ArrayInsensitive) Unwrap() AbstractObject {
	return o
}

// Equal checks value equality with another abstract object.
func (o ArrayInsensitive) Equal(p AbstractObject) bool {
	p2, ok := p.(ArrayInsensitive)
	return ok && o.baseEqual(p2.abstractObject)
}

func (o ArrayInsensitive) String() string {
	return o.extremeString()
}
