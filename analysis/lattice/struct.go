package lattice

import (
	"strings"

	E "github.com/fbbotero-aws/cbmc/analysis/expr"
	T "github.com/fbbotero-aws/cbmc/analysis/types"

	"github.com/benbjohnson/immutable"
)

// StructSensitive is the field-sensitive struct abstraction: one
// abstract object per field, keyed by field name.
type StructSensitive struct {
	abstractObject
	fields *immutable.Map[string, AbstractObject]
}

// NewStructSensitive creates a field-sensitive struct object in the
// given extreme state. Fields are not materialized; the extreme state
// covers every field.
func NewStructSensitive(typ T.Type, top, bottom bool) StructSensitive {
	return StructSensitive{makeBase(typ, top, bottom), immutable.NewMap[string, AbstractObject](nil)}
}

// StructSensitiveFromExpr creates a field-sensitive struct derived from
// the given expression. Struct literals recurse into every field
// through the builder; symbols inherit the fields of their current
// binding when it is itself a field-sensitive struct.
func StructSensitiveFromExpr(e E.Expr, env Environment, res T.Resolver, build Builder) StructSensitive {
	typ := res.Follow(e.Type())
	st, ok := typ.(*T.Struct)
	if !ok {
		panic(errPatternMatch(typ))
	}

	if lit, ok := e.(E.StructLit); ok && lit.NumFields() == st.NumFields() {
		fields := immutable.NewMap[string, AbstractObject](nil)
		for i := 0; i < st.NumFields(); i++ {
			f := st.Field(i)
			fieldObj := build.Build(res.Follow(f.Type), false, false, lit.Field(i), env, res)
			fields = fields.Set(f.Name, fieldObj)
		}
		return StructSensitive{makeBase(typ, false, false), fields}
	}

	if bound, ok := resolveBinding(e, env); ok {
		if inner, ok := bound.Unwrap().(StructSensitive); ok && inner.IsKnown() {
			return StructSensitive{makeBase(typ, false, false), inner.fields}
		}
	}

	return NewStructSensitive(typ, true, false)
}

// IsKnown is true when the object tracks fields individually.
func (o StructSensitive) IsKnown() bool {
	return !o.top && !o.bottom
}

// Field retrieves the abstract object tracked for the named field.
func (o StructSensitive) Field(name string) (AbstractObject, bool) {
	return o.fields.Get(name)
}

// ForEachField applies the given procedure to every tracked field.
func (o StructSensitive) ForEachField(do func(name string, obj AbstractObject)) {
	iter := o.fields.Iterator()
	for !iter.Done() {
		name, obj, _ := iter.Next()
		do(name, obj)
	}
}

// StructSensitive safely converts a field-sensitive struct object.
func (o StructSensitive) StructSensitive() StructSensitive {
	return o
}

// Unwrap is the identity for undecorated objects.
func (o StructSensitive) Unwrap() AbstractObject {
	return o
}

// Equal checks value equality with another abstract object.
func (o StructSensitive) Equal(p AbstractObject) bool {
	p2, ok := p.(StructSensitive)
	if !ok || !o.baseEqual(p2.abstractObject) || o.fields.Len() != p2.fields.Len() {
		return false
	}
	iter := o.fields.Iterator()
	for !iter.Done() {
		name, obj, _ := iter.Next()
		other, found := p2.fields.Get(name)
		if !found || !obj.Equal(other) {
			return false
		}
	}
	return true
}

func (o StructSensitive) String() string {
	if !o.IsKnown() {
		return o.extremeString()
	}

	st, isStruct := o.typ.(*T.Struct)
	strs := []string{}
	if isStruct {
		// Field declaration order keeps the rendering deterministic.
		for i := 0; i < st.NumFields(); i++ {
			name := st.Field(i).Name
			if obj, found := o.fields.Get(name); found {
				strs = append(strs, colorize.Field(name)+": "+obj.String())
			}
		}
	}
	return "{ " + strings.Join(strs, ", ") + " }"
}

// StructInsensitive collapses a whole struct into one two-value
// approximation.
type StructInsensitive struct {
	abstractObject
}

// NewStructInsensitive creates a field-insensitive struct object in the
// given extreme state.
func NewStructInsensitive(typ T.Type, top, bottom bool) StructInsensitive {
	return StructInsensitive{makeBase(typ, top, bottom)}
}

// StructInsensitiveFromExpr creates a field-insensitive struct object
// for the given expression. No substructure is tracked, so any
// reachable value is ⊤.
func StructInsensitiveFromExpr(e E.Expr, env Environment, res T.Resolver) StructInsensitive {
	return NewStructInsensitive(res.Follow(e.Type()), true, false)
}

// StructInsensitive safely converts a field-insensitive struct object.
func (o StructInsensitive) StructInsensitive() StructInsensitive {
	return o
}

// Unwrap is the identity for undecorated objects.
func (o StructInsensitive) Unwrap() AbstractObject {
	return o
}

// Equal checks value equality with another abstract object.
func (o StructInsensitive) Equal(p AbstractObject) bool {
	p2, ok := p.(StructInsensitive)
	return ok && o.baseEqual(p2.abstractObject)
}

func (o StructInsensitive) String() string {
	return o.extremeString()
}
