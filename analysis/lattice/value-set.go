package lattice

import (
	"fmt"
	"sort"
	"strings"

	E "github.com/fbbotero-aws/cbmc/analysis/expr"
	T "github.com/fbbotero-aws/cbmc/analysis/types"
)

// ValueSet is the value-set abstraction for scalars: a finite set of
// possible concrete values. The internal set is never mutated after
// construction, so derived objects share it by reference; Values
// returns a fresh slice.
type ValueSet struct {
	abstractObject
	values map[any]bool
}

// NewValueSet creates a value-set object in the given extreme state.
func NewValueSet(typ T.Type, top, bottom bool) ValueSet {
	return ValueSet{makeBase(typ, top, bottom), nil}
}

// ValueSetFromExpr creates a value set derived from the given
// expression. Literals yield a singleton set; symbols inherit the set
// of their current binding when it is itself a known value set.
func ValueSetFromExpr(e E.Expr, env Environment, res T.Resolver) ValueSet {
	typ := res.Follow(e.Type())

	if c, ok := e.(E.Constant); ok {
		return ValueSet{makeBase(typ, false, false), map[any]bool{c.Value(): true}}
	}

	if bound, ok := resolveBinding(e, env); ok {
		if inner, ok := bound.Unwrap().(ValueSet); ok && inner.IsKnown() {
			return ValueSet{makeBase(typ, false, false), inner.values}
		}
	}

	return NewValueSet(typ, true, false)
}

// IsKnown is true when the object tracks a finite set of values.
func (o ValueSet) IsKnown() bool {
	return !o.top && !o.bottom
}

// Size retrieves the number of tracked values.
func (o ValueSet) Size() int {
	return len(o.values)
}

// Contains checks membership of a concrete value.
func (o ValueSet) Contains(v any) bool {
	return o.values[v]
}

// Values retrieves the tracked values in a deterministic order.
func (o ValueSet) Values() []any {
	vs := make([]any, 0, len(o.values))
	for v := range o.values {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool {
		return fmt.Sprintf("%v", vs[i]) < fmt.Sprintf("%v", vs[j])
	})
	return vs
}

// ValueSet safely converts a value-set object.
func (o ValueSet) ValueSet() ValueSet {
	return o
}

// Unwrap is the identity for undecorated objects.
func (o ValueSet) Unwrap() AbstractObject {
	return o
}

// Equal checks value equality with another abstract object.
func (o ValueSet) Equal(p AbstractObject) bool {
	p2, ok := p.(ValueSet)
	if !ok || !o.baseEqual(p2.abstractObject) || len(o.values) != len(p2.values) {
		return false
	}
	for v := range o.values {
		if !p2.values[v] {
			return false
		}
	}
	return true
}

func (o ValueSet) String() string {
	if !o.IsKnown() {
		return o.extremeString()
	}
	strs := make([]string, 0, len(o.values))
	for _, v := range o.Values() {
		strs = append(strs, colorize.Const(fmt.Sprintf("%v", v)))
	}
	if len(strs) == 0 {
		return colorize.Element("∅")
	}
	return "{ " + strings.Join(strs, ", ") + " }"
}
