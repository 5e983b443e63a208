// Package lattice implements the abstract object variants of the
// variable-sensitivity domain, together with the context wrappers that
// decorate them. Every variant satisfies the shared construction
// contract: it is constructible in a lattice-extreme state from
// (type, top, bottom), and in a derived state from
// (expression, environment, resolver).
//
// Abstract objects are structurally immutable after construction.
// Program points share them freely; any refinement produces a fresh
// object.
package lattice

import (
	"errors"
	"fmt"

	E "github.com/fbbotero-aws/cbmc/analysis/expr"
	T "github.com/fbbotero-aws/cbmc/analysis/types"
	"github.com/fbbotero-aws/cbmc/utils"

	"github.com/fatih/color"
)

var colorize = struct {
	Element func(...interface{}) string
	Const   func(...interface{}) string
	Field   func(...interface{}) string
	Attr    func(...interface{}) string
}{
	Element: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
	Const: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiWhite).SprintFunc())(is...)
	},
	Field: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgGreen).SprintFunc())(is...)
	},
	Attr: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiRed).SprintFunc())(is...)
	},
}

var (
	errUnsupportedTypeConversion = errors.New("UnsupportedTypeConversion")
	errTopAndBottom              = errors.New("ContractViolation: abstract object constructed as both top and bottom")
	errPatternMatch              = func(v interface{}) error {
		return fmt.Errorf("invalid pattern match: %v %T", v, v)
	}
)

// Environment provides read-only lookup of an expression's current
// abstract binding. The concrete implementation lives outside this
// package; derived-mode constructors only ever read through it.
type Environment interface {
	Eval(e E.Expr) (AbstractObject, bool)
}

// Builder constructs an abstract object for the given type, in either
// extreme or derived mode. Aggregate variants recurse through it for
// their fields, elements and pointees. The domain object factory is the
// canonical implementation.
type Builder interface {
	Build(t T.Type, top, bottom bool, e E.Expr, env Environment, res T.Resolver) AbstractObject
}

// AbstractObject is the interface implemented by every member of the
// variable-sensitivity domain.
type AbstractObject interface {
	// Type retrieves the structural program type the object approximates.
	Type() T.Type
	// IsTop is true when the object carries no information.
	IsTop() bool
	// IsBottom is true when the object represents an unreachable value.
	IsBottom() bool

	// Type conversion API. Conversion to a mismatching variant panics.
	TwoValue() TwoValue
	Constant() Constant
	Interval() Interval
	ValueSet() ValueSet
	StructSensitive() StructSensitive
	StructInsensitive() StructInsensitive
	ArraySensitive() ArraySensitive
	ArrayInsensitive() ArrayInsensitive
	PointerSensitive() PointerSensitive
	PointerInsensitive() PointerInsensitive
	UnionInsensitive() UnionInsensitive
	Context() Context

	// Unwrap peels off the context decoration, if any.
	Unwrap() AbstractObject

	// Equal checks value equality of abstract objects, including
	// context metadata.
	Equal(AbstractObject) bool

	String() string
}

// abstractObject is the basis for every variant. It carries the
// approximated type and the two-value component every variant shares.
type abstractObject struct {
	typ    T.Type
	top    bool
	bottom bool
}

func makeBase(typ T.Type, top, bottom bool) abstractObject {
	if top && bottom {
		panic(errTopAndBottom)
	}
	return abstractObject{typ, top, bottom}
}

func (o abstractObject) Type() T.Type {
	return o.typ
}

func (o abstractObject) IsTop() bool {
	return o.top
}

func (o abstractObject) IsBottom() bool {
	return o.bottom
}

// baseEqual compares the components shared by every variant.
func (o abstractObject) baseEqual(p abstractObject) bool {
	return o.top == p.top && o.bottom == p.bottom && T.Identical(o.typ, p.typ)
}

// extremeString renders the two-value component.
func (o abstractObject) extremeString() string {
	if o.bottom {
		return colorize.Element("⊥")
	}
	return colorize.Element("⊤")
}

func (abstractObject) TwoValue() TwoValue {
	panic(errUnsupportedTypeConversion)
}

func (abstractObject) Constant() Constant {
	panic(errUnsupportedTypeConversion)
}

func (abstractObject) Interval() Interval {
	panic(errUnsupportedTypeConversion)
}

func (abstractObject) ValueSet() ValueSet {
	panic(errUnsupportedTypeConversion)
}

func (abstractObject) StructSensitive() StructSensitive {
	panic(errUnsupportedTypeConversion)
}

func (abstractObject) StructInsensitive() StructInsensitive {
	panic(errUnsupportedTypeConversion)
}

func (abstractObject) ArraySensitive() ArraySensitive {
	panic(errUnsupportedTypeConversion)
}

func (abstractObject) ArrayInsensitive() ArrayInsensitive {
	panic(errUnsupportedTypeConversion)
}

func (abstractObject) PointerSensitive() PointerSensitive {
	panic(errUnsupportedTypeConversion)
}

func (abstractObject) PointerInsensitive() PointerInsensitive {
	panic(errUnsupportedTypeConversion)
}

func (abstractObject) UnionInsensitive() UnionInsensitive {
	panic(errUnsupportedTypeConversion)
}

func (abstractObject) Context() Context {
	panic(errUnsupportedTypeConversion)
}

// resolveBinding follows a symbol to its current abstract binding.
// Non-symbol expressions and unbound symbols yield no binding.
func resolveBinding(e E.Expr, env Environment) (AbstractObject, bool) {
	if s, ok := e.(E.Symbol); ok {
		return env.Eval(s)
	}
	return nil, false
}
