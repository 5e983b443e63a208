// Package expr models the program expressions the domain constructs
// abstract objects from: symbols bound in the abstract environment,
// scalar constants, aggregate literals and address-of expressions.
package expr

import (
	"fmt"
	"strings"

	T "github.com/fbbotero-aws/cbmc/analysis/types"
)

// Expr is the interface implemented by every expression.
type Expr interface {
	Type() T.Type
	String() string
}

// Symbol is a reference to a program variable.
type Symbol struct {
	name string
	typ  T.Type
}

// MakeSymbol creates a symbol expression with the given name and type.
func MakeSymbol(name string, typ T.Type) Symbol {
	return Symbol{name, typ}
}

// Name retrieves the symbol name.
func (s Symbol) Name() string {
	return s.name
}

func (s Symbol) Type() T.Type {
	return s.typ
}

func (s Symbol) String() string {
	return s.name
}

// Constant is a scalar literal.
type Constant struct {
	value any
	typ   T.Type
}

// MakeConstant creates a constant expression with the given value and type.
func MakeConstant(value any, typ T.Type) Constant {
	return Constant{value, typ}
}

// Value retrieves the constant value.
func (c Constant) Value() any {
	return c.value
}

func (c Constant) Type() T.Type {
	return c.typ
}

func (c Constant) String() string {
	return fmt.Sprintf("%v", c.value)
}

// StructLit is a struct literal with one expression per field, in field
// declaration order.
type StructLit struct {
	fields []Expr
	typ    T.Type
}

// MakeStructLit creates a struct literal of the given type.
func MakeStructLit(typ T.Type, fields ...Expr) StructLit {
	return StructLit{fields, typ}
}

// NumFields retrieves the number of field initializers.
func (s StructLit) NumFields() int {
	return len(s.fields)
}

// Field retrieves the i'th field initializer.
func (s StructLit) Field(i int) Expr {
	return s.fields[i]
}

func (s StructLit) Type() T.Type {
	return s.typ
}

func (s StructLit) String() string {
	strs := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		strs = append(strs, f.String())
	}
	return s.typ.String() + "{" + strings.Join(strs, ", ") + "}"
}

// ArrayLit is an array literal with one expression per element.
type ArrayLit struct {
	elems []Expr
	typ   T.Type
}

// MakeArrayLit creates an array literal of the given type.
func MakeArrayLit(typ T.Type, elems ...Expr) ArrayLit {
	return ArrayLit{elems, typ}
}

// NumElems retrieves the number of element initializers.
func (a ArrayLit) NumElems() int {
	return len(a.elems)
}

// Elem retrieves the i'th element initializer.
func (a ArrayLit) Elem(i int) Expr {
	return a.elems[i]
}

func (a ArrayLit) Type() T.Type {
	return a.typ
}

func (a ArrayLit) String() string {
	strs := make([]string, 0, len(a.elems))
	for _, e := range a.elems {
		strs = append(strs, e.String())
	}
	return a.typ.String() + "{" + strings.Join(strs, ", ") + "}"
}

// AddressOf takes the address of a symbol.
type AddressOf struct {
	target Symbol
	typ    T.Type
}

// MakeAddressOf creates an address-of expression over the given symbol.
func MakeAddressOf(target Symbol) AddressOf {
	return AddressOf{target, T.MakePointer(target.Type())}
}

// Target retrieves the symbol whose address is taken.
func (a AddressOf) Target() Symbol {
	return a.target
}

func (a AddressOf) Type() T.Type {
	return a.typ
}

func (a AddressOf) String() string {
	return "&" + a.target.String()
}
