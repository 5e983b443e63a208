// Package types models the structural types of the analyzed program.
// The API deliberately follows the shape of go/types: every type answers
// Underlying, and symbolic (named) types are resolved through a Namespace.
// Unlike go/types it models the verified language, which has fixed-length
// arrays, unions and machine-width scalars.
package types

import (
	"fmt"
	"strings"
)

// Type is the interface implemented by every structural type.
type Type interface {
	// Underlying returns the structural type underneath a named type.
	// For all other types it is the identity.
	Underlying() Type
	String() string
}

// BasicKind enumerates the scalar type categories.
type BasicKind int

const (
	Invalid BasicKind = iota
	Bool
	Char
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

var basicNames = [...]string{
	Invalid: "invalid",
	Bool:    "bool",
	Char:    "char",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
}

// Basic is a scalar type.
type Basic struct {
	kind BasicKind
}

// MakeBasic creates the scalar type of the given kind.
func MakeBasic(kind BasicKind) *Basic {
	return &Basic{kind}
}

// Kind retrieves the scalar kind.
func (b *Basic) Kind() BasicKind {
	return b.kind
}

func (b *Basic) Underlying() Type {
	return b
}

func (b *Basic) String() string {
	return basicNames[b.kind]
}

// Array is a fixed-length array type.
type Array struct {
	elem   Type
	length int64
}

// MakeArray creates an array type with the given element type and length.
func MakeArray(elem Type, length int64) *Array {
	return &Array{elem, length}
}

// Elem retrieves the element type.
func (a *Array) Elem() Type {
	return a.elem
}

// Len retrieves the array length.
func (a *Array) Len() int64 {
	return a.length
}

func (a *Array) Underlying() Type {
	return a
}

func (a *Array) String() string {
	return fmt.Sprintf("[%d]%s", a.length, a.elem)
}

// Pointer is a pointer type.
type Pointer struct {
	elem Type
}

// MakePointer creates a pointer type with the given pointee type.
func MakePointer(elem Type) *Pointer {
	return &Pointer{elem}
}

// Elem retrieves the pointee type.
func (p *Pointer) Elem() Type {
	return p.elem
}

func (p *Pointer) Underlying() Type {
	return p
}

func (p *Pointer) String() string {
	return "*" + p.elem.String()
}

// Field is a named component of a struct or union type.
type Field struct {
	Name string
	Type Type
}

// Struct is a record type with named fields.
type Struct struct {
	fields []Field
}

// MakeStruct creates a struct type from the given fields.
func MakeStruct(fields ...Field) *Struct {
	return &Struct{fields}
}

// NumFields retrieves the number of fields.
func (s *Struct) NumFields() int {
	return len(s.fields)
}

// Field retrieves the i'th field.
func (s *Struct) Field(i int) Field {
	return s.fields[i]
}

func (s *Struct) Underlying() Type {
	return s
}

func (s *Struct) String() string {
	return "struct" + fieldString(s.fields)
}

// Union is a record type whose fields share storage.
type Union struct {
	fields []Field
}

// MakeUnion creates a union type from the given fields.
func MakeUnion(fields ...Field) *Union {
	return &Union{fields}
}

// NumFields retrieves the number of fields.
func (u *Union) NumFields() int {
	return len(u.fields)
}

// Field retrieves the i'th field.
func (u *Union) Field(i int) Field {
	return u.fields[i]
}

func (u *Union) Underlying() Type {
	return u
}

func (u *Union) String() string {
	return "union" + fieldString(u.fields)
}

func fieldString(fields []Field) string {
	strs := make([]string, 0, len(fields))
	for _, f := range fields {
		strs = append(strs, f.Name+" "+f.Type.String())
	}
	return "{ " + strings.Join(strs, "; ") + " }"
}

// Named is a symbolic type standing for another (possibly named) type.
type Named struct {
	name       string
	underlying Type
}

// MakeNamed creates a named type aliasing the given type.
func MakeNamed(name string, underlying Type) *Named {
	return &Named{name, underlying}
}

// Name retrieves the symbolic name.
func (n *Named) Name() string {
	return n.name
}

// Underlying resolves the named type one step.
func (n *Named) Underlying() Type {
	return n.underlying
}

func (n *Named) String() string {
	return n.name
}
