package types

// Resolver follows a type to its structural definition. It is the only
// type-resolution operation the domain construction layer relies on.
type Resolver interface {
	Follow(t Type) Type
}

// Namespace is the standard resolver. It resolves chains of named types
// to the structural type at the bottom.
type Namespace struct{}

// NewNamespace creates an empty namespace.
func NewNamespace() Namespace {
	return Namespace{}
}

// Follow resolves named types to their structural definition.
// Non-named types are returned unchanged.
func (Namespace) Follow(t Type) Type {
	for {
		n, ok := t.(*Named)
		if !ok {
			return t
		}
		t = n.Underlying()
	}
}

// Identical checks structural type equality. Named types are compared
// by name only; the caller is expected to Follow first when structural
// comparison through names is wanted.
func Identical(t1, t2 Type) bool {
	if t1 == t2 {
		return true
	}

	switch t1 := t1.(type) {
	case *Basic:
		t2, ok := t2.(*Basic)
		return ok && t1.kind == t2.kind
	case *Array:
		t2, ok := t2.(*Array)
		return ok && t1.length == t2.length && Identical(t1.elem, t2.elem)
	case *Pointer:
		t2, ok := t2.(*Pointer)
		return ok && Identical(t1.elem, t2.elem)
	case *Struct:
		t2, ok := t2.(*Struct)
		return ok && identicalFields(t1.fields, t2.fields)
	case *Union:
		t2, ok := t2.(*Union)
		return ok && identicalFields(t1.fields, t2.fields)
	case *Named:
		t2, ok := t2.(*Named)
		return ok && t1.name == t2.name
	}
	return false
}

func identicalFields(fs1, fs2 []Field) bool {
	if len(fs1) != len(fs2) {
		return false
	}
	for i := range fs1 {
		if fs1[i].Name != fs2[i].Name || !Identical(fs1[i].Type, fs2[i].Type) {
			return false
		}
	}
	return true
}
