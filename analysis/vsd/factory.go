package vsd

import (
	"fmt"

	E "github.com/fbbotero-aws/cbmc/analysis/expr"
	L "github.com/fbbotero-aws/cbmc/analysis/lattice"
	T "github.com/fbbotero-aws/cbmc/analysis/types"
)

var (
	errTopAndBottom    = fmt.Errorf("ContractViolation: abstract object requested as both top and bottom")
	errUnknownCategory = func(t T.Type) error {
		return fmt.Errorf("ContractViolation: unrecognized structural type category %v %T", t, t)
	}
	errTypeMismatch = func(t T.Type, e E.Expr) error {
		return fmt.Errorf("ContractViolation: type %s does not match the resolved type of %s", t, e)
	}
)

// ObjectFactory builds abstract objects according to the sensitivity
// configuration captured at construction time. It holds no other state;
// calls are pure with respect to the factory, and independent analysis
// runs each hold their own instance.
type ObjectFactory struct {
	conf Config
}

// ConfiguredWith creates an object factory for the given configuration.
func ConfiguredWith(conf Config) *ObjectFactory {
	return &ObjectFactory{conf}
}

// Config retrieves the captured configuration.
func (f *ObjectFactory) Config() Config {
	return f.conf
}

// GetAbstractObject builds the abstract object approximating a variable
// of the given type.
//
// With top or bottom set, the object is built in that lattice-extreme
// state and the environment is never read. With neither set, the object
// is derived from the current binding of e in the environment; e must
// then be present and its resolved type must structurally equal the
// given type. Violations of these preconditions are caller bugs and
// panic rather than producing an unsound object.
func (f *ObjectFactory) GetAbstractObject(
	t T.Type,
	top, bottom bool,
	e E.Expr,
	env L.Environment,
	res T.Resolver,
) L.AbstractObject {
	if top && bottom {
		panic(errTopAndBottom)
	}

	followed := res.Follow(t)
	if !top && !bottom {
		if e == nil {
			panic(errTypeMismatch(t, e))
		}
		if !T.Identical(followed, res.Follow(e.Type())) {
			panic(errTypeMismatch(t, e))
		}
	}

	base := f.buildBase(followed, top, bottom, e, env, res)
	return f.compose(base, followed, top, bottom, e, env, res)
}

// Build makes the factory usable as the recursion point for aggregate
// substructure: nested fields, elements and pointees are constructed
// through the same classification and composition pipeline.
func (f *ObjectFactory) Build(
	t T.Type,
	top, bottom bool,
	e E.Expr,
	env L.Environment,
	res T.Resolver,
) L.AbstractObject {
	return f.GetAbstractObject(t, top, bottom, e, env, res)
}

// buildBase instantiates the variant selected by the classifier, in
// extreme or derived mode.
func (f *ObjectFactory) buildBase(
	t T.Type,
	top, bottom bool,
	e E.Expr,
	env L.Environment,
	res T.Resolver,
) L.AbstractObject {
	extreme := top || bottom

	switch Classify(t, f.conf) {
	case TWO_VALUE:
		if extreme {
			return L.NewTwoValue(t, top, bottom)
		}
		return L.TwoValueFromExpr(e, env, res)
	case CONSTANT:
		if extreme {
			return L.NewConstant(t, top, bottom)
		}
		return L.ConstantFromExpr(e, env, res)
	case INTERVAL:
		if extreme {
			return L.NewInterval(t, top, bottom)
		}
		return L.IntervalFromExpr(e, env, res)
	case VALUE_SET:
		if extreme {
			return L.NewValueSet(t, top, bottom)
		}
		return L.ValueSetFromExpr(e, env, res)
	case ARRAY_SENSITIVE:
		if extreme {
			return L.NewArraySensitive(t, top, bottom)
		}
		return L.ArraySensitiveFromExpr(e, env, res, f)
	case ARRAY_INSENSITIVE:
		if extreme {
			return L.NewArrayInsensitive(t, top, bottom)
		}
		return L.ArrayInsensitiveFromExpr(e, env, res)
	case POINTER_SENSITIVE:
		if extreme {
			return L.NewPointerSensitive(t, top, bottom)
		}
		return L.PointerSensitiveFromExpr(e, env, res)
	case POINTER_INSENSITIVE:
		if extreme {
			return L.NewPointerInsensitive(t, top, bottom)
		}
		return L.PointerInsensitiveFromExpr(e, env, res)
	case STRUCT_SENSITIVE:
		if extreme {
			return L.NewStructSensitive(t, top, bottom)
		}
		return L.StructSensitiveFromExpr(e, env, res, f)
	case STRUCT_INSENSITIVE:
		if extreme {
			return L.NewStructInsensitive(t, top, bottom)
		}
		return L.StructInsensitiveFromExpr(e, env, res)
	case UNION_INSENSITIVE:
		if extreme {
			return L.NewUnionInsensitive(t, top, bottom)
		}
		return L.UnionInsensitiveFromExpr(e, env, res)
	default:
		panic(errUnknownCategory(t))
	}
}

// compose applies at most one context-tracking decorator to a freshly
// built abstract object. Data dependency tracking wins over last-write
// tracking; validation at configuration build time guarantees the two
// are never both requested. The wrapper is seeded with the same
// extreme/derived arguments as the inner object, so metadata and value
// are never in inconsistent modes.
func (f *ObjectFactory) compose(
	base L.AbstractObject,
	t T.Type,
	top, bottom bool,
	e E.Expr,
	env L.Environment,
	res T.Resolver,
) L.AbstractObject {
	extreme := top || bottom

	switch {
	case f.conf.Context.DataDependency:
		if extreme {
			return L.WrapDataDependency(base, t, top, bottom)
		}
		return L.WrapDataDependencyFromExpr(base, e, env, res)
	case f.conf.Context.LastWrite:
		if extreme {
			return L.WrapWriteLocation(base, t, top, bottom)
		}
		return L.WrapWriteLocationFromExpr(base, e, env, res)
	default:
		return base
	}
}
