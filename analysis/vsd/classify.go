package vsd

import (
	"strconv"

	T "github.com/fbbotero-aws/cbmc/analysis/types"
)

// OBJECT_TYPE enumerates the abstract object variants the classifier
// can select. The set is closed; every structural type category maps to
// exactly one variant under a given configuration.
type OBJECT_TYPE int

const (
	TWO_VALUE OBJECT_TYPE = iota
	CONSTANT
	INTERVAL
	ARRAY_SENSITIVE
	ARRAY_INSENSITIVE
	POINTER_SENSITIVE
	POINTER_INSENSITIVE
	STRUCT_SENSITIVE
	STRUCT_INSENSITIVE
	// TODO: plug in UNION_SENSITIVE here
	UNION_INSENSITIVE
	VALUE_SET
)

func (ot OBJECT_TYPE) String() string {
	switch ot {
	case TWO_VALUE:
		return "TwoValue"
	case CONSTANT:
		return "Constant"
	case INTERVAL:
		return "Interval"
	case ARRAY_SENSITIVE:
		return "ArraySensitive"
	case ARRAY_INSENSITIVE:
		return "ArrayInsensitive"
	case POINTER_SENSITIVE:
		return "PointerSensitive"
	case POINTER_INSENSITIVE:
		return "PointerInsensitive"
	case STRUCT_SENSITIVE:
		return "StructSensitive"
	case STRUCT_INSENSITIVE:
		return "StructInsensitive"
	case UNION_INSENSITIVE:
		return "UnionInsensitive"
	case VALUE_SET:
		return "ValueSet"
	default:
		return "Unknown object type " + strconv.Itoa((int)(ot))
	}
}

// Classify decides which abstract object variant represents a variable
// of the given structural type under the given configuration. It is a
// pure, total function: aggregate categories are resolved by their
// sensitivity flag alone, scalars by advanced sensitivity precedence
// (value sets win over intervals, intervals over constants, and plain
// two-value tracking is the fallback). An unresolved named type or an
// unknown category indicates a caller bug and panics.
func Classify(t T.Type, conf Config) OBJECT_TYPE {
	switch t.(type) {
	case *T.Array:
		if conf.Primitive.Arrays {
			return ARRAY_SENSITIVE
		}
		return ARRAY_INSENSITIVE
	case *T.Pointer:
		if conf.Primitive.Pointers {
			return POINTER_SENSITIVE
		}
		return POINTER_INSENSITIVE
	case *T.Struct:
		if conf.Primitive.Structs {
			return STRUCT_SENSITIVE
		}
		return STRUCT_INSENSITIVE
	case *T.Union:
		// Unions have no sensitive variant yet.
		return UNION_INSENSITIVE
	case *T.Basic:
		switch {
		case conf.Advanced.ValueSet:
			return VALUE_SET
		case conf.Advanced.NewValueSet:
			return VALUE_SET
		case conf.Advanced.Intervals:
			// Intervals only make sense for numeric scalars; the
			// remaining scalar kinds keep constant propagation.
			if isNumeric(t.(*T.Basic)) {
				return INTERVAL
			}
			return CONSTANT
		default:
			return TWO_VALUE
		}
	default:
		panic(errUnknownCategory(t))
	}
}

func isNumeric(b *T.Basic) bool {
	return b.Kind() != T.Bool
}
