package lattice

import (
	"strconv"

	E "github.com/fbbotero-aws/cbmc/analysis/expr"
	T "github.com/fbbotero-aws/cbmc/analysis/types"
)

type (
	// Bound is one end of an interval. It is either finite or one of
	// the two infinities.
	Bound interface {
		// Leq compares interval bounds as members of ℤ ∪ {-∞, ∞}.
		Leq(Bound) bool
		String() string
	}

	// FiniteBound is an interval bound in ℤ.
	FiniteBound int64

	// PlusInfinity is the bound ∞.
	PlusInfinity struct{}

	// MinusInfinity is the bound -∞.
	MinusInfinity struct{}
)

func (b FiniteBound) Leq(o Bound) bool {
	switch o := o.(type) {
	case FiniteBound:
		return b <= o
	case PlusInfinity:
		return true
	case MinusInfinity:
		return false
	}
	panic(errPatternMatch(o))
}

func (b FiniteBound) String() string {
	return strconv.FormatInt(int64(b), 10)
}

func (PlusInfinity) Leq(o Bound) bool {
	_, isPlus := o.(PlusInfinity)
	return isPlus
}

func (PlusInfinity) String() string {
	return "∞"
}

func (MinusInfinity) Leq(Bound) bool {
	return true
}

func (MinusInfinity) String() string {
	return "-∞"
}

// Interval is the interval abstraction for numeric scalars. Any
// interval consists of two bounds, `low` and `high`.
type Interval struct {
	abstractObject
	low  Bound
	high Bound
}

// NewInterval creates an interval object in the given extreme state.
// ⊤ is [-∞, ∞] and ⊥ is the empty interval [∞, -∞].
func NewInterval(typ T.Type, top, bottom bool) Interval {
	base := makeBase(typ, top, bottom)
	if bottom {
		return Interval{base, PlusInfinity{}, MinusInfinity{}}
	}
	return Interval{base, MinusInfinity{}, PlusInfinity{}}
}

// IntervalFromExpr creates an interval derived from the given
// expression. Integer literals yield the singleton interval [c, c];
// symbols inherit the bounds of their current binding when it is itself
// an interval.
func IntervalFromExpr(e E.Expr, env Environment, res T.Resolver) Interval {
	typ := res.Follow(e.Type())

	if c, ok := e.(E.Constant); ok {
		if v, ok := constantInt(c.Value()); ok {
			return Interval{makeBase(typ, false, false), FiniteBound(v), FiniteBound(v)}
		}
	}

	if bound, ok := resolveBinding(e, env); ok {
		if inner, ok := bound.Unwrap().(Interval); ok && !inner.top && !inner.bottom {
			return Interval{makeBase(typ, false, false), inner.low, inner.high}
		}
	}

	return NewInterval(typ, true, false)
}

func constantInt(v any) (int64, bool) {
	switch v := v.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}

// Low retrieves the lower bound.
func (o Interval) Low() Bound {
	return o.low
}

// High retrieves the upper bound.
func (o Interval) High() Bound {
	return o.high
}

// Interval safely converts an interval object.
func (o Interval) Interval() Interval {
	return o
}

// Unwrap is the identity for undecorated objects.
func (o Interval) Unwrap() AbstractObject {
	return o
}

// Equal checks value equality with another abstract object.
func (o Interval) Equal(p AbstractObject) bool {
	p2, ok := p.(Interval)
	return ok && o.baseEqual(p2.abstractObject) &&
		o.low == p2.low && o.high == p2.high
}

func (o Interval) String() string {
	switch {
	case o.bottom:
		return colorize.Element("⊥")
	case o.top:
		return colorize.Element("⊤")
	}
	return "[" + o.low.String() + ", " + o.high.String() + "]"
}
