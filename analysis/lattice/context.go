package lattice

import (
	"errors"
	"sort"
	"strings"

	E "github.com/fbbotero-aws/cbmc/analysis/expr"
	T "github.com/fbbotero-aws/cbmc/analysis/types"

	"github.com/benbjohnson/immutable"
)

var errNestedContext = errors.New("ContractViolation: context wrappers must not nest")

// Context is the interface of context-tracking decorators. A context
// holds exactly one inner abstract object and forwards every operation
// to it, adding auxiliary metadata of its own. At most one context
// layer ever exists per object.
type Context interface {
	AbstractObject
	// Child retrieves the decorated abstract object.
	Child() AbstractObject
	// LastWritten retrieves the recorded last-write locations in a
	// deterministic order.
	LastWritten() []E.Expr
}

// WriteLocationContext decorates an abstract object with the set of
// locations that last wrote it.
type WriteLocationContext struct {
	typ         T.Type
	child       AbstractObject
	lastWritten *immutable.Map[string, E.Expr]
}

func checkUnwrapped(child AbstractObject) {
	if _, nested := child.(Context); nested {
		panic(errNestedContext)
	}
}

// WrapWriteLocation decorates an abstract object built in an extreme
// state. The location set starts out empty.
func WrapWriteLocation(child AbstractObject, typ T.Type, top, bottom bool) *WriteLocationContext {
	checkUnwrapped(child)
	if top && bottom {
		panic(errTopAndBottom)
	}
	return &WriteLocationContext{typ, child, immutable.NewMap[string, E.Expr](nil)}
}

// WrapWriteLocationFromExpr decorates an abstract object derived from
// the given expression. The location set is seeded with that expression.
func WrapWriteLocationFromExpr(child AbstractObject, e E.Expr, env Environment, res T.Resolver) *WriteLocationContext {
	checkUnwrapped(child)
	locs := immutable.NewMap[string, E.Expr](nil).Set(e.String(), e)
	return &WriteLocationContext{res.Follow(e.Type()), child, locs}
}

// Child retrieves the decorated abstract object.
func (c *WriteLocationContext) Child() AbstractObject {
	return c.child
}

// LastWritten retrieves the recorded last-write locations in a
// deterministic order.
func (c *WriteLocationContext) LastWritten() []E.Expr {
	return sortedExprs(c.lastWritten)
}

func (c *WriteLocationContext) Type() T.Type {
	return c.typ
}

// IsTop forwards to the decorated object.
func (c *WriteLocationContext) IsTop() bool {
	return c.child.IsTop()
}

// IsBottom forwards to the decorated object.
func (c *WriteLocationContext) IsBottom() bool {
	return c.child.IsBottom()
}

// Unwrap peels off the context decoration.
func (c *WriteLocationContext) Unwrap() AbstractObject {
	return c.child
}

// Context safely converts a context wrapper.
func (c *WriteLocationContext) Context() Context {
	return c
}

// The variant conversion API forwards to the decorated object.

func (c *WriteLocationContext) TwoValue() TwoValue {
	return c.child.TwoValue()
}

func (c *WriteLocationContext) Constant() Constant {
	return c.child.Constant()
}

func (c *WriteLocationContext) Interval() Interval {
	return c.child.Interval()
}

func (c *WriteLocationContext) ValueSet() ValueSet {
	return c.child.ValueSet()
}

func (c *WriteLocationContext) StructSensitive() StructSensitive {
	return c.child.StructSensitive()
}

func (c *WriteLocationContext) StructInsensitive() StructInsensitive {
	return c.child.StructInsensitive()
}

func (c *WriteLocationContext) ArraySensitive() ArraySensitive {
	return c.child.ArraySensitive()
}

func (c *WriteLocationContext) ArrayInsensitive() ArrayInsensitive {
	return c.child.ArrayInsensitive()
}

func (c *WriteLocationContext) PointerSensitive() PointerSensitive {
	return c.child.PointerSensitive()
}

func (c *WriteLocationContext) PointerInsensitive() PointerInsensitive {
	return c.child.PointerInsensitive()
}

func (c *WriteLocationContext) UnionInsensitive() UnionInsensitive {
	return c.child.UnionInsensitive()
}

// Equal checks value equality, including the location metadata.
func (c *WriteLocationContext) Equal(p AbstractObject) bool {
	p2, ok := p.(*WriteLocationContext)
	return ok && c.child.Equal(p2.child) &&
		equalExprMaps(c.lastWritten, p2.lastWritten)
}

func (c *WriteLocationContext) String() string {
	return c.child.String() + " " + colorize.Attr("@") + exprSetString(c.lastWritten)
}

// DataDependencyContext decorates an abstract object with the set of
// expressions its value depends on, on top of the last-write locations.
type DataDependencyContext struct {
	WriteLocationContext
	deps *immutable.Map[string, E.Expr]
}

// WrapDataDependency decorates an abstract object built in an extreme
// state. Location and dependency sets start out empty.
func WrapDataDependency(child AbstractObject, typ T.Type, top, bottom bool) *DataDependencyContext {
	inner := WrapWriteLocation(child, typ, top, bottom)
	return &DataDependencyContext{*inner, immutable.NewMap[string, E.Expr](nil)}
}

// WrapDataDependencyFromExpr decorates an abstract object derived from
// the given expression. Location and dependency sets are seeded with
// that expression.
func WrapDataDependencyFromExpr(child AbstractObject, e E.Expr, env Environment, res T.Resolver) *DataDependencyContext {
	inner := WrapWriteLocationFromExpr(child, e, env, res)
	deps := immutable.NewMap[string, E.Expr](nil).Set(e.String(), e)
	return &DataDependencyContext{*inner, deps}
}

// Dependencies retrieves the recorded dependency set in a deterministic
// order.
func (c *DataDependencyContext) Dependencies() []E.Expr {
	return sortedExprs(c.deps)
}

// Context safely converts a context wrapper.
func (c *DataDependencyContext) Context() Context {
	return c
}

// Unwrap peels off the context decoration.
func (c *DataDependencyContext) Unwrap() AbstractObject {
	return c.child
}

// Equal checks value equality, including location and dependency
// metadata.
func (c *DataDependencyContext) Equal(p AbstractObject) bool {
	p2, ok := p.(*DataDependencyContext)
	return ok && c.child.Equal(p2.child) &&
		equalExprMaps(c.lastWritten, p2.lastWritten) &&
		equalExprMaps(c.deps, p2.deps)
}

func (c *DataDependencyContext) String() string {
	return c.child.String() + " " + colorize.Attr("@") + exprSetString(c.lastWritten) +
		colorize.Attr("←") + exprSetString(c.deps)
}

func sortedExprs(m *immutable.Map[string, E.Expr]) []E.Expr {
	keys := make([]string, 0, m.Len())
	iter := m.Iterator()
	for !iter.Done() {
		k, _, _ := iter.Next()
		keys = append(keys, k)
	}
	sort.Strings(keys)

	exprs := make([]E.Expr, 0, len(keys))
	for _, k := range keys {
		e, _ := m.Get(k)
		exprs = append(exprs, e)
	}
	return exprs
}

func equalExprMaps(m1, m2 *immutable.Map[string, E.Expr]) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	iter := m1.Iterator()
	for !iter.Done() {
		k, _, _ := iter.Next()
		if _, found := m2.Get(k); !found {
			return false
		}
	}
	return true
}

func exprSetString(m *immutable.Map[string, E.Expr]) string {
	if m.Len() == 0 {
		return colorize.Attr("∅")
	}
	strs := []string{}
	for _, e := range sortedExprs(m) {
		strs = append(strs, e.String())
	}
	return "{" + strings.Join(strs, ", ") + "}"
}
