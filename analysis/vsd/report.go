package vsd

import (
	"fmt"
	"strings"

	T "github.com/fbbotero-aws/cbmc/analysis/types"
)

// reportBattery is the battery of representative types the domain
// report classifies.
func reportBattery() []T.Type {
	i32 := T.MakeBasic(T.Int32)
	pair := T.MakeStruct(
		T.Field{Name: "x", Type: i32},
		T.Field{Name: "y", Type: i32},
	)

	return []T.Type{
		T.MakeBasic(T.Bool),
		i32,
		T.MakeBasic(T.Float64),
		T.MakeArray(i32, 4),
		T.MakePointer(i32),
		pair,
		T.MakeUnion(
			T.Field{Name: "i", Type: i32},
			T.Field{Name: "f", Type: T.MakeBasic(T.Float32)},
		),
		T.MakeNamed("pair", pair),
	}
}

// Report renders the variant classification table for a battery of
// representative types under the given configuration.
func Report(conf Config, res T.Resolver) string {
	var b strings.Builder
	for _, t := range reportBattery() {
		fmt.Fprintf(&b, "%-32s -> %s\n", t.String(), Classify(res.Follow(t), conf))
	}

	switch {
	case conf.Context.DataDependency:
		b.WriteString("context: data dependency tracking\n")
	case conf.Context.LastWrite:
		b.WriteString("context: last write tracking\n")
	default:
		b.WriteString("context: none\n")
	}
	return b.String()
}
