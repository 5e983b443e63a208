package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	env "github.com/fbbotero-aws/cbmc/analysis/environment"
	E "github.com/fbbotero-aws/cbmc/analysis/expr"
	T "github.com/fbbotero-aws/cbmc/analysis/types"
	"github.com/fbbotero-aws/cbmc/analysis/vsd"
	"github.com/fbbotero-aws/cbmc/utils"
)

var (
	opts         = utils.Opts()
	verbosePrint = utils.VerbosePrint
)

func main() {
	utils.ParseArgs()

	conf, err := domainConfig()
	if err != nil {
		var invalid *vsd.InvalidConfigurationError
		if errors.As(err, &invalid) {
			fmt.Fprintln(os.Stderr, "invalid domain configuration:", invalid)
			os.Exit(1)
		}
		log.Fatal(err)
	}

	verbosePrint("task: %s\n", opts.Task())
	verbosePrint("domain configuration: %+v\n", conf)

	ns := T.NewNamespace()

	switch {
	case opts.IsDomainReport():
		fmt.Print(vsd.Report(conf, ns))
	case opts.IsDemo():
		demo(conf, ns)
	}
}

func domainConfig() (vsd.Config, error) {
	if path := opts.DomainConfig(); path != "" {
		verbosePrint("loading domain configuration from %s\n", path)
		return vsd.FromFile(path)
	}
	return vsd.FromOptions(opts.DomainOptions())
}

// demo builds a small abstract environment and pretty-prints the
// abstract objects the factory produces for it.
func demo(conf vsd.Config, ns T.Namespace) {
	factory := vsd.ConfiguredWith(conf)

	i32 := T.MakeBasic(T.Int32)
	pair := T.MakeStruct(
		T.Field{Name: "x", Type: i32},
		T.Field{Name: "y", Type: i32},
	)

	environment := env.New()

	x := E.MakeSymbol("x", i32)
	five := E.MakeConstant(5, i32)
	environment = environment.Bind("x", factory.GetAbstractObject(i32, false, false, five, environment, ns))

	p := E.MakeStructLit(pair, five, x)

	for _, step := range []struct {
		label string
		build func() fmt.Stringer
	}{
		{"top int32", func() fmt.Stringer {
			return factory.GetAbstractObject(i32, true, false, nil, environment, ns)
		}},
		{"bottom int32", func() fmt.Stringer {
			return factory.GetAbstractObject(i32, false, true, nil, environment, ns)
		}},
		{"x = 5", func() fmt.Stringer {
			return factory.GetAbstractObject(i32, false, false, x, environment, ns)
		}},
		{"pair{5, x}", func() fmt.Stringer {
			return factory.GetAbstractObject(pair, false, false, p, environment, ns)
		}},
		{"&x", func() fmt.Stringer {
			return factory.GetAbstractObject(T.MakePointer(i32), false, false, E.MakeAddressOf(x), environment, ns)
		}},
	} {
		fmt.Printf("%-12s : %s\n", step.label, step.build())
	}
}
