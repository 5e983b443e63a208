package utils

import (
	"flag"
	"fmt"
	"log"
	"strings"
)

type options struct {
	structs          bool
	arrays           bool
	pointers         bool
	dataDependencies bool
	valueSet         bool
	newValueSet      bool
	interval         bool
	domainConfig     string
	task             string
	noColorize       bool
	verbose          bool
}

const (
	_DOMAIN_REPORT = iota
	_DEMO
)

type taskEntry struct {
	flag        string
	explanation string
}

var task = map[int]taskEntry{
	_DOMAIN_REPORT: {"domain-report", "print the abstract object variant selected for a battery of representative types under the active configuration"},
	_DEMO:          {"demo", "build a small abstract environment and pretty-print the abstract objects the factory produces for it"},
}

var opts = options{}

type optInterface struct{}

// Opts exposes read-only access to the parsed command line options.
func Opts() optInterface {
	return optInterface{}
}

func (optInterface) Structs() bool {
	return opts.structs
}
func (optInterface) Arrays() bool {
	return opts.arrays
}
func (optInterface) Pointers() bool {
	return opts.pointers
}
func (optInterface) DataDependencies() bool {
	return opts.dataDependencies
}
func (optInterface) ValueSet() bool {
	return opts.valueSet
}
func (optInterface) NewValueSet() bool {
	return opts.newValueSet
}
func (optInterface) Interval() bool {
	return opts.interval
}
func (optInterface) DomainConfig() string {
	return opts.domainConfig
}
func (optInterface) Verbose() bool {
	return opts.verbose
}
func (optInterface) NoColorize() bool {
	return opts.noColorize
}
func (optInterface) Task() string {
	return opts.task
}

func (optInterface) IsDomainReport() bool {
	return opts.task == task[_DOMAIN_REPORT].flag
}
func (optInterface) IsDemo() bool {
	return opts.task == task[_DEMO].flag
}

// DomainOptions collects the boolean flags consumed by the domain
// configuration layer, keyed by flag name.
func (optInterface) DomainOptions() map[string]bool {
	return map[string]bool{
		"structs":           opts.structs,
		"arrays":            opts.arrays,
		"pointers":          opts.pointers,
		"data-dependencies": opts.dataDependencies,
		"value-set":         opts.valueSet,
		"new-value-set":     opts.newValueSet,
		"interval":          opts.interval,
	}
}

// CanColorize wraps a colorization function such that it is disabled
// when the -no-colorize flag is set.
func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}

func init() {
	taskFlag := "\n"
	for _, task := range task {
		taskFlag += task.flag + " -- " + task.explanation + "\n"
	}
	taskFlag += "\n"

	flag.BoolVar(&(opts.structs), "structs", false, "enable field-sensitive tracking of struct values")
	flag.BoolVar(&(opts.arrays), "arrays", false, "enable element-sensitive tracking of array values")
	flag.BoolVar(&(opts.pointers), "pointers", false, "enable target-sensitive tracking of pointer values")
	flag.BoolVar(&(opts.dataDependencies), "data-dependencies", false, "wrap abstract objects in a data dependency tracking context")
	flag.BoolVar(&(opts.valueSet), "value-set", false, "track scalars as sets of possible values")
	flag.BoolVar(&(opts.newValueSet), "new-value-set", false, "track scalars with the reworked value set abstraction")
	flag.BoolVar(&(opts.interval), "interval", false, "track scalars as intervals")
	flag.StringVar(&(opts.domainConfig), "domain-config", "", "load the sensitivity configuration from a YAML file instead of individual flags")
	flag.StringVar(&(opts.task), "task", task[_DOMAIN_REPORT].flag, "Set the task to do during execution. Options:"+taskFlag)
	flag.BoolVar(&(opts.noColorize), "no-colorize", false, "Disable pretty printer colorization")
	flag.BoolVar(&(opts.verbose), "verbose", false, "enable verbose output")

	// Set up logging
	log.SetFlags(log.Ltime | log.Lshortfile)
}

// ParseArgs parses the command line flags and validates the chosen task.
// Calling flag.Parse in init messes up unit tests, so it is deferred here.
func ParseArgs() {
	flag.Parse()

	validTask := false
	for _, t := range task {
		if t.flag == opts.task {
			validTask = true
		}
	}
	if !validTask {
		log.Fatalf("Unknown task: %s", opts.task)
	}
}
