// Package vsd implements the configuration-driven construction layer of
// the variable-sensitivity domain: it resolves a sensitivity
// configuration and a program type into the concrete abstract object
// variant that must approximate a variable of that type, optionally
// decorated with one context-tracking layer.
package vsd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PrimitiveSensitivity selects field/element/target-sensitive vs.
// insensitive representations for aggregate and pointer types.
type PrimitiveSensitivity struct {
	Structs  bool `yaml:"structs"`
	Arrays   bool `yaml:"arrays"`
	Pointers bool `yaml:"pointers"`
}

// ContextTracking selects the context decorator applied to every built
// abstract object. At most one of the two may be enabled.
type ContextTracking struct {
	DataDependency bool `yaml:"data-dependencies"`
	LastWrite      bool `yaml:"last-write"`
}

// AdvancedSensitivities selects the scalar abstraction for non-aggregate
// values.
type AdvancedSensitivities struct {
	Intervals   bool `yaml:"interval"`
	ValueSet    bool `yaml:"value-set"`
	NewValueSet bool `yaml:"new-value-set"`
}

// Config is the immutable sensitivity configuration of one analysis
// run. It is constructed once, from flags, a file or a preset, and
// shared by reference across every factory call thereafter.
type Config struct {
	Primitive PrimitiveSensitivity  `yaml:"primitive-sensitivity"`
	Context   ContextTracking       `yaml:"context-tracking"`
	Advanced  AdvancedSensitivities `yaml:"advanced-sensitivities"`
}

// InvalidConfigurationError reports a semantically contradictory flag
// combination, together with a suggested corrected invocation.
type InvalidConfigurationError struct {
	Reason     string
	Flags      [2]string
	Suggestion string
}

func (err *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s %s (try %s instead)",
		err.Reason, err.Flags[0], err.Flags[1], err.Suggestion)
}

// FromOptions builds a configuration from the named boolean flags
// consumed by this layer. Unknown flags are ignored here; they are
// validated by the option front end. Last-write tracking is enabled by
// default because it makes three-way merges cheap, but it does not work
// with value sets, which carry their own identity tracking.
func FromOptions(options map[string]bool) (Config, error) {
	if options["value-set"] && options["data-dependencies"] {
		return Config{}, &InvalidConfigurationError{
			Reason:     "Value set is not currently supported with data dependency analysis",
			Flags:      [2]string{"--value-set", "--data-dependencies"},
			Suggestion: "--data-dependencies",
		}
	}

	return Config{
		Primitive: PrimitiveSensitivity{
			Structs:  options["structs"],
			Arrays:   options["arrays"],
			Pointers: options["pointers"],
		},
		Context: ContextTracking{
			LastWrite:      !options["value-set"] && !options["data-dependencies"],
			DataDependency: options["data-dependencies"],
		},
		Advanced: AdvancedSensitivities{
			Intervals:   options["interval"],
			ValueSet:    options["value-set"],
			NewValueSet: options["new-value-set"],
		},
	}, nil
}

// FromFile builds a configuration from a YAML file holding the same
// named flags as FromOptions, under the flat key space of the command
// line.
func FromFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading domain configuration: %w", err)
	}

	options := map[string]bool{}
	if err := yaml.Unmarshal(raw, &options); err != nil {
		return Config{}, fmt.Errorf("parsing domain configuration %s: %w", path, err)
	}
	return FromOptions(options)
}

// ConstantDomain is the preset for plain constant propagation over
// fully sensitive aggregates. Presets are valid by construction and
// bypass flag validation.
func ConstantDomain() Config {
	return Config{
		Primitive: PrimitiveSensitivity{Structs: true, Arrays: true, Pointers: true},
		Context:   ContextTracking{LastWrite: true},
	}
}

// ValueSetDomain is the preset for value-set tracking over fully
// sensitive aggregates. Value sets are incompatible with last-write
// composition, so no context tracking is enabled.
func ValueSetDomain() Config {
	return Config{
		Primitive: PrimitiveSensitivity{Structs: true, Arrays: true, Pointers: true},
		Advanced:  AdvancedSensitivities{ValueSet: true},
	}
}

// Intervals is the preset for interval tracking over fully sensitive
// aggregates.
func Intervals() Config {
	return Config{
		Primitive: PrimitiveSensitivity{Structs: true, Arrays: true, Pointers: true},
		Context:   ContextTracking{LastWrite: true},
		Advanced:  AdvancedSensitivities{Intervals: true},
	}
}
