package vsd

import (
	"testing"

	T "github.com/fbbotero-aws/cbmc/analysis/types"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"
)

func TestDomainReport(t *testing.T) {
	ns := T.NewNamespace()
	g := goldie.New(t)

	for _, test := range []struct {
		fixture string
		conf    Config
	}{
		{"report-constant-domain", ConstantDomain()},
		{"report-value-set", ValueSetDomain()},
		{"report-intervals", Intervals()},
	} {
		g.Assert(t, test.fixture, []byte(Report(test.conf, ns)))
	}
}

// TestPresetsMatchFlags checks that the presets classify exactly like
// the equivalent raw flag sets.
func TestPresetsMatchFlags(t *testing.T) {
	ns := T.NewNamespace()

	for _, test := range []struct {
		name    string
		preset  Config
		options map[string]bool
	}{
		{"constant domain", ConstantDomain(),
			map[string]bool{"structs": true, "arrays": true, "pointers": true}},
		{"value set", ValueSetDomain(),
			map[string]bool{"structs": true, "arrays": true, "pointers": true, "value-set": true}},
		{"intervals", Intervals(),
			map[string]bool{"structs": true, "arrays": true, "pointers": true, "interval": true}},
	} {
		fromFlags, err := FromOptions(test.options)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(Report(test.preset, ns), Report(fromFlags, ns)); diff != "" {
			t.Errorf("%s: preset and flag reports differ (-preset +flags):\n%s", test.name, diff)
		}
	}
}
