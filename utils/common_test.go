package utils

import (
	"flag"
	"testing"
)

func TestVerbosePrintSilentByDefault(t *testing.T) {
	n, err := VerbosePrint("should not appear\n")
	if n != 0 || err != nil {
		t.Errorf("expected no output with -verbose unset, got n=%d err=%v", n, err)
	}
}

func TestVerbosePrintEnabled(t *testing.T) {
	if err := flag.Set("verbose", "true"); err != nil {
		t.Fatal(err)
	}
	defer flag.Set("verbose", "false")

	msg := "verbose diagnostics enabled\n"
	n, err := VerbosePrint(msg)
	if n != len(msg) || err != nil {
		t.Errorf("expected %d bytes with -verbose set, got n=%d err=%v", len(msg), n, err)
	}
}
