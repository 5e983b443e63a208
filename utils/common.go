package utils

import (
	"fmt"
)

// VerbosePrint prints only when the -verbose flag is set.
func VerbosePrint(format string, a ...interface{}) (n int, err error) {
	if Opts().Verbose() {
		return fmt.Printf(format, a...)
	}
	return 0, nil
}
