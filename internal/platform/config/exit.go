package config

import (
	"fmt"
	"io"
	"os"
)

// stderr and exit are swapped in tests.
var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Exitf writes a formatted error message to stderr and exits with code 1.
// Configuration errors are reported this way before any simulation starts.
func Exitf(format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	exit(1)
}
