// Package internal has helpers that are only useful within the benchplot runtime.
package internal

import (
	"fmt"
	"os"
)

// Warning logs a warning.
func Warning(msg string) {
	fmt.Fprintf(os.Stderr, "⚠️  %s\n", msg)
}
