// Package main provides the tsfy CLI for scaffolding tsconfig presets.
package main

import (
	"fmt"
	"os"

	"github.com/yacobolo/tsfy"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Usage errors already printed the help text.
		if !tsfy.IsUsageError(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(tsfy.ExitCode(err))
	}
}
