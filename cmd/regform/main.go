// Command regform serves the registration form over HTTP, runs it as a
// terminal prompt, or renders a single view to a file.
package main

import (
	"os"
)

// Build information injected via ldflags at build time.
var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
