// Package main is the entry point for the npcc command line.
package main

import (
	"fmt"
	"os"

	"github.com/npcc/npcc/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	return cli.NewRootCmd(version).Execute()
}
