// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Shelfmaster.
//
// Usage:
//
//	go run . [flags]
//	./shelfmaster [flags]
//
// This launches the text menu. See --help for subcommands and options.
package main

import (
	"os"

	"github.com/toeirei/shelfmaster/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}
