// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for digitcipher.
//
// Usage:
//
//	go run . [flags]
//	./digitcipher [command] [flags]
//
// Without a command the interactive TUI starts. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/digitcipher/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
