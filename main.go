// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Quadsolver.
//
// Usage:
//
//	go run . [flags]
//	./quadsolver [flags]
//
// This launches the Quadsolver CLI. See --help for options.
package main

import (
	"errors"
	"os"

	"github.com/toeirei/quadsolver/internal/input"
	"github.com/toeirei/quadsolver/internal/logging"
	"github.com/toeirei/quadsolver/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// The abort message has already been shown to the user.
		if !errors.Is(err, input.ErrAborted) {
			logging.Errorf("%v", err)
		}
		os.Exit(1)
	}
}
