// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Quadsolver using Cobra.
// It wires configuration, logging and localization, picks the input collector
// and delegates the actual work to `internal/core`. CLI code should remain
// thin.
package cli
