// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core wires one run of the solver: collect raw input, parse it, solve
// the equation and present the outcome. UI packages stay thin and delegate
// here.
package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/toeirei/quadsolver/internal/equation"
	"github.com/toeirei/quadsolver/internal/input"
	"github.com/toeirei/quadsolver/internal/logging"
	"github.com/toeirei/quadsolver/internal/parser"
	"github.com/toeirei/quadsolver/internal/report"
	"github.com/toeirei/quadsolver/internal/solver"
)

// Outcome is everything produced by one parse-then-solve cycle. Err is nil,
// a *parser.ParseError, a *parser.RangeError or a *solver.SolveError.
type Outcome struct {
	Raw          equation.RawInputs
	Coefficients equation.Coefficients
	Solution     solver.Solution
	Err          error
}

// Evaluate parses raw and, when that succeeds, solves the equation.
func Evaluate(raw equation.RawInputs) Outcome {
	out := Outcome{Raw: raw}

	coeffs, err := parser.Parse(raw)
	if err != nil {
		out.Err = err
		return out
	}
	out.Coefficients = coeffs

	out.Solution, out.Err = solver.Solve(coeffs)
	return out
}

// Printer writes a rendered report.
type Printer interface {
	Print(rep report.Report) error
}

// Run performs one full cycle. Parse, range and solve failures are reported
// through p and do not make Run fail; collector and output errors are
// returned.
func Run(ctx context.Context, c input.Collector, p Printer) error {
	raw, err := c.Collect(ctx)
	if err != nil {
		if errors.Is(err, input.ErrAborted) {
			return err
		}
		return fmt.Errorf("collect input: %w", err)
	}

	out := Evaluate(raw)
	if out.Err != nil {
		logging.Debugf("core: solve failed: %v", out.Err)
	}

	rep, err := report.Render(out.Solution, out.Err)
	if err != nil {
		return err
	}
	return p.Print(rep)
}
