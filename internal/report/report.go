// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

// Package report turns the outcome of a solve into console output. Render is
// pure: it only decides which lines to show and how severe each one is. The
// Printer applies terminal styling separately.
package report // import "github.com/toeirei/quadsolver/internal/report"

import (
	"errors"
	"fmt"

	"github.com/toeirei/quadsolver/internal/equation"
	"github.com/toeirei/quadsolver/internal/i18n"
	"github.com/toeirei/quadsolver/internal/parser"
	"github.com/toeirei/quadsolver/internal/solver"
)

// Style tags a line with its visual severity.
type Style int

const (
	StylePlain Style = iota
	StyleInfo
	StyleWarning
	StyleError
)

func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleInfo:
		return "info"
	case StyleWarning:
		return "warning"
	case StyleError:
		return "error"
	}
	return "unknown"
}

// Banner opens and closes warning and error reports.
const Banner = "--------------------------------------------------"

// Line is a single line of output.
type Line struct {
	Text  string
	Style Style
}

// Report is the full output for one run.
type Report struct {
	Lines []Line
}

// Texts returns the unstyled text of every line.
func (r Report) Texts() []string {
	out := make([]string, len(r.Lines))
	for i, l := range r.Lines {
		out[i] = l.Text
	}
	return out
}

type snapshotter interface {
	error
	Snapshot() []equation.Pair
}

// Render builds the report for a solve outcome. err must be nil, a
// *parser.ParseError, a *parser.RangeError or a *solver.SolveError; any other
// error is returned unchanged with an empty report.
func Render(sol solver.Solution, err error) (Report, error) {
	if err == nil {
		return renderSolution(sol), nil
	}

	var (
		rangeErr *parser.RangeError
		parseErr *parser.ParseError
		solveErr *solver.SolveError
	)
	switch {
	case errors.As(err, &rangeErr):
		return Report{Lines: []Line{
			{Text: i18n.T("report.out_of_range", rangeErr.Value.String()), Style: StyleInfo},
			{Text: i18n.T("report.allowed_range", rangeErr.Min, rangeErr.Max), Style: StyleInfo},
		}}, nil
	case errors.As(err, &parseErr):
		return renderSnapshot(i18n.T("report.parse_error", string(parseErr.Label)), parseErr, StyleError), nil
	case errors.As(err, &solveErr):
		msg := i18n.T("report.no_real_roots")
		if solveErr.Reason == solver.NotQuadratic {
			msg = i18n.T("report.not_quadratic")
		}
		return renderSnapshot(msg, solveErr, StyleWarning), nil
	}
	return Report{}, err
}

func renderSolution(sol solver.Solution) Report {
	lines := make([]Line, 0, len(sol.Roots))
	for _, r := range sol.Roots {
		lines = append(lines, Line{Text: r.String(), Style: StylePlain})
	}
	return Report{Lines: lines}
}

func renderSnapshot(message string, s snapshotter, style Style) Report {
	snap := s.Snapshot()
	lines := make([]Line, 0, len(snap)+3)
	lines = append(lines, Line{Text: Banner, Style: style}, Line{Text: message, Style: style})
	for _, p := range snap {
		lines = append(lines, Line{Text: fmt.Sprintf("%s = %s", p.Key, p.Value), Style: style})
	}
	lines = append(lines, Line{Text: Banner, Style: style})
	return Report{Lines: lines}
}
