// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

package report

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/toeirei/quadsolver/internal/equation"
	"github.com/toeirei/quadsolver/internal/i18n"
	"github.com/toeirei/quadsolver/internal/parser"
	"github.com/toeirei/quadsolver/internal/solver"
)

func TestRender_Success(t *testing.T) {
	i18n.Init("en")
	sol, err := solver.Solve(equation.Coefficients{A: 1, B: -3, C: 2})
	rep, err := Render(sol, err)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Line{{Text: "x1 = 2"}, {Text: "x2 = 1"}}
	if diff := cmp.Diff(want, rep.Lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_ParseErrorIsErrorSeverity(t *testing.T) {
	i18n.Init("en")
	_, err := parser.Parse(equation.NewRawInputs("abc", "2", ""))
	rep, err := Render(solver.Solution{}, err)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{Banner, "Invalid format of parameter a", "a = abc", "b = 2", "c = ", Banner}
	if diff := cmp.Diff(want, rep.Texts()); diff != "" {
		t.Fatalf("texts mismatch (-want +got):\n%s", diff)
	}
	for _, l := range rep.Lines {
		if l.Style != StyleError {
			t.Fatalf("expected every line to be error styled, got %v on %q", l.Style, l.Text)
		}
	}
}

func TestRender_SolveErrorIsWarningSeverity(t *testing.T) {
	i18n.Init("en")
	_, err := solver.Solve(equation.Coefficients{A: 1, B: 2, C: 5})
	rep, err := Render(solver.Solution{}, err)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{Banner, "No real roots found", "a = 1", "b = 2", "c = 5", Banner}
	if diff := cmp.Diff(want, rep.Texts()); diff != "" {
		t.Fatalf("texts mismatch (-want +got):\n%s", diff)
	}
	if rep.Lines[0].Style != StyleWarning || rep.Lines[len(rep.Lines)-1].Style != StyleWarning {
		t.Fatalf("expected warning styling")
	}
}

func TestRender_NotQuadratic(t *testing.T) {
	i18n.Init("en")
	_, err := solver.Solve(equation.Coefficients{A: 0, B: 2, C: 5})
	rep, _ := Render(solver.Solution{}, err)
	if rep.Lines[1].Text != "Not a quadratic equation: coefficient a must not be zero" {
		t.Fatalf("unexpected message %q", rep.Lines[1].Text)
	}
}

func TestRender_RangeErrorIsInfoSeverity(t *testing.T) {
	i18n.Init("en")
	_, err := parser.Parse(equation.NewRawInputs("99999999999", "1", "1"))
	rep, err := Render(solver.Solution{}, fmt.Errorf("wrapped: %w", err))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Line{
		{Text: "Value 99999999999 is outside the allowed range.", Style: StyleInfo},
		{Text: "Allowed values: from -2147483648 to 2147483647", Style: StyleInfo},
	}
	if diff := cmp.Diff(want, rep.Lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Localized(t *testing.T) {
	i18n.Init("ru")
	defer i18n.Init("en")
	_, err := solver.Solve(equation.Coefficients{A: 1, B: 2, C: 5})
	rep, _ := Render(solver.Solution{}, err)
	if rep.Lines[1].Text != "Вещественных значений не найдено" {
		t.Fatalf("unexpected Russian message %q", rep.Lines[1].Text)
	}
}

func TestRender_UnknownErrorPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	rep, err := Render(solver.Solution{}, boom)
	if !errors.Is(err, boom) {
		t.Fatalf("expected original error back, got %v", err)
	}
	if len(rep.Lines) != 0 {
		t.Fatalf("expected empty report, got %+v", rep.Lines)
	}
}

func TestPrinter_NeverColorIsPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, ColorNever)
	rep := Report{Lines: []Line{{Text: Banner, Style: StyleError}, {Text: "x = 1", Style: StylePlain}}}
	if err := p.Print(rep); err != nil {
		t.Fatalf("print: %v", err)
	}
	want := Banner + "\nx = 1\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrinter_AlwaysColorStylesAndResets(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, ColorAlways)
	if err := p.Print(Report{Lines: []Line{{Text: "warn", Style: StyleWarning}}}); err != nil {
		t.Fatalf("print: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected ANSI styling, got %q", out)
	}
	if !strings.HasSuffix(out, "\x1b[0m\n") {
		t.Fatalf("expected styling to be reset at end of line, got %q", out)
	}
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"": ColorAuto, "auto": ColorAuto, "always": ColorAlways, "never": ColorNever} {
		got, err := ParseColorMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseColorMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseColorMode("rainbow"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
