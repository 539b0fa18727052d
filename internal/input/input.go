// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

// Package input collects the raw text for the coefficients a, b and c. Nothing
// is validated here: empty or non-numeric text is passed on as typed.
package input // import "github.com/toeirei/quadsolver/internal/input"

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/toeirei/quadsolver/internal/equation"
)

// ErrAborted is returned when the user leaves an interactive session without
// confirming the input.
var ErrAborted = errors.New("input aborted")

// Collector obtains the three raw coefficient strings.
type Collector interface {
	Collect(ctx context.Context) (equation.RawInputs, error)
}

// Mode selects how input is collected.
type Mode string

const (
	ModeAuto        Mode = "auto"
	ModePrompt      Mode = "prompt"
	ModeInteractive Mode = "interactive"
)

// ParseMode validates a mode name. The empty string means auto.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModePrompt, ModeInteractive:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid input mode %q (want auto, prompt or interactive)", s)
}

// Resolve turns ModeAuto into a concrete mode: interactive when isTerminal
// reports a terminal on both ends, prompt otherwise.
func (m Mode) Resolve(isTerminal func() bool) Mode {
	if m != ModeAuto {
		return m
	}
	if isTerminal() {
		return ModeInteractive
	}
	return ModePrompt
}

// IsTerminal reports whether in and out are both files attached to a
// terminal.
func IsTerminal(in io.Reader, out io.Writer) bool {
	fin, ok := in.(*os.File)
	if !ok {
		return false
	}
	fout, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(fin.Fd())) && term.IsTerminal(int(fout.Fd()))
}
