// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode selects whether the printer emits ANSI styling.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode name. The empty string means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return ColorMode(s), nil
	}
	return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// colorPalette uses the basic ANSI colors so every capable terminal shows
// the same severities.
const (
	colorBlack  = lipgloss.Color("0")
	colorRed    = lipgloss.Color("1")
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorWhite  = lipgloss.Color("15")
)

// Printer writes reports to a terminal, applying one lipgloss style per
// severity. Every line is rendered on its own so styling never leaks past it.
type Printer struct {
	w      io.Writer
	styles map[Style]lipgloss.Style
}

// NewPrinter creates a printer for w. ColorAuto lets termenv detect the
// profile of w.
func NewPrinter(w io.Writer, mode ColorMode) *Printer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w: w,
		styles: map[Style]lipgloss.Style{
			StylePlain:   r.NewStyle(),
			StyleInfo:    r.NewStyle().Foreground(colorBlack).Background(colorGreen),
			StyleWarning: r.NewStyle().Foreground(colorBlack).Background(colorYellow),
			StyleError:   r.NewStyle().Foreground(colorWhite).Background(colorRed),
		},
	}
}

// Print writes every line of rep followed by a newline.
func (p *Printer) Print(rep Report) error {
	for _, l := range rep.Lines {
		style, ok := p.styles[l.Style]
		if !ok {
			style = p.styles[StylePlain]
		}
		if _, err := fmt.Fprintln(p.w, style.Render(l.Text)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
