// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/quadsolver/internal/equation"
	"github.com/toeirei/quadsolver/internal/input"
	"github.com/toeirei/quadsolver/internal/logging"
)

// Collector runs the interactive field editor as a bubbletea program.
type Collector struct {
	in        io.Reader
	out       io.Writer
	altScreen bool
}

type Option func(*Collector)

// WithIO overrides the terminal the program reads from and renders to.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(c *Collector) {
		c.in, c.out = in, out
	}
}

// WithAltScreen runs the editor in the terminal's alternate screen buffer.
func WithAltScreen(enabled bool) Option {
	return func(c *Collector) {
		c.altScreen = enabled
	}
}

func NewCollector(opts ...Option) *Collector {
	c := &Collector{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect implements input.Collector. It blocks until the user presses Enter
// and returns input.ErrAborted when the session is left with Ctrl+C.
func (c *Collector) Collect(ctx context.Context) (equation.RawInputs, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if c.in != nil {
		opts = append(opts, tea.WithInput(c.in))
	}
	if c.out != nil {
		opts = append(opts, tea.WithOutput(c.out))
	}
	if c.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(newFieldsModel(), opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, tea.ErrProgramKilled) {
			return equation.RawInputs{}, ctxErr
		}
		return equation.RawInputs{}, fmt.Errorf("run field editor: %w", err)
	}

	m, ok := final.(fieldsModel)
	if !ok {
		return equation.RawInputs{}, fmt.Errorf("run field editor: unexpected model %T", final)
	}
	if m.aborted {
		return equation.RawInputs{}, input.ErrAborted
	}

	logging.Debugf("tui: collected %q", m.Values())
	return m.Values(), nil
}

// Collector implements input.Collector
var _ input.Collector = (*Collector)(nil)
