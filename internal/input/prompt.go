// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/toeirei/quadsolver/internal/equation"
	"github.com/toeirei/quadsolver/internal/i18n"
	"github.com/toeirei/quadsolver/internal/logging"
)

// PromptCollector prints the equation template, then asks for each label in
// turn and reads one line per label.
type PromptCollector struct {
	r *bufio.Reader
	w io.Writer
}

// NewPromptCollector reads answers from r and writes prompts to w.
func NewPromptCollector(r io.Reader, w io.Writer) *PromptCollector {
	return &PromptCollector{r: bufio.NewReader(r), w: w}
}

// Collect implements Collector. Lines are returned verbatim apart from the
// line terminator; end of input yields an empty string for the remaining
// labels.
func (p *PromptCollector) Collect(ctx context.Context) (equation.RawInputs, error) {
	var raw equation.RawInputs
	if _, err := fmt.Fprintln(p.w, equation.Template); err != nil {
		return raw, fmt.Errorf("write prompt: %w", err)
	}

	for i, l := range equation.Labels {
		if err := ctx.Err(); err != nil {
			return raw, err
		}
		if _, err := fmt.Fprintln(p.w, i18n.T("prompt.enter_value", string(l))); err != nil {
			return raw, fmt.Errorf("write prompt: %w", err)
		}
		line, err := p.readLine()
		if err != nil {
			return raw, fmt.Errorf("read value of %s: %w", l, err)
		}
		raw[i] = line
	}

	logging.Debugf("input: collected %q", raw)
	return raw, nil
}

func (p *PromptCollector) readLine() (string, error) {
	line, err := p.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
