// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

// Package parser turns the raw text captured for a, b and c into bounded
// integer coefficients. Entries are validated in insertion order and the first
// failing entry stops the pipeline.
package parser // import "github.com/toeirei/quadsolver/internal/parser"

import (
	"math/big"
	"strings"

	"github.com/toeirei/quadsolver/internal/equation"
	"github.com/toeirei/quadsolver/internal/logging"
)

// Status tags the outcome of validating one entry.
type Status int

const (
	StatusOK Status = iota
	StatusParseError
	StatusRangeError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusParseError:
		return "parse-error"
	case StatusRangeError:
		return "range-error"
	}
	return "unknown"
}

// EntryResult is the tagged result of validating a single label.
// Value is only meaningful for StatusOK, Err only for the failure statuses.
type EntryResult struct {
	Label  equation.Label
	Raw    string
	Status Status
	Value  int32
	Err    error
}

var (
	minBound = big.NewInt(MinValue)
	maxBound = big.NewInt(MaxValue)
)

// Validate runs the ordered validation pipeline. The returned slice holds one
// result per visited entry; when an entry fails it is the last element and the
// remaining labels are never looked at.
func Validate(raw equation.RawInputs) []EntryResult {
	results := make([]EntryResult, 0, len(equation.Labels))
	for _, l := range equation.Labels {
		res := validateEntry(l, raw)
		results = append(results, res)
		if res.Status != StatusOK {
			logging.Debugf("parser: %s rejected (%s): %q", l, res.Status, res.Raw)
			break
		}
	}
	return results
}

// Parse validates raw and returns the coefficients, or the first
// *ParseError / *RangeError encountered.
func Parse(raw equation.RawInputs) (equation.Coefficients, error) {
	var coeffs equation.Coefficients
	for _, res := range Validate(raw) {
		if res.Status != StatusOK {
			return equation.Coefficients{}, res.Err
		}
		if err := coeffs.Set(res.Label, res.Value); err != nil {
			return equation.Coefficients{}, err
		}
	}
	logging.Debugf("parser: coefficients a=%d b=%d c=%d", coeffs.A, coeffs.B, coeffs.C)
	return coeffs, nil
}

func validateEntry(l equation.Label, raw equation.RawInputs) EntryResult {
	text := raw.Get(l)
	res := EntryResult{Label: l, Raw: text}

	n, ok := new(big.Int).SetString(strings.TrimSpace(text), 10)
	if !ok {
		res.Status = StatusParseError
		res.Err = &ParseError{Label: l, Inputs: raw}
		return res
	}

	if n.Cmp(minBound) < 0 || n.Cmp(maxBound) > 0 {
		res.Status = StatusRangeError
		res.Err = &RangeError{Label: l, Value: n, Min: MinValue, Max: MaxValue}
		return res
	}

	res.Status = StatusOK
	res.Value = int32(n.Int64())
	return res
}
