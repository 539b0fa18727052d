// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

package parser

import (
	"fmt"
	"math"
	"math/big"

	"github.com/toeirei/quadsolver/internal/equation"
)

// Bounds of the bounded integer every coefficient must fit in.
const (
	MinValue int64 = math.MinInt32
	MaxValue int64 = math.MaxInt32
)

// ParseError reports raw text that is not an integer at all.
type ParseError struct {
	Label  equation.Label
	Inputs equation.RawInputs
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid format of parameter %s", e.Label)
}

// Snapshot returns every raw input captured when parsing failed.
func (e *ParseError) Snapshot() []equation.Pair {
	return e.Inputs.Pairs()
}

// RangeError reports an integer outside [Min, Max].
type RangeError struct {
	Label equation.Label
	Value *big.Int
	Min   int64
	Max   int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %s of parameter %s is outside the range %d..%d", e.Value, e.Label, e.Min, e.Max)
}
