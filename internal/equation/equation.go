// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

// Package equation holds the data model shared by the input, parsing, solving
// and reporting stages: the coefficient labels, the raw text captured from the
// user and the validated integer coefficients.
package equation // import "github.com/toeirei/quadsolver/internal/equation"

import (
	"fmt"
	"strconv"
)

// Label names one coefficient of a·x²+b·x+c=0.
type Label string

const (
	A Label = "a"
	B Label = "b"
	C Label = "c"
)

// Labels lists the coefficient labels in insertion order. Every stage walks
// the coefficients in this order.
var Labels = [3]Label{A, B, C}

// Template is the equation shown before prompting and in the preview line.
const Template = "a * x^2 + b * x + c = 0"

// Pair is a single key/value entry of an error snapshot.
type Pair struct {
	Key   string
	Value string
}

// RawInputs is the unvalidated text captured for each label.
type RawInputs [3]string

// NewRawInputs builds raw inputs from the three strings in label order.
func NewRawInputs(a, b, c string) RawInputs {
	return RawInputs{a, b, c}
}

// Get returns the raw text for l, or "" for an unknown label.
func (r RawInputs) Get(l Label) string {
	if i := l.index(); i >= 0 {
		return r[i]
	}
	return ""
}

// Pairs returns a label→text snapshot in insertion order.
func (r RawInputs) Pairs() []Pair {
	pairs := make([]Pair, 0, len(Labels))
	for i, l := range Labels {
		pairs = append(pairs, Pair{Key: string(l), Value: r[i]})
	}
	return pairs
}

// Coefficients are the validated bounded integers for a, b and c.
type Coefficients struct {
	A int32
	B int32
	C int32
}

// Get returns the value stored for l and whether l is a known label.
func (c Coefficients) Get(l Label) (int32, bool) {
	switch l {
	case A:
		return c.A, true
	case B:
		return c.B, true
	case C:
		return c.C, true
	}
	return 0, false
}

// Set stores v under l. Unknown labels are rejected.
func (c *Coefficients) Set(l Label, v int32) error {
	switch l {
	case A:
		c.A = v
	case B:
		c.B = v
	case C:
		c.C = v
	default:
		return fmt.Errorf("unknown coefficient label %q", l)
	}
	return nil
}

// Pairs returns a label→value snapshot in insertion order.
func (c Coefficients) Pairs() []Pair {
	return []Pair{
		{Key: string(A), Value: strconv.FormatInt(int64(c.A), 10)},
		{Key: string(B), Value: strconv.FormatInt(int64(c.B), 10)},
		{Key: string(C), Value: strconv.FormatInt(int64(c.C), 10)},
	}
}

func (l Label) index() int {
	for i, known := range Labels {
		if known == l {
			return i
		}
	}
	return -1
}
