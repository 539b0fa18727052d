// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

// Package solver computes the real roots of a·x²+b·x+c=0 for bounded integer
// coefficients.
package solver // import "github.com/toeirei/quadsolver/internal/solver"

import (
	"fmt"
	"math"
	"math/big"

	"github.com/toeirei/quadsolver/internal/equation"
	"github.com/toeirei/quadsolver/internal/logging"
)

// Reason classifies why no roots were produced.
type Reason int

const (
	// NoRealRoots means the discriminant is negative.
	NoRealRoots Reason = iota
	// NotQuadratic means a is zero and the quadratic formula does not apply.
	NotQuadratic
)

// SolveError carries the coefficients for which no real roots exist.
type SolveError struct {
	Reason       Reason
	Coefficients equation.Coefficients
}

func (e *SolveError) Error() string {
	if e.Reason == NotQuadratic {
		return "not a quadratic equation: a is zero"
	}
	return "no real roots found"
}

// Snapshot returns a, b and c as they were when solving failed.
func (e *SolveError) Snapshot() []equation.Pair {
	return e.Coefficients.Pairs()
}

// Root is one computed solution with its display name (x, x1 or x2).
type Root struct {
	Name  string
	Value float64
}

// Solution is the result of a successful solve.
type Solution struct {
	Discriminant int32
	// Overflowed is set when the int32 discriminant differs from the exact
	// value. The roots are still computed from the wrapped value.
	Overflowed bool
	Roots      []Root
}

// Discriminant returns b²−4ac in wrapping int32 arithmetic.
func Discriminant(c equation.Coefficients) int32 {
	return c.B*c.B - 4*c.A*c.C
}

// ExactDiscriminant returns b²−4ac without overflow.
func ExactDiscriminant(c equation.Coefficients) *big.Int {
	a, b, cc := big.NewInt(int64(c.A)), big.NewInt(int64(c.B)), big.NewInt(int64(c.C))
	bb := new(big.Int).Mul(b, b)
	ac4 := new(big.Int).Mul(a, cc)
	ac4.Mul(ac4, big.NewInt(4))
	return bb.Sub(bb, ac4)
}

// Solve returns the real roots of the equation, or a *SolveError when a is
// zero or the discriminant is negative.
func Solve(c equation.Coefficients) (Solution, error) {
	if c.A == 0 {
		return Solution{}, &SolveError{Reason: NotQuadratic, Coefficients: c}
	}

	d := Discriminant(c)
	sol := Solution{Discriminant: d}
	if exact := ExactDiscriminant(c); !exact.IsInt64() || exact.Int64() != int64(d) {
		sol.Overflowed = true
		logging.Warnf("solver: discriminant overflowed int32 (exact %s, computed %d)", exact, d)
	}
	logging.Debugf("solver: discriminant %d", d)

	switch {
	case d < 0:
		return Solution{}, &SolveError{Reason: NoRealRoots, Coefficients: c}
	case d == 0:
		sol.Roots = []Root{{Name: "x", Value: root(c, d, 1)}}
	default:
		sol.Roots = []Root{
			{Name: "x1", Value: root(c, d, 1)},
			{Name: "x2", Value: root(c, d, -1)},
		}
	}
	return sol, nil
}

func root(c equation.Coefficients, d int32, sign float64) float64 {
	x := (-float64(c.B) + sign*math.Sqrt(float64(d))) / (2 * float64(c.A))
	// Normalizes -0 to 0.
	return x + 0
}

// String renders a root as "name = value".
func (r Root) String() string {
	return fmt.Sprintf("%s = %s", r.Name, FormatValue(r.Value))
}
