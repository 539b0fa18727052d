// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

package solver

import "strconv"

// FormatValue renders v with the shortest representation that round-trips.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
