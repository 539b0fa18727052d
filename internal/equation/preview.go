// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

package equation

import (
	"fmt"
	"math/big"
	"strings"
)

// Preview renders Template with every field that reads as an integer
// substituted for its label. Fields that do not parse keep the label name as
// a placeholder.
func Preview(raw RawInputs) string {
	terms := make([]any, len(Labels))
	for i, l := range Labels {
		terms[i] = previewTerm(l, raw[i])
	}
	return fmt.Sprintf("%s * x^2 + %s * x + %s = 0", terms...)
}

func previewTerm(l Label, text string) string {
	n, ok := new(big.Int).SetString(strings.TrimSpace(text), 10)
	if !ok {
		return string(l)
	}
	return n.String()
}
