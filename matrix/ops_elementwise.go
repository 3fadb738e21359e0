// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparison helpers.
//
// Purpose:
//   - Provide tolerance-based equality used by tests and by callers that
//     compare operators produced along different code paths.

package matrix

import (
	"fmt"
	"math/cmplx"
)

// MaxAbsDiff returns max |a[i,j] - b[i,j]|.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(d²).
func MaxAbsDiff(a, b Operator) (float64, error) {
	if err := validateBinary(a, b); err != nil {
		return 0, fmt.Errorf("MaxAbsDiff: %w", err)
	}
	be := b.Elements()
	var worst float64
	for i, z := range a.Elements() {
		if d := cmplx.Abs(z - be[i]); d > worst {
			worst = d
		}
	}

	return worst, nil
}

// AllClose reports whether |a - b| ≤ atol + rtol·|b| holds element-wise.
//
// Implementation:
//   - Stage 1: Validate tolerances and shapes.
//   - Stage 2: Single pass with early exit on the first violation.
//
// Errors: ErrNaNInf (bad tolerances), ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b Operator, rtol, atol float64) (bool, error) {
	var err error
	if rtol, err = ValidateTol(rtol); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	if atol, err = ValidateTol(atol); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	if err = validateBinary(a, b); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	be := b.Elements()
	for i, z := range a.Elements() {
		if cmplx.Abs(z-be[i]) > atol+rtol*cmplx.Abs(be[i]) {
			return false, nil
		}
	}

	return true, nil
}
