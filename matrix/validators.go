// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operator validation.
//  - Keep the register engine minimal by delegating nil/shape/unitarity/CPTP checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.
//  - Unitarity runs O(d³) on a d×d operator; trace preservation O(k·d³) for k operators.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Finite → Shape → Structure).

package matrix

import (
	"fmt"
	"math/cmplx"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNilOperator reports a nil interface or a typed nil *ComplexMatrixN.
func isNilOperator(op Operator) bool {
	if op == nil {
		return true
	}
	if m, ok := op.(*ComplexMatrixN); ok && m == nil {
		return true
	}

	return false
}

// ValidateNotNil ensures the operator reference is non-nil.
// Returns ErrNilMatrix otherwise. Complexity: O(1).
func ValidateNotNil(op Operator) error {
	if isNilOperator(op) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameDim ensures a and b act on the same number of qubits.
// Assumes both are non-nil. Complexity: O(1).
func ValidateSameDim(a, b Operator) error {
	if a.NumQubits() != b.NumQubits() {
		return validatorErrorf("ValidateSameDim", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects operators holding NaN or ±Inf components.
// Complexity: O(d²).
func ValidateFinite(op Operator) error {
	if err := ValidateNotNil(op); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	for _, z := range op.Elements() {
		if isNonFiniteComplex(z) {
			return validatorErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}

// ValidateTol rejects NaN/Inf tolerances and returns |tol|.
func ValidateTol(tol float64) (float64, error) {
	if isNonFinite(tol) {
		return 0, validatorErrorf("ValidateTol", ErrNaNInf)
	}
	if tol < 0 {
		tol = -tol
	}

	return tol, nil
}

// identityDeviation returns max |A[i,j] - δij| over a d×d row-major buffer.
func identityDeviation(a []complex128, d int) float64 {
	var worst, dev float64
	var i, j int
	for i = 0; i < d; i++ {
		for j = 0; j < d; j++ {
			z := a[i*d+j]
			if i == j {
				z -= 1
			}
			dev = cmplx.Abs(z)
			if dev > worst {
				worst = dev
			}
		}
	}

	return worst
}

// gram accumulates acc += A†A for a d×d row-major buffer a.
func gram(acc, a []complex128, d int) {
	var i, j, k int
	for i = 0; i < d; i++ {
		for j = 0; j < d; j++ {
			var s complex128
			for k = 0; k < d; k++ {
				s += cmplx.Conj(a[k*d+i]) * a[k*d+j]
			}
			acc[i*d+j] += s
		}
	}
}

// UnitarityDeviation returns max |(U†U - I)[i,j]|; 0 for an exact unitary.
// Assumes op is non-nil. Complexity: O(d³).
func UnitarityDeviation(op Operator) float64 {
	d := op.Dim()
	acc := make([]complex128, d*d)
	gram(acc, op.Elements(), d)

	return identityDeviation(acc, d)
}

// IsUnitary reports whether op is unitary within eps.
func IsUnitary(op Operator, eps float64) bool {
	if isNilOperator(op) {
		return false
	}

	return UnitarityDeviation(op) <= eps
}

// ValidateUnitary checks U†U = I within eps.
//
// Errors: ErrNilMatrix, ErrNaNInf (bad tol or entries), ErrNotUnitary.
// Complexity: O(d³).
func ValidateUnitary(op Operator, eps float64) error {
	var err error
	if eps, err = ValidateTol(eps); err != nil {
		return validatorErrorf("ValidateUnitary", err)
	}
	if err = ValidateFinite(op); err != nil {
		return validatorErrorf("ValidateUnitary", err)
	}
	if UnitarityDeviation(op) > eps {
		return validatorErrorf("ValidateUnitary", ErrNotUnitary)
	}

	return nil
}

// ValidateKrausList checks that ops is non-empty, free of nils and of a
// single width. It does not check trace preservation.
func ValidateKrausList[T Operator](ops []T) error {
	if len(ops) == 0 {
		return validatorErrorf("ValidateKrausList", ErrEmptyOperatorList)
	}
	for i := range ops {
		if err := ValidateFinite(ops[i]); err != nil {
			return validatorErrorf("ValidateKrausList", err)
		}
		if err := ValidateSameDim(ops[0], ops[i]); err != nil {
			return validatorErrorf("ValidateKrausList", err)
		}
	}

	return nil
}

// CPTPDeviation returns max |(Σ K†K - I)[i,j]| over a validated Kraus list.
// Complexity: O(k·d³).
func CPTPDeviation[T Operator](ops []T) float64 {
	d := ops[0].Dim()
	acc := make([]complex128, d*d)
	for i := range ops {
		gram(acc, ops[i].Elements(), d)
	}

	return identityDeviation(acc, d)
}

// ValidateCPTP checks that ops form a completely positive, trace-preserving
// map: Σ_k K_k†K_k = I within eps. Complete positivity holds by construction
// for any Kraus list.
//
// Errors: ErrEmptyOperatorList, ErrNilMatrix, ErrNaNInf, ErrDimensionMismatch, ErrNotCPTP.
func ValidateCPTP[T Operator](ops []T, eps float64) error {
	var err error
	if eps, err = ValidateTol(eps); err != nil {
		return validatorErrorf("ValidateCPTP", err)
	}
	if err = ValidateKrausList(ops); err != nil {
		return validatorErrorf("ValidateCPTP", err)
	}
	if CPTPDeviation(ops) > eps {
		return validatorErrorf("ValidateCPTP", ErrNotCPTP)
	}

	return nil
}
