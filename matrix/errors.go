// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and validators MUST return these sentinels and
// tests MUST check them via errors.Is. No kernel should panic on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with fmt.Errorf("ctx: %w", ErrX)
// at the detection site; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index/NaN -> dimension mismatch -> structural violations
// (unitarity, trace preservation).

var (
	// ErrInvalidDimensions indicates that a requested operator width (qubit count)
	// is non-positive or above MaxOperatorQubits.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when literal input grids do not describe a square
	// 2^n × 2^n operator (ragged rows, non power-of-two side, real/imag disagreement).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul of operators on different qubit counts, or a Kraus list mixing widths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf component where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil operator (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNotUnitary signals that U†U deviates from the identity by more than eps.
	ErrNotUnitary = errors.New("matrix: matrix is not unitary within eps")

	// ErrNotCPTP signals that Σ K†K over a Kraus list deviates from the identity
	// by more than eps (the map is not trace preserving).
	ErrNotCPTP = errors.New("matrix: operators are not trace preserving within eps")

	// ErrEmptyOperatorList signals that a Kraus list has no operators.
	ErrEmptyOperatorList = errors.New("matrix: empty operator list")

	// ErrZeroVector indicates that a rotation axis has zero length.
	ErrZeroVector = errors.New("matrix: zero-length vector")
)
