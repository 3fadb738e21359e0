// SPDX-License-Identifier: MIT
// Package qureg: error taxonomy.
//
// Two layers of sentinels:
//   - kinds (ErrInvalidInput, ErrArrayLength, ErrAllocation, ErrZeroProbability, ErrIO)
//     say what sort of failure happened;
//   - reasons (ErrInvalidQubit, ErrNotUnitary, ...) say which precondition failed.
//
// Every reason unwraps to its kind, so errors.Is(err, ErrNotUnitary) and
// errors.Is(err, ErrInvalidInput) both hold for a non-unitary matrix.
// Operations wrap with fmt.Errorf("qureg.<Op>: ...: %w") at the detection site.

package qureg

import "errors"

// Kinds.
var (
	// ErrInvalidInput: a parameter violates a documented precondition.
	ErrInvalidInput = errors.New("qureg: invalid input")

	// ErrArrayLength: a caller-supplied buffer is too short or lengths disagree.
	ErrArrayLength = errors.New("qureg: invalid array length")

	// ErrAllocation: the amplitude store could not be allocated.
	ErrAllocation = errors.New("qureg: allocation failed")

	// ErrZeroProbability: forced collapse onto an outcome of (numerically) zero probability.
	ErrZeroProbability = errors.New("qureg: outcome has zero probability")

	// ErrIO: writing a QASM log or state dump failed.
	ErrIO = errors.New("qureg: I/O failure")
)

// reasonError is a distinct sentinel that also matches its kind.
type reasonError struct {
	kind error
	msg  string
}

func (e *reasonError) Error() string { return "qureg: " + e.msg }
func (e *reasonError) Unwrap() error { return e.kind }

func reason(kind error, msg string) error { return &reasonError{kind: kind, msg: msg} }

// Reasons of ErrInvalidInput.
var (
	ErrInvalidQubit           = reason(ErrInvalidInput, "qubit index out of range")
	ErrRepeatedQubit          = reason(ErrInvalidInput, "qubit index repeated")
	ErrControlTargetCollision = reason(ErrInvalidInput, "control and target qubits overlap")
	ErrInvalidNumQubits       = reason(ErrInvalidInput, "invalid number of qubits")
	ErrTooManyQubits          = reason(ErrInvalidInput, "more qubits than the register holds")
	ErrInvalidIndex           = reason(ErrInvalidInput, "amplitude index out of range")
	ErrDimensionMismatch      = reason(ErrInvalidInput, "registers differ in size or kind")
	ErrMatrixSize             = reason(ErrInvalidInput, "matrix size does not match the targets")
	ErrNotUnitary             = reason(ErrInvalidInput, "matrix is not unitary")
	ErrNonUnitaryPair         = reason(ErrInvalidInput, "|alpha|^2 + |beta|^2 != 1")
	ErrNotCPTP                = reason(ErrInvalidInput, "Kraus operators are not trace preserving")
	ErrInvalidKrausCount      = reason(ErrInvalidInput, "invalid number of Kraus operators")
	ErrInvalidOutcome         = reason(ErrInvalidInput, "measurement outcome must be 0 or 1")
	ErrInvalidProbability     = reason(ErrInvalidInput, "probability out of range")
	ErrNotDensityMatrix       = reason(ErrInvalidInput, "operation requires a density matrix")
	ErrNotStateVector         = reason(ErrInvalidInput, "operation requires a state-vector")
	ErrZeroVector             = reason(ErrInvalidInput, "rotation axis has zero length")
	ErrInvalidControlState    = reason(ErrInvalidInput, "control state must be 0 or 1")
	ErrInvalidPauliCode       = reason(ErrInvalidInput, "invalid Pauli code")
	ErrInvalidTrotterParams   = reason(ErrInvalidInput, "invalid Trotter order or repetitions")
	ErrNonFinite              = reason(ErrInvalidInput, "NaN or Inf parameter")
	ErrNilArgument            = reason(ErrInvalidInput, "nil argument")
)

// ErrPhaseFunc is the reason shared by every phase-function validation failure;
// the finer reasons below unwrap to it.
var ErrPhaseFunc = reason(ErrInvalidInput, "invalid phase function")

// Phase-function reasons (unwrap to ErrPhaseFunc, then ErrInvalidInput).
var (
	ErrPhaseFuncTerms         = reason(ErrPhaseFunc, "coefficient and exponent counts differ or are empty")
	ErrPhaseFuncNegativeExp   = reason(ErrPhaseFunc, "negative exponent diverges at index 0")
	ErrPhaseFuncFractionalExp = reason(ErrPhaseFunc, "fractional exponent is complex at negative indices")
	ErrPhaseFuncOverrideIndex = reason(ErrPhaseFunc, "override index not representable")
	ErrPhaseFuncOverrideCount = reason(ErrPhaseFunc, "override index and phase counts disagree")
	ErrPhaseFuncRegisterSize  = reason(ErrPhaseFunc, "sub-register too small for the encoding")
	ErrPhaseFuncNumRegs       = reason(ErrPhaseFunc, "number of sub-registers out of range")
	ErrPhaseFuncName          = reason(ErrPhaseFunc, "unknown phase function or encoding")
	ErrPhaseFuncParams        = reason(ErrPhaseFunc, "wrong number of phase function parameters")
	ErrPhaseFuncOddRegs       = reason(ErrPhaseFunc, "distance functions need an even number of sub-registers")
)
