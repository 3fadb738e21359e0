// SPDX-License-Identifier: MIT
// Package qureg - input validation.
//
// Purpose:
//   - Every exported operation validates completely before touching the store.
//   - Helpers return reason sentinels wrapped with detail; the caller adds the
//     operation name through (*Register).fail.
//
// Note:
//   - Fixed order per operation: register kind → qubit lists → matrix shape →
//     matrix structure (unitarity / trace preservation) → numeric parameters.

package qureg

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qsim/matrix"
	"github.com/katalvlaran/qsim/pauli"
)

// validateQubit checks q ∈ [0, N).
func (r *Register) validateQubit(q int) error {
	if q < 0 || q >= r.numQubits {
		return fmt.Errorf("qubit %d not in [0,%d): %w", q, r.numQubits, ErrInvalidQubit)
	}

	return nil
}

// validateQubits checks a non-empty list of valid, distinct qubits no longer
// than the register.
func (r *Register) validateQubits(role string, qs []int) error {
	if len(qs) == 0 {
		return fmt.Errorf("no %s qubits: %w", role, ErrInvalidNumQubits)
	}
	if len(qs) > r.numQubits {
		return fmt.Errorf("%d %s qubits on %d: %w", len(qs), role, r.numQubits, ErrTooManyQubits)
	}
	var seen uint64
	for _, q := range qs {
		if err := r.validateQubit(q); err != nil {
			return err
		}
		if seen&(1<<q) != 0 {
			return fmt.Errorf("%s qubit %d: %w", role, q, ErrRepeatedQubit)
		}
		seen |= 1 << q
	}

	return nil
}

// validateControlTargets checks both lists and their disjointness.
func (r *Register) validateControlTargets(ctrls, targs []int) error {
	if err := r.validateQubits("control", ctrls); err != nil {
		return err
	}
	if err := r.validateQubits("target", targs); err != nil {
		return err
	}
	if len(ctrls)+len(targs) > r.numQubits {
		return fmt.Errorf("%d controls + %d targets: %w", len(ctrls), len(targs), ErrTooManyQubits)
	}
	if qubitMask(ctrls)&qubitMask(targs) != 0 {
		return ErrControlTargetCollision
	}

	return nil
}

// validateControlState checks a per-control 0/1 pattern.
func validateControlState(ctrls, states []int) error {
	if len(states) != len(ctrls) {
		return fmt.Errorf("%d states for %d controls: %w", len(states), len(ctrls), ErrInvalidControlState)
	}
	for i, s := range states {
		if s != 0 && s != 1 {
			return fmt.Errorf("state[%d]=%d: %w", i, s, ErrInvalidControlState)
		}
	}

	return nil
}

// validateOperator checks width against numTargets and unitarity when unitary is set.
func (r *Register) validateOperator(op matrix.Operator, numTargets int, unitary bool) error {
	if err := matrix.ValidateNotNil(op); err != nil {
		return fmt.Errorf("%w: %w", err, ErrNilArgument)
	}
	if op.NumQubits() != numTargets {
		return fmt.Errorf("%d-qubit matrix on %d targets: %w", op.NumQubits(), numTargets, ErrMatrixSize)
	}
	if err := matrix.ValidateFinite(op); err != nil {
		return fmt.Errorf("%w: %w", err, ErrNonFinite)
	}
	if unitary {
		if err := matrix.ValidateUnitary(op, r.eps); err != nil {
			return fmt.Errorf("deviation %.3g: %w", matrix.UnitarityDeviation(op), ErrNotUnitary)
		}
	}

	return nil
}

// validateCompactPair checks |α|²+|β|² = 1 within eps.
func (r *Register) validateCompactPair(alpha, beta complex128) error {
	if cmplx.IsNaN(alpha) || cmplx.IsInf(alpha) || cmplx.IsNaN(beta) || cmplx.IsInf(beta) {
		return ErrNonFinite
	}
	n := real(alpha)*real(alpha) + imag(alpha)*imag(alpha) + real(beta)*real(beta) + imag(beta)*imag(beta)
	if math.Abs(n-1) > r.eps {
		return fmt.Errorf("|alpha|^2+|beta|^2 = %.15g: %w", n, ErrNonUnitaryPair)
	}

	return nil
}

// validateKraus checks count, width and (when tp) trace preservation.
func validateKraus[T matrix.Operator](r *Register, ops []T, numTargets int, tp bool) error {
	maxOps := 1 << (2 * numTargets)
	if len(ops) < 1 || len(ops) > maxOps {
		return fmt.Errorf("%d operators, want 1..%d: %w", len(ops), maxOps, ErrInvalidKrausCount)
	}
	for i := range ops {
		if err := r.validateOperator(ops[i], numTargets, false); err != nil {
			return fmt.Errorf("operator %d: %w", i, err)
		}
	}
	if tp {
		if err := matrix.ValidateCPTP(ops, r.eps); err != nil {
			return fmt.Errorf("deviation %.3g: %w", matrix.CPTPDeviation(ops), ErrNotCPTP)
		}
	}
	// the superoperator acts on twice the targets
	if 2*numTargets > matrix.MaxOperatorQubits {
		return fmt.Errorf("%d-qubit map: %w", numTargets, ErrTooManyQubits)
	}

	return nil
}

func (r *Register) requireDensity() error {
	if !r.isDensity {
		return ErrNotDensityMatrix
	}

	return nil
}

func (r *Register) requireStateVector() error {
	if r.isDensity {
		return ErrNotStateVector
	}

	return nil
}

// validateProb checks p ∈ [0, max].
func validateProb(p, max float64) error {
	if math.IsNaN(p) || p < 0 || p > max {
		return fmt.Errorf("p=%g not in [0,%g]: %w", p, max, ErrInvalidProbability)
	}

	return nil
}

func validateOutcome(o int) error {
	if o != 0 && o != 1 {
		return fmt.Errorf("outcome %d: %w", o, ErrInvalidOutcome)
	}

	return nil
}

func validateFinite(xs ...float64) error {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrNonFinite
		}
	}

	return nil
}

// validateMatching checks two registers of equal size and kind.
func validateMatching(a, b *Register) error {
	if a == nil || b == nil {
		return ErrNilArgument
	}
	a.mustOpen()
	b.mustOpen()
	if a.numQubits != b.numQubits || a.isDensity != b.isDensity {
		return fmt.Errorf("%s vs %s: %w", a.shape(), b.shape(), ErrDimensionMismatch)
	}

	return nil
}

// validatePauliCodes checks every code is I, X, Y or Z.
func validatePauliCodes(codes []pauli.OpType) error {
	if err := pauli.ValidateCodes(codes); err != nil {
		return fmt.Errorf("%w: %w", err, ErrInvalidPauliCode)
	}

	return nil
}

// validateHamil checks h and its width against the register.
func (r *Register) validateHamil(h *pauli.Hamil) error {
	if err := h.Validate(); err != nil {
		if errors.Is(err, pauli.ErrInvalidCode) {
			return fmt.Errorf("%w: %w", err, ErrInvalidPauliCode)
		}
		if errors.Is(err, pauli.ErrNilHamil) {
			return fmt.Errorf("%w: %w", err, ErrNilArgument)
		}

		return fmt.Errorf("%w: %w", err, ErrInvalidInput)
	}
	if h.NumQubits != r.numQubits {
		return fmt.Errorf("%d-qubit Hamiltonian on %d qubits: %w", h.NumQubits, r.numQubits, ErrDimensionMismatch)
	}

	return nil
}

// validateWorkspace checks the expectation-value scratch register.
func (r *Register) validateWorkspace(ws *Register) error {
	if ws == r {
		return fmt.Errorf("workspace aliases the register: %w", ErrInvalidInput)
	}

	return validateMatching(r, ws)
}
