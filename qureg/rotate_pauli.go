// SPDX-License-Identifier: MIT
// Package qureg - multi-qubit Pauli-tensor rotations.
//
// exp(-iθ/2·P₀⊗…⊗P_k) is applied without building the tensor:
//   - Stage 1: rotate every X / Y target into the Z basis (H, or S† then H);
//   - Stage 2: multiply by e^{∓iθ/2} according to the Z-parity of the targets;
//   - Stage 3: undo Stage 1 (H, or H then S).
//
// Identity factors are left out of the parity mask. Controls only gate the
// Stage 2 diagonal: outside the control space Stages 1 and 3 cancel.

package qureg

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/qsim/pauli"
)

var (
	matS    = []complex128{1, 0, 0, 1i}
	matSdag = []complex128{1, 0, 0, -1i}
)

// parityPhase multiplies by e^{-iθ/2} on even Z-parity of mask and e^{+iθ/2}
// on odd parity, restricted to indices passing (cmask, cval).
func (r *Register) parityPhase(mask, cmask, cval int, theta float64) {
	s, c := math.Sincos(theta / 2)
	even, odd := complex(c, -s), complex(c, s)
	r.applyDiag(func(i int) complex128 {
		if i&cmask != cval {
			return 1
		}
		if bits.OnesCount(uint(i&mask))&1 == 0 {
			return even
		}
		return odd
	})
}

// MultiRotateZ applies exp(-iθ/2·Z⊗…⊗Z) to qubits.
func (r *Register) MultiRotateZ(qubits []int, theta float64) error {
	r.mustOpen()
	if err := r.validateQubits("target", qubits); err != nil {
		return r.fail(opMultiRotateZ, err)
	}
	if err := validateFinite(theta); err != nil {
		return r.fail(opMultiRotateZ, err)
	}
	r.parityPhase(qubitMask(qubits), 0, 0, theta)
	r.qasm.Comment("MultiRotateZ(%.14g) on %v", theta, qubits)
	r.done(opMultiRotateZ)

	return nil
}

// MultiControlledMultiRotateZ is MultiRotateZ where every control is 1.
func (r *Register) MultiControlledMultiRotateZ(ctrls, targets []int, theta float64) error {
	r.mustOpen()
	if err := r.validateControlTargets(ctrls, targets); err != nil {
		return r.fail(opMultiControlledMultiRotateZ, err)
	}
	if err := validateFinite(theta); err != nil {
		return r.fail(opMultiControlledMultiRotateZ, err)
	}
	cmask, cval := controlMask(ctrls, nil)
	r.parityPhase(qubitMask(targets), cmask, cval, theta)
	r.qasm.Comment("MultiControlledMultiRotateZ(%.14g) controls %v targets %v", theta, ctrls, targets)
	r.done(opMultiControlledMultiRotateZ)

	return nil
}

// MultiRotatePauli applies exp(-iθ/2·⊗ codes[j] on targets[j]).
//
// Errors: ErrArrayLength when len(codes) != len(targets), ErrInvalidPauliCode.
func (r *Register) MultiRotatePauli(targets []int, codes []pauli.OpType, theta float64) error {
	r.mustOpen()
	if err := r.validatePauliRotation(nil, targets, codes, theta); err != nil {
		return r.fail(opMultiRotatePauli, err)
	}
	r.rotatePauli(0, 0, targets, codes, theta)
	r.qasm.Comment("MultiRotatePauli(%.14g) on %v codes %v", theta, targets, codes)
	r.done(opMultiRotatePauli)

	return nil
}

// MultiControlledMultiRotatePauli is MultiRotatePauli where every control is 1.
func (r *Register) MultiControlledMultiRotatePauli(ctrls, targets []int, codes []pauli.OpType, theta float64) error {
	r.mustOpen()
	if err := requireControls(ctrls); err != nil {
		return r.fail(opMultiControlledMultiRotatePauli, err)
	}
	if err := r.validatePauliRotation(ctrls, targets, codes, theta); err != nil {
		return r.fail(opMultiControlledMultiRotatePauli, err)
	}
	cmask, cval := controlMask(ctrls, nil)
	r.rotatePauli(cmask, cval, targets, codes, theta)
	r.qasm.Comment("MultiControlledMultiRotatePauli(%.14g) controls %v targets %v codes %v", theta, ctrls, targets, codes)
	r.done(opMultiControlledMultiRotatePauli)

	return nil
}

func (r *Register) validatePauliRotation(ctrls, targets []int, codes []pauli.OpType, theta float64) error {
	if err := r.validateTargets(ctrls, targets); err != nil {
		return err
	}
	if len(codes) != len(targets) {
		return fmt.Errorf("%d codes for %d targets: %w", len(codes), len(targets), ErrArrayLength)
	}
	if err := validatePauliCodes(codes); err != nil {
		return err
	}

	return validateFinite(theta)
}

// rotatePauli runs the three stages; callers have validated.
func (r *Register) rotatePauli(cmask, cval int, targets []int, codes []pauli.OpType, theta float64) {
	mask := 0
	for j, t := range targets {
		switch codes[j] {
		case pauli.X:
			r.applyGate(nil, nil, []int{t}, matH)
		case pauli.Y:
			r.applyGate(nil, nil, []int{t}, matSdag)
			r.applyGate(nil, nil, []int{t}, matH)
		}
		if codes[j] != pauli.I {
			mask |= 1 << t
		}
	}
	r.parityPhase(mask, cmask, cval, theta)
	for j, t := range targets {
		switch codes[j] {
		case pauli.X:
			r.applyGate(nil, nil, []int{t}, matH)
		case pauli.Y:
			r.applyGate(nil, nil, []int{t}, matH)
			r.applyGate(nil, nil, []int{t}, matS)
		}
	}
}
