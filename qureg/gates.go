// SPDX-License-Identifier: MIT
// Package qureg - fixed gates.
//
// Every gate validates, applies through the gate layer (so density matrices
// evolve as UρU†), records its QASM line, and counts itself.

package qureg

import (
	"math"

	"github.com/katalvlaran/qsim/qasm"
)

var (
	matX = []complex128{0, 1, 1, 0}
	matY = []complex128{0, -1i, 1i, 0}
	matH = []complex128{
		complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0),
		complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0),
	}
	matSwap = []complex128{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	}
	matSqrtSwap = []complex128{
		1, 0, 0, 0,
		0, 0.5 + 0.5i, 0.5 - 0.5i, 0,
		0, 0.5 - 0.5i, 0.5 + 0.5i, 0,
		0, 0, 0, 1,
	}
)

// phaseOn multiplies by e^{iθ} every basis state whose bits in mask are all 1.
func (r *Register) phaseOn(mask int, theta float64) {
	s, c := math.Sincos(theta)
	f := complex(c, s)
	r.applyDiag(func(i int) complex128 {
		if i&mask == mask {
			return f
		}
		return 1
	})
}

// PhaseShift applies diag(1, e^{iθ}) to target.
func (r *Register) PhaseShift(target int, theta float64) error {
	r.mustOpen()
	if err := r.validateQubit(target); err != nil {
		return r.fail(opPhaseShift, err)
	}
	if err := validateFinite(theta); err != nil {
		return r.fail(opPhaseShift, err)
	}
	r.phaseOn(1<<target, theta)
	r.qasm.Gate(qasm.GatePhase, nil, []int{target}, theta)
	r.done(opPhaseShift)

	return nil
}

// ControlledPhaseShift applies e^{iθ} where both qubits are 1.
func (r *Register) ControlledPhaseShift(q1, q2 int, theta float64) error {
	r.mustOpen()
	if err := r.validateControlTargets([]int{q1}, []int{q2}); err != nil {
		return r.fail(opControlledPhaseShift, err)
	}
	if err := validateFinite(theta); err != nil {
		return r.fail(opControlledPhaseShift, err)
	}
	r.phaseOn(1<<q1|1<<q2, theta)
	r.qasm.Gate(qasm.GatePhase, []int{q1}, []int{q2}, theta)
	r.done(opControlledPhaseShift)

	return nil
}

// MultiControlledPhaseShift applies e^{iθ} where every listed qubit is 1.
func (r *Register) MultiControlledPhaseShift(qubits []int, theta float64) error {
	r.mustOpen()
	if err := r.validateQubits("control", qubits); err != nil {
		return r.fail(opMultiControlledPhaseShift, err)
	}
	if err := validateFinite(theta); err != nil {
		return r.fail(opMultiControlledPhaseShift, err)
	}
	r.phaseOn(qubitMask(qubits), theta)
	n := len(qubits)
	r.qasm.Gate(qasm.GatePhase, qubits[:n-1], qubits[n-1:], theta)
	r.done(opMultiControlledPhaseShift)

	return nil
}

// ControlledPhaseFlip negates amplitudes where both qubits are 1.
func (r *Register) ControlledPhaseFlip(q1, q2 int) error {
	r.mustOpen()
	if err := r.validateControlTargets([]int{q1}, []int{q2}); err != nil {
		return r.fail(opControlledPhaseFlip, err)
	}
	r.phaseOn(1<<q1|1<<q2, math.Pi)
	r.qasm.Gate(qasm.GateZ, []int{q1}, []int{q2})
	r.done(opControlledPhaseFlip)

	return nil
}

// MultiControlledPhaseFlip negates amplitudes where every listed qubit is 1.
func (r *Register) MultiControlledPhaseFlip(qubits []int) error {
	r.mustOpen()
	if err := r.validateQubits("control", qubits); err != nil {
		return r.fail(opMultiControlledPhaseFlip, err)
	}
	r.phaseOn(qubitMask(qubits), math.Pi)
	n := len(qubits)
	r.qasm.Gate(qasm.GateZ, qubits[:n-1], qubits[n-1:])
	r.done(opMultiControlledPhaseFlip)

	return nil
}

// SGate applies diag(1, i).
func (r *Register) SGate(target int) error {
	r.mustOpen()
	if err := r.validateQubit(target); err != nil {
		return r.fail(opSGate, err)
	}
	r.applyDiag(func(i int) complex128 {
		if i>>target&1 == 1 {
			return 1i
		}
		return 1
	})
	r.qasm.Gate(qasm.GateS, nil, []int{target})
	r.done(opSGate)

	return nil
}

// TGate applies diag(1, e^{iπ/4}).
func (r *Register) TGate(target int) error {
	r.mustOpen()
	if err := r.validateQubit(target); err != nil {
		return r.fail(opTGate, err)
	}
	r.phaseOn(1<<target, math.Pi/4)
	r.qasm.Gate(qasm.GateT, nil, []int{target})
	r.done(opTGate)

	return nil
}

// PauliX flips target.
func (r *Register) PauliX(target int) error {
	r.mustOpen()
	if err := r.validateQubit(target); err != nil {
		return r.fail(opPauliX, err)
	}
	r.applyNot(nil, nil, []int{target})
	r.qasm.Gate(qasm.GateX, nil, []int{target})
	r.done(opPauliX)

	return nil
}

// PauliY applies Y to target.
func (r *Register) PauliY(target int) error {
	r.mustOpen()
	if err := r.validateQubit(target); err != nil {
		return r.fail(opPauliY, err)
	}
	r.applyGate(nil, nil, []int{target}, matY)
	r.qasm.Gate(qasm.GateY, nil, []int{target})
	r.done(opPauliY)

	return nil
}

// PauliZ negates amplitudes with target set.
func (r *Register) PauliZ(target int) error {
	r.mustOpen()
	if err := r.validateQubit(target); err != nil {
		return r.fail(opPauliZ, err)
	}
	r.applyDiag(func(i int) complex128 {
		if i>>target&1 == 1 {
			return -1
		}
		return 1
	})
	r.qasm.Gate(qasm.GateZ, nil, []int{target})
	r.done(opPauliZ)

	return nil
}

// Hadamard applies H to target.
func (r *Register) Hadamard(target int) error {
	r.mustOpen()
	if err := r.validateQubit(target); err != nil {
		return r.fail(opHadamard, err)
	}
	r.applyGate(nil, nil, []int{target}, matH)
	r.qasm.Gate(qasm.GateH, nil, []int{target})
	r.done(opHadamard)

	return nil
}

// ControlledNot flips target where control is 1.
func (r *Register) ControlledNot(control, target int) error {
	r.mustOpen()
	if err := r.validateControlTargets([]int{control}, []int{target}); err != nil {
		return r.fail(opControlledNot, err)
	}
	r.applyNot([]int{control}, nil, []int{target})
	r.qasm.Gate(qasm.GateX, []int{control}, []int{target})
	r.done(opControlledNot)

	return nil
}

// MultiQubitNot flips every target.
func (r *Register) MultiQubitNot(targets []int) error {
	r.mustOpen()
	if err := r.validateQubits("target", targets); err != nil {
		return r.fail(opMultiQubitNot, err)
	}
	r.applyNot(nil, nil, targets)
	for _, t := range targets {
		r.qasm.Gate(qasm.GateX, nil, []int{t})
	}
	r.done(opMultiQubitNot)

	return nil
}

// MultiControlledMultiQubitNot flips every target where all controls are 1.
func (r *Register) MultiControlledMultiQubitNot(ctrls, targets []int) error {
	r.mustOpen()
	if err := r.validateControlTargets(ctrls, targets); err != nil {
		return r.fail(opMultiControlledMultiQubitNot, err)
	}
	r.applyNot(ctrls, nil, targets)
	for _, t := range targets {
		r.qasm.Gate(qasm.GateX, ctrls, []int{t})
	}
	r.done(opMultiControlledMultiQubitNot)

	return nil
}

// ControlledPauliY applies Y to target where control is 1.
func (r *Register) ControlledPauliY(control, target int) error {
	r.mustOpen()
	if err := r.validateControlTargets([]int{control}, []int{target}); err != nil {
		return r.fail(opControlledPauliY, err)
	}
	r.applyGate([]int{control}, nil, []int{target}, matY)
	r.qasm.Gate(qasm.GateY, []int{control}, []int{target})
	r.done(opControlledPauliY)

	return nil
}

// SwapGate exchanges the states of q1 and q2.
func (r *Register) SwapGate(q1, q2 int) error {
	r.mustOpen()
	if err := r.validateQubits("target", []int{q1, q2}); err != nil {
		return r.fail(opSwapGate, err)
	}
	r.applyGate(nil, nil, []int{q1, q2}, matSwap)
	r.qasm.Gate(qasm.GateSwap, nil, []int{q1, q2})
	r.done(opSwapGate)

	return nil
}

// SqrtSwapGate applies the square root of SWAP to q1 and q2.
func (r *Register) SqrtSwapGate(q1, q2 int) error {
	r.mustOpen()
	if err := r.validateQubits("target", []int{q1, q2}); err != nil {
		return r.fail(opSqrtSwapGate, err)
	}
	r.applyGate(nil, nil, []int{q1, q2}, matSqrtSwap)
	r.qasm.Gate(qasm.GateSqrtSwap, nil, []int{q1, q2})
	r.done(opSqrtSwapGate)

	return nil
}
