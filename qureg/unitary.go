// SPDX-License-Identifier: MIT
// Package qureg - general unitaries and rotations.
//
// Single-target unitaries reduce to the 2×2 kernel; two- and multi-target
// unitaries use the gathered kernelN. All entry points check unitarity
// within the environment epsilon before mutating.

package qureg

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qsim/matrix"
	"github.com/katalvlaran/qsim/qasm"
)

// compactMatrix returns [[α, -β*], [β, α*]].
func compactMatrix(alpha, beta complex128) []complex128 {
	return []complex128{alpha, -cmplx.Conj(beta), beta, cmplx.Conj(alpha)}
}

// rotX, rotY, rotZ return exp(-iθ/2·σ).
func rotX(theta float64) []complex128 {
	s, c := math.Sincos(theta / 2)
	return []complex128{complex(c, 0), complex(0, -s), complex(0, -s), complex(c, 0)}
}

func rotY(theta float64) []complex128 {
	s, c := math.Sincos(theta / 2)
	return []complex128{complex(c, 0), complex(-s, 0), complex(s, 0), complex(c, 0)}
}

func rotZ(theta float64) []complex128 {
	s, c := math.Sincos(theta / 2)
	return []complex128{complex(c, -s), 0, 0, complex(c, s)}
}

// axisPair returns (α, β) of exp(-iθ/2·n̂·σ) for a non-zero axis.
func axisPair(theta float64, axis matrix.Vector) (alpha, beta complex128, err error) {
	u, err := axis.Unit()
	if err != nil {
		if err := validateFinite(axis.X, axis.Y, axis.Z); err != nil {
			return 0, 0, err
		}
		return 0, 0, fmt.Errorf("%w: %w", err, ErrZeroVector)
	}
	s, c := math.Sincos(theta / 2)

	return complex(c, -s*u.Z), complex(s*u.Y, -s*u.X), nil
}

// recordCompact logs U(rz2, ry, rz1) for the pair (α, β).
//
//	α = |α|e^{ia}, β = |β|e^{ib}: rz2 = b - a, ry = 2·acos|α|, rz1 = -a - b.
func (r *Register) recordCompact(ctrls []int, target int, alpha, beta complex128) {
	if !r.qasm.Recording() {
		return
	}
	a, b := cmplx.Phase(alpha), cmplx.Phase(beta)
	ry := 2 * math.Acos(math.Min(1, cmplx.Abs(alpha)))
	r.qasm.Gate(qasm.GateU, ctrls, []int{target}, b-a, ry, -a-b)
}

// recordUnitary logs a 2×2 unitary as U(...) after factoring out its global
// phase; a non-trivial phase is noted in a comment.
func (r *Register) recordUnitary(ctrls []int, target int, m []complex128) {
	if !r.qasm.Recording() {
		return
	}
	det := m[0]*m[3] - m[1]*m[2]
	g := cmplx.Phase(det) / 2
	ph := cmplx.Rect(1, -g)
	r.recordCompact(ctrls, target, m[0]*ph, m[2]*ph)
	if math.Abs(g) > r.eps {
		r.qasm.Comment("previous gate dropped global phase %.14g", g)
	}
}

// CompactUnitary applies [[α, -β*], [β, α*]] with |α|²+|β|² = 1.
func (r *Register) CompactUnitary(target int, alpha, beta complex128) error {
	return r.controlledCompact(opCompactUnitary, nil, target, alpha, beta)
}

// ControlledCompactUnitary is CompactUnitary conditioned on control.
func (r *Register) ControlledCompactUnitary(control, target int, alpha, beta complex128) error {
	return r.controlledCompact(opControlledCompactUnitary, []int{control}, target, alpha, beta)
}

func (r *Register) controlledCompact(op string, ctrls []int, target int, alpha, beta complex128) error {
	r.mustOpen()
	if err := r.validateTarget(ctrls, target); err != nil {
		return r.fail(op, err)
	}
	if err := r.validateCompactPair(alpha, beta); err != nil {
		return r.fail(op, err)
	}
	r.applyGate(ctrls, nil, []int{target}, compactMatrix(alpha, beta))
	r.recordCompact(ctrls, target, alpha, beta)
	r.done(op)

	return nil
}

// validateTarget checks a single target against optional controls.
func (r *Register) validateTarget(ctrls []int, target int) error {
	if len(ctrls) == 0 {
		return r.validateQubit(target)
	}

	return r.validateControlTargets(ctrls, []int{target})
}

// Unitary applies a 2×2 unitary to target.
func (r *Register) Unitary(target int, u matrix.ComplexMatrix2) error {
	return r.multiStateUnitary(opUnitary, nil, nil, target, u)
}

// ControlledUnitary applies u to target where control is 1.
func (r *Register) ControlledUnitary(control, target int, u matrix.ComplexMatrix2) error {
	return r.multiStateUnitary(opControlledUnitary, []int{control}, nil, target, u)
}

// MultiControlledUnitary applies u to target where every control is 1.
func (r *Register) MultiControlledUnitary(ctrls []int, target int, u matrix.ComplexMatrix2) error {
	r.mustOpen()
	if err := requireControls(ctrls); err != nil {
		return r.fail(opMultiControlledUnitary, err)
	}

	return r.multiStateUnitary(opMultiControlledUnitary, ctrls, nil, target, u)
}

// MultiStateControlledUnitary applies u to target where control i equals states[i].
//
// Errors: ErrInvalidControlState for a state outside {0, 1} or a length mismatch.
func (r *Register) MultiStateControlledUnitary(ctrls, states []int, target int, u matrix.ComplexMatrix2) error {
	r.mustOpen()
	if err := requireControls(ctrls); err != nil {
		return r.fail(opMultiStateControlledUnitary, err)
	}
	if err := validateControlState(ctrls, states); err != nil {
		return r.fail(opMultiStateControlledUnitary, err)
	}

	return r.multiStateUnitary(opMultiStateControlledUnitary, ctrls, states, target, u)
}

func (r *Register) multiStateUnitary(op string, ctrls, states []int, target int, u matrix.ComplexMatrix2) error {
	r.mustOpen()
	if err := r.validateTarget(ctrls, target); err != nil {
		return r.fail(op, err)
	}
	if err := r.validateOperator(u, 1, true); err != nil {
		return r.fail(op, err)
	}
	m := u.Elements()
	r.applyGate(ctrls, states, []int{target}, m)
	if states != nil {
		// QASM has no zero-controls: wrap the gate in X on the 0-controls.
		r.flipZeroControls(ctrls, states)
		r.recordUnitary(ctrls, target, m)
		r.flipZeroControls(ctrls, states)
	} else {
		r.recordUnitary(ctrls, target, m)
	}
	r.done(op)

	return nil
}

func (r *Register) flipZeroControls(ctrls, states []int) {
	for i, c := range ctrls {
		if states[i] == 0 {
			r.qasm.Gate(qasm.GateX, nil, []int{c})
		}
	}
}

// RotateX applies exp(-iθX/2).
func (r *Register) RotateX(target int, theta float64) error {
	return r.rotate(opRotateX, nil, target, theta, rotX, qasm.GateRx)
}

// RotateY applies exp(-iθY/2).
func (r *Register) RotateY(target int, theta float64) error {
	return r.rotate(opRotateY, nil, target, theta, rotY, qasm.GateRy)
}

// RotateZ applies exp(-iθZ/2).
func (r *Register) RotateZ(target int, theta float64) error {
	return r.rotate(opRotateZ, nil, target, theta, rotZ, qasm.GateRz)
}

// ControlledRotateX applies exp(-iθX/2) to target where control is 1.
func (r *Register) ControlledRotateX(control, target int, theta float64) error {
	return r.rotate(opControlledRotateX, []int{control}, target, theta, rotX, qasm.GateRx)
}

// ControlledRotateY applies exp(-iθY/2) to target where control is 1.
func (r *Register) ControlledRotateY(control, target int, theta float64) error {
	return r.rotate(opControlledRotateY, []int{control}, target, theta, rotY, qasm.GateRy)
}

// ControlledRotateZ applies exp(-iθZ/2) to target where control is 1.
func (r *Register) ControlledRotateZ(control, target int, theta float64) error {
	return r.rotate(opControlledRotateZ, []int{control}, target, theta, rotZ, qasm.GateRz)
}

func (r *Register) rotate(op string, ctrls []int, target int, theta float64,
	mat func(float64) []complex128, g qasm.Gate) error {
	r.mustOpen()
	if err := r.validateTarget(ctrls, target); err != nil {
		return r.fail(op, err)
	}
	if err := validateFinite(theta); err != nil {
		return r.fail(op, err)
	}
	r.applyGate(ctrls, nil, []int{target}, mat(theta))
	r.qasm.Gate(g, ctrls, []int{target}, theta)
	r.done(op)

	return nil
}

// RotateAroundAxis applies exp(-iθ/2·n̂·σ); axis is normalised internally.
//
// Errors: ErrZeroVector for a zero axis, ErrNonFinite for NaN/Inf.
func (r *Register) RotateAroundAxis(target int, theta float64, axis matrix.Vector) error {
	return r.rotateAxis(opRotateAroundAxis, nil, target, theta, axis)
}

// ControlledRotateAroundAxis is RotateAroundAxis conditioned on control.
func (r *Register) ControlledRotateAroundAxis(control, target int, theta float64, axis matrix.Vector) error {
	return r.rotateAxis(opControlledRotateAroundAxis, []int{control}, target, theta, axis)
}

func (r *Register) rotateAxis(op string, ctrls []int, target int, theta float64, axis matrix.Vector) error {
	r.mustOpen()
	if err := r.validateTarget(ctrls, target); err != nil {
		return r.fail(op, err)
	}
	if err := validateFinite(theta); err != nil {
		return r.fail(op, err)
	}
	alpha, beta, err := axisPair(theta, axis)
	if err != nil {
		return r.fail(op, err)
	}
	r.applyGate(ctrls, nil, []int{target}, compactMatrix(alpha, beta))
	r.recordCompact(ctrls, target, alpha, beta)
	r.done(op)

	return nil
}

// TwoQubitUnitary applies a 4×4 unitary; t1 is the least significant matrix bit.
func (r *Register) TwoQubitUnitary(t1, t2 int, u matrix.ComplexMatrix4) error {
	return r.multiUnitary(opTwoQubitUnitary, nil, []int{t1, t2}, u)
}

// ControlledTwoQubitUnitary applies u to (t1, t2) where control is 1.
func (r *Register) ControlledTwoQubitUnitary(control, t1, t2 int, u matrix.ComplexMatrix4) error {
	return r.multiUnitary(opControlledTwoQubitUnitary, []int{control}, []int{t1, t2}, u)
}

// MultiControlledTwoQubitUnitary applies u to (t1, t2) where every control is 1.
func (r *Register) MultiControlledTwoQubitUnitary(ctrls []int, t1, t2 int, u matrix.ComplexMatrix4) error {
	r.mustOpen()
	if err := requireControls(ctrls); err != nil {
		return r.fail(opMultiControlledTwoQubitUnitary, err)
	}

	return r.multiUnitary(opMultiControlledTwoQubitUnitary, ctrls, []int{t1, t2}, u)
}

// MultiQubitUnitary applies a 2^k×2^k unitary to k targets, least significant first.
func (r *Register) MultiQubitUnitary(targets []int, u *matrix.ComplexMatrixN) error {
	return r.multiUnitary(opMultiQubitUnitary, nil, targets, u)
}

// ControlledMultiQubitUnitary applies u to targets where control is 1.
func (r *Register) ControlledMultiQubitUnitary(control int, targets []int, u *matrix.ComplexMatrixN) error {
	return r.multiUnitary(opControlledMultiQubitUnitary, []int{control}, targets, u)
}

// MultiControlledMultiQubitUnitary applies u to targets where every control is 1.
func (r *Register) MultiControlledMultiQubitUnitary(ctrls, targets []int, u *matrix.ComplexMatrixN) error {
	r.mustOpen()
	if err := requireControls(ctrls); err != nil {
		return r.fail(opMultiControlledMultiQubitUnitary, err)
	}

	return r.multiUnitary(opMultiControlledMultiQubitUnitary, ctrls, targets, u)
}

// multiUnitary validates and applies a multi-target unitary. QASM has no
// general multi-qubit gate, so the log only gets a comment.
func (r *Register) multiUnitary(op string, ctrls, targets []int, u matrix.Operator) error {
	r.mustOpen()
	if err := r.validateTargets(ctrls, targets); err != nil {
		return r.fail(op, err)
	}
	if err := r.validateOperator(u, len(targets), true); err != nil {
		return r.fail(op, err)
	}
	r.applyGate(ctrls, nil, targets, u.Elements())
	r.qasm.Comment("%s on %d target(s) and %d control(s) is not representable", op, len(targets), len(ctrls))
	r.done(op)

	return nil
}

// requireControls rejects an empty control list on multi-controlled entry points.
func requireControls(ctrls []int) error {
	if len(ctrls) == 0 {
		return fmt.Errorf("no control qubits: %w", ErrInvalidNumQubits)
	}

	return nil
}

// validateTargets checks targets against optional controls.
func (r *Register) validateTargets(ctrls, targets []int) error {
	if len(ctrls) == 0 {
		return r.validateQubits("target", targets)
	}

	return r.validateControlTargets(ctrls, targets)
}
