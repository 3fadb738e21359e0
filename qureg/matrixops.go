// SPDX-License-Identifier: MIT
// Package qureg - arbitrary (non-unitary) matrices.
//
// ApplyMatrix* multiply the state by M without any unitarity check. On a
// density matrix only the rows are touched (ρ → Mρ), which is what building
// non-physical intermediates such as M·ρ for expectation values needs.

package qureg

import "github.com/katalvlaran/qsim/matrix"

// ApplyMatrix2 left-multiplies target by a 2×2 matrix.
func (r *Register) ApplyMatrix2(target int, m matrix.ComplexMatrix2) error {
	return r.applyMatrix(opApplyMatrix2, nil, []int{target}, m)
}

// ApplyMatrix4 left-multiplies (t1, t2) by a 4×4 matrix; t1 is the least significant bit.
func (r *Register) ApplyMatrix4(t1, t2 int, m matrix.ComplexMatrix4) error {
	return r.applyMatrix(opApplyMatrix4, nil, []int{t1, t2}, m)
}

// ApplyMatrixN left-multiplies targets by a 2^k×2^k matrix.
func (r *Register) ApplyMatrixN(targets []int, m *matrix.ComplexMatrixN) error {
	return r.applyMatrix(opApplyMatrixN, nil, targets, m)
}

// ApplyMultiControlledMatrixN left-multiplies targets by m where every control is 1.
func (r *Register) ApplyMultiControlledMatrixN(ctrls, targets []int, m *matrix.ComplexMatrixN) error {
	r.mustOpen()
	if err := requireControls(ctrls); err != nil {
		return r.fail(opApplyMultiControlledMatrixN, err)
	}

	return r.applyMatrix(opApplyMultiControlledMatrixN, ctrls, targets, m)
}

func (r *Register) applyMatrix(op string, ctrls, targets []int, m matrix.Operator) error {
	r.mustOpen()
	if err := r.validateTargets(ctrls, targets); err != nil {
		return r.fail(op, err)
	}
	if err := r.validateOperator(m, len(targets), false); err != nil {
		return r.fail(op, err)
	}
	r.applyLeft(ctrls, targets, m.Elements())
	r.qasm.Comment("%s is not a gate and was not recorded", op)
	r.done(op)

	return nil
}
