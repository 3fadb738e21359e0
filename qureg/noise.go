// SPDX-License-Identifier: MIT
// Package qureg - decoherence channels (density matrices only).
//
// Every channel ρ → Σ_k K_k ρ K_k† is applied exactly. Kraus maps become the
// superoperator Σ conj(K) ⊗ K acting on the storage qubits
// (targets, targets+N) through the gathered kernel. Dephasing channels only
// scale off-diagonal entries and take a diagonal fast path.
//
// Probability ceilings are the maximally-mixing points of each channel.

package qureg

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qsim/matrix"
)

// Channel probability ceilings.
const (
	MaxDephasingProb            = 0.5
	MaxTwoQubitDephasingProb    = 0.75
	MaxDepolarisingProb         = 0.75
	MaxTwoQubitDepolarisingProb = 15.0 / 16
	MaxDampingProb              = 1.0
)

var pauliMats = [4]matrix.ComplexMatrix2{
	matrix.ComplexMatrix2From([2][2]complex128{{1, 0}, {0, 1}}),
	matrix.ComplexMatrix2From([2][2]complex128{{0, 1}, {1, 0}}),
	matrix.ComplexMatrix2From([2][2]complex128{{0, -1i}, {1i, 0}}),
	matrix.ComplexMatrix2From([2][2]complex128{{1, 0}, {0, -1}}),
}

// scaled2 returns f·m.
func scaled2(m matrix.ComplexMatrix2, f float64) matrix.ComplexMatrix2 {
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			m.Real[r][c] *= f
			m.Imag[r][c] *= f
		}
	}

	return m
}

// applyKraus applies Σ conj(K)⊗K on (targets, targets+N).
func applyKraus[T matrix.Operator](r *Register, targets []int, ops []T) error {
	sup, err := matrix.Superoperator(ops)
	if err != nil {
		return err
	}
	store := append(append([]int(nil), targets...), shifted(targets, r.numQubits)...)
	r.applyStore(0, 0, store, sup.Elements())

	return nil
}

// offDiagScale multiplies ρ[r,c] by f wherever r and c differ on mask.
func (r *Register) offDiagScale(mask int, f float64) {
	n := r.numQubits
	dim := 1 << n
	amps := r.amps
	r.parallelFor(len(amps), func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			if (i&(dim-1))&mask != (i>>n)&mask {
				amps[i] *= complex(f, 0)
			}
		}
	})
}

// MixDephasing applies ρ → (1-p)ρ + pZρZ on target, p ∈ [0, 1/2].
func (r *Register) MixDephasing(target int, p float64) error {
	r.mustOpen()
	if err := r.requireDensity(); err != nil {
		return r.fail(opMixDephasing, err)
	}
	if err := r.validateQubit(target); err != nil {
		return r.fail(opMixDephasing, err)
	}
	if err := validateProb(p, MaxDephasingProb); err != nil {
		return r.fail(opMixDephasing, err)
	}
	r.offDiagScale(1<<target, 1-2*p)
	r.qasm.Comment("dephasing on q[%d] with probability %.14g", target, p)
	r.done(opMixDephasing)

	return nil
}

// MixTwoQubitDephasing applies Z errors on q1, q2 or both, each with
// probability p/3, p ∈ [0, 3/4].
func (r *Register) MixTwoQubitDephasing(q1, q2 int, p float64) error {
	r.mustOpen()
	if err := r.requireDensity(); err != nil {
		return r.fail(opMixTwoQubitDephasing, err)
	}
	if err := r.validateQubits("target", []int{q1, q2}); err != nil {
		return r.fail(opMixTwoQubitDephasing, err)
	}
	if err := validateProb(p, MaxTwoQubitDephasingProb); err != nil {
		return r.fail(opMixTwoQubitDephasing, err)
	}
	r.offDiagScale(1<<q1|1<<q2, 1-4*p/3)
	r.qasm.Comment("two-qubit dephasing on q[%d],q[%d] with probability %.14g", q1, q2, p)
	r.done(opMixTwoQubitDephasing)

	return nil
}

// MixDepolarising applies X, Y or Z to target each with probability p/3,
// p ∈ [0, 3/4].
func (r *Register) MixDepolarising(target int, p float64) error {
	r.mustOpen()
	if err := r.requireDensity(); err != nil {
		return r.fail(opMixDepolarising, err)
	}
	if err := r.validateQubit(target); err != nil {
		return r.fail(opMixDepolarising, err)
	}
	if err := validateProb(p, MaxDepolarisingProb); err != nil {
		return r.fail(opMixDepolarising, err)
	}
	ops := []matrix.ComplexMatrix2{
		scaled2(pauliMats[0], math.Sqrt(1-p)),
		scaled2(pauliMats[1], math.Sqrt(p/3)),
		scaled2(pauliMats[2], math.Sqrt(p/3)),
		scaled2(pauliMats[3], math.Sqrt(p/3)),
	}
	if err := applyKraus(r, []int{target}, ops); err != nil {
		return r.fail(opMixDepolarising, err)
	}
	r.qasm.Comment("depolarising on q[%d] with probability %.14g", target, p)
	r.done(opMixDepolarising)

	return nil
}

// MixTwoQubitDepolarising applies each of the 15 non-identity Pauli pairs to
// (q1, q2) with probability p/15, p ∈ [0, 15/16].
func (r *Register) MixTwoQubitDepolarising(q1, q2 int, p float64) error {
	r.mustOpen()
	if err := r.requireDensity(); err != nil {
		return r.fail(opMixTwoQubitDepolarising, err)
	}
	if err := r.validateQubits("target", []int{q1, q2}); err != nil {
		return r.fail(opMixTwoQubitDepolarising, err)
	}
	if err := validateProb(p, MaxTwoQubitDepolarisingProb); err != nil {
		return r.fail(opMixTwoQubitDepolarising, err)
	}
	ops := make([]*matrix.ComplexMatrixN, 0, 16)
	for b := 0; b < 4; b++ {
		for a := 0; a < 4; a++ {
			w := math.Sqrt(p / 15)
			if a == 0 && b == 0 {
				w = math.Sqrt(1 - p)
			}
			// a acts on q1 (low bit), b on q2
			k, err := matrix.Kron(scaled2(pauliMats[b], w), pauliMats[a])
			if err != nil {
				return r.fail(opMixTwoQubitDepolarising, err)
			}
			ops = append(ops, k)
		}
	}
	if err := applyKraus(r, []int{q1, q2}, ops); err != nil {
		return r.fail(opMixTwoQubitDepolarising, err)
	}
	r.qasm.Comment("two-qubit depolarising on q[%d],q[%d] with probability %.14g", q1, q2, p)
	r.done(opMixTwoQubitDepolarising)

	return nil
}

// MixDamping applies amplitude damping |1> → |0> with probability p ∈ [0, 1].
func (r *Register) MixDamping(target int, p float64) error {
	r.mustOpen()
	if err := r.requireDensity(); err != nil {
		return r.fail(opMixDamping, err)
	}
	if err := r.validateQubit(target); err != nil {
		return r.fail(opMixDamping, err)
	}
	if err := validateProb(p, MaxDampingProb); err != nil {
		return r.fail(opMixDamping, err)
	}
	ops := []matrix.ComplexMatrix2{
		matrix.NewComplexMatrix2([2][2]float64{{1, 0}, {0, math.Sqrt(1 - p)}}, [2][2]float64{}),
		matrix.NewComplexMatrix2([2][2]float64{{0, math.Sqrt(p)}, {0, 0}}, [2][2]float64{}),
	}
	if err := applyKraus(r, []int{target}, ops); err != nil {
		return r.fail(opMixDamping, err)
	}
	r.qasm.Comment("amplitude damping on q[%d] with probability %.14g", target, p)
	r.done(opMixDamping)

	return nil
}

// MixPauli applies X, Y, Z with probabilities px, py, pz. Each must lie in
// [0, 1-px-py-pz].
func (r *Register) MixPauli(target int, px, py, pz float64) error {
	r.mustOpen()
	if err := r.requireDensity(); err != nil {
		return r.fail(opMixPauli, err)
	}
	if err := r.validateQubit(target); err != nil {
		return r.fail(opMixPauli, err)
	}
	none := 1 - px - py - pz
	for _, p := range []float64{px, py, pz} {
		if err := validateProb(p, none); err != nil {
			return r.fail(opMixPauli, err)
		}
	}
	ops := []matrix.ComplexMatrix2{
		scaled2(pauliMats[0], math.Sqrt(none)),
		scaled2(pauliMats[1], math.Sqrt(px)),
		scaled2(pauliMats[2], math.Sqrt(py)),
		scaled2(pauliMats[3], math.Sqrt(pz)),
	}
	if err := applyKraus(r, []int{target}, ops); err != nil {
		return r.fail(opMixPauli, err)
	}
	r.qasm.Comment("Pauli noise on q[%d] px=%.14g py=%.14g pz=%.14g", target, px, py, pz)
	r.done(opMixPauli)

	return nil
}

// MixDensityMatrix sets ρ → (1-p)ρ + p·other.
func (r *Register) MixDensityMatrix(p float64, other *Register) error {
	r.mustOpen()
	if err := r.requireDensity(); err != nil {
		return r.fail(opMixDensityMatrix, err)
	}
	if err := validateMatching(r, other); err != nil {
		return r.fail(opMixDensityMatrix, err)
	}
	if err := validateProb(p, 1); err != nil {
		return r.fail(opMixDensityMatrix, err)
	}
	a, b := r.amps, other.amps
	keep, mix := complex(1-p, 0), complex(p, 0)
	r.parallelFor(len(a), func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			a[i] = keep*a[i] + mix*b[i]
		}
	})
	r.qasm.Comment("mixed with another density matrix, probability %.14g", p)
	r.done(opMixDensityMatrix)

	return nil
}

// MixKrausMap applies 1 to 4 single-qubit Kraus operators (CPTP checked).
func (r *Register) MixKrausMap(target int, ops []matrix.ComplexMatrix2) error {
	return mixKraus(r, opMixKrausMap, []int{target}, ops, true)
}

// MixTwoQubitKrausMap applies 1 to 16 two-qubit Kraus operators (CPTP checked).
func (r *Register) MixTwoQubitKrausMap(t1, t2 int, ops []matrix.ComplexMatrix4) error {
	return mixKraus(r, opMixTwoQubitKrausMap, []int{t1, t2}, ops, true)
}

// MixMultiQubitKrausMap applies 1 to 4^k k-qubit Kraus operators (CPTP checked).
func (r *Register) MixMultiQubitKrausMap(targets []int, ops []*matrix.ComplexMatrixN) error {
	return mixKraus(r, opMixMultiQubitKrausMap, targets, ops, true)
}

// MixNonTPKrausMap is MixKrausMap without the trace-preservation check.
func (r *Register) MixNonTPKrausMap(target int, ops []matrix.ComplexMatrix2) error {
	return mixKraus(r, opMixNonTPKrausMap, []int{target}, ops, false)
}

// MixNonTPTwoQubitKrausMap is MixTwoQubitKrausMap without the trace-preservation check.
func (r *Register) MixNonTPTwoQubitKrausMap(t1, t2 int, ops []matrix.ComplexMatrix4) error {
	return mixKraus(r, opMixNonTPTwoQubitKrausMap, []int{t1, t2}, ops, false)
}

// MixNonTPMultiQubitKrausMap is MixMultiQubitKrausMap without the
// trace-preservation check.
func (r *Register) MixNonTPMultiQubitKrausMap(targets []int, ops []*matrix.ComplexMatrixN) error {
	return mixKraus(r, opMixNonTPMultiQubitKrausMap, targets, ops, false)
}

func mixKraus[T matrix.Operator](r *Register, op string, targets []int, ops []T, tp bool) error {
	r.mustOpen()
	if err := r.requireDensity(); err != nil {
		return r.fail(op, err)
	}
	if err := r.validateQubits("target", targets); err != nil {
		return r.fail(op, err)
	}
	if err := validateKraus(r, ops, len(targets), tp); err != nil {
		return r.fail(op, err)
	}
	if err := applyKraus(r, targets, ops); err != nil {
		return r.fail(op, fmt.Errorf("%w: %w", err, ErrInvalidInput))
	}
	r.qasm.Comment("%s with %d operator(s) on %v", op, len(ops), targets)
	r.done(op)

	return nil
}
