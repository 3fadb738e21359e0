// SPDX-License-Identifier: MIT
// Package qureg - measurement, collapse and projection.
//
// Probabilities come from the diagonal: |ψ_i|² for a state-vector, Re ρ[i,i]
// for a density matrix. Collapse renormalises (1/√p, or 1/p for ρ); the
// projector only zeroes.

package qureg

import (
	"fmt"
	"math"
)

// diagProb returns the probability weight of register basis state i.
func (r *Register) diagProb(i int) float64 {
	if r.isDensity {
		dim := 1 << r.numQubits
		return real(r.amps[i+i*dim])
	}
	a := r.amps[i]

	return real(a)*real(a) + imag(a)*imag(a)
}

// probZero returns P(qubit == 0).
func (r *Register) probZero(qubit int) float64 {
	dim := 1 << r.numQubits
	s := r.parallelSum(dim>>1, func(lo, hi int) complex128 {
		var acc float64
		for k := lo; k < hi; k++ {
			acc += r.diagProb(insertZeroBit(k, qubit))
		}
		return complex(acc, 0)
	})
	return real(s)
}

// CalcProbOfOutcome returns P(qubit == outcome) without changing the state.
//
// Errors: ErrInvalidQubit, ErrInvalidOutcome.
func (r *Register) CalcProbOfOutcome(qubit, outcome int) (float64, error) {
	r.mustOpen()
	if err := r.validateQubit(qubit); err != nil {
		return 0, r.fail(opCalcProbOfOutcome, err)
	}
	if err := validateOutcome(outcome); err != nil {
		return 0, r.fail(opCalcProbOfOutcome, err)
	}
	p0 := r.probZero(qubit)
	r.done(opCalcProbOfOutcome)
	if outcome == 1 {
		return 1 - p0, nil
	}

	return p0, nil
}

// CalcProbOfAllOutcomes fills probs[v] with P(value of qubits == v), where
// qubits[0] is the least significant bit of v.
//
// Errors: ErrInvalidQubit, ErrRepeatedQubit, ErrArrayLength when
// len(probs) < 2^len(qubits).
func (r *Register) CalcProbOfAllOutcomes(probs []float64, qubits []int) error {
	r.mustOpen()
	if err := r.validateQubits("measured", qubits); err != nil {
		return r.fail(opCalcProbOfAllOutcomes, err)
	}
	n := 1 << len(qubits)
	if len(probs) < n {
		return r.fail(opCalcProbOfAllOutcomes,
			fmt.Errorf("%d slots for %d outcomes: %w", len(probs), n, ErrArrayLength))
	}
	dim := 1 << r.numQubits
	_, count := r.partitions(dim)
	partial := make([][]float64, count)
	r.parallelFor(dim, func(p, lo, hi int) {
		acc := make([]float64, n)
		for i := lo; i < hi; i++ {
			v := 0
			for b, q := range qubits {
				v |= (i >> q & 1) << b
			}
			acc[v] += r.diagProb(i)
		}
		partial[p] = acc
	})
	clear(probs[:n])
	for _, acc := range partial {
		for v, x := range acc {
			probs[v] += x
		}
	}
	r.done(opCalcProbOfAllOutcomes)

	return nil
}

// zeroOutcome zeroes every entry inconsistent with qubit == outcome and
// multiplies the rest by f. On a density matrix an entry survives only when
// both its row and its column agree with the outcome.
func (r *Register) zeroOutcome(qubit, outcome int, f complex128) {
	want := outcome << qubit
	bit := 1 << qubit
	colBit, colWant := 0, 0
	if r.isDensity {
		colBit, colWant = bit<<r.numQubits, want<<r.numQubits
	}
	amps := r.amps
	r.parallelFor(len(amps), func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&bit != want || i&colBit != colWant {
				amps[i] = 0
				continue
			}
			amps[i] *= f
		}
	})
}

// CollapseToOutcome forces qubit into outcome and renormalises. It returns the
// probability the outcome had.
//
// Errors: ErrInvalidQubit, ErrInvalidOutcome, ErrZeroProbability when the
// outcome probability is below epsilon.
func (r *Register) CollapseToOutcome(qubit, outcome int) (float64, error) {
	r.mustOpen()
	if err := r.validateQubit(qubit); err != nil {
		return 0, r.fail(opCollapseToOutcome, err)
	}
	if err := validateOutcome(outcome); err != nil {
		return 0, r.fail(opCollapseToOutcome, err)
	}
	p := r.probZero(qubit)
	if outcome == 1 {
		p = 1 - p
	}
	if p < r.eps {
		return 0, r.fail(opCollapseToOutcome,
			fmt.Errorf("qubit %d outcome %d has p=%g: %w", qubit, outcome, p, ErrZeroProbability))
	}
	r.collapse(qubit, outcome, p)
	r.qasm.Comment("collapse q[%d] onto %d (p=%g)", qubit, outcome, p)
	r.done(opCollapseToOutcome)

	return p, nil
}

func (r *Register) collapse(qubit, outcome int, p float64) {
	f := 1 / math.Sqrt(p)
	if r.isDensity {
		f = 1 / p
	}
	r.zeroOutcome(qubit, outcome, complex(f, 0))
}

// ApplyProjector zeroes the part of the state inconsistent with qubit ==
// outcome without renormalising; the result may be sub-normalised or zero.
func (r *Register) ApplyProjector(qubit, outcome int) error {
	r.mustOpen()
	if err := r.validateQubit(qubit); err != nil {
		return r.fail(opApplyProjector, err)
	}
	if err := validateOutcome(outcome); err != nil {
		return r.fail(opApplyProjector, err)
	}
	r.zeroOutcome(qubit, outcome, 1)
	r.qasm.Comment("projector onto q[%d] = %d", qubit, outcome)
	r.done(opApplyProjector)

	return nil
}

// Measure samples qubit with the environment RNG and collapses onto the result.
func (r *Register) Measure(qubit int) (int, error) {
	outcome, _, err := r.MeasureWithStats(qubit)

	return outcome, err
}

// MeasureWithStats is Measure that also returns the outcome's probability.
//
// Implementation:
//   - Stage 1: p0 = P(qubit == 0).
//   - Stage 2: p0 < ε gives 1, 1-p0 < ε gives 0, else outcome is 1 iff the
//     next RNG draw exceeds p0.
//   - Stage 3: collapse with the outcome's probability.
func (r *Register) MeasureWithStats(qubit int) (outcome int, prob float64, err error) {
	r.mustOpen()
	if err := r.validateQubit(qubit); err != nil {
		return 0, 0, r.fail(opMeasure, err)
	}
	p0 := r.probZero(qubit)
	switch {
	case p0 < r.eps:
		outcome = 1
	case 1-p0 < r.eps:
		outcome = 0
	case r.env.Float64() > p0:
		outcome = 1
	}
	prob = p0
	if outcome == 1 {
		prob = 1 - p0
	}
	r.collapse(qubit, outcome, prob)
	r.qasm.Measure(qubit)
	r.env.Metrics().Measurement(outcome)
	r.done(opMeasure)

	return outcome, prob, nil
}
