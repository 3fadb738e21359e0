// SPDX-License-Identifier: MIT

package qureg

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qsim/pauli"
)

// ApplyTrotterCircuit approximates exp(-i·H·time) with reps repetitions of a
// Trotter-Suzuki product formula of the given order. Each term c·P becomes
// exp(-i·c·t·P), a Pauli rotation by θ = 2·c·t.
//
// Orders:
//   - 1: terms in order;
//   - 2: terms in order at t/2, then reversed at t/2;
//   - 2k: S(pt) S(pt) S((1-4p)t) S(pt) S(pt) of order 2k-2, p = 1/(4 - 4^{1/(2k-1)}).
//
// Errors: ErrInvalidTrotterParams (order not 1 or positive even, reps < 1),
// ErrNonFinite, Hamiltonian errors.
func (r *Register) ApplyTrotterCircuit(h *pauli.Hamil, time float64, order, reps int) error {
	r.mustOpen()
	if err := r.validateHamil(h); err != nil {
		return r.fail(opApplyTrotterCircuit, err)
	}
	if order < 1 || (order > 1 && order%2 != 0) || reps < 1 {
		return r.fail(opApplyTrotterCircuit,
			fmt.Errorf("order %d, reps %d: %w", order, reps, ErrInvalidTrotterParams))
	}
	if err := validateFinite(time); err != nil {
		return r.fail(opApplyTrotterCircuit, err)
	}
	if time == 0 {
		r.done(opApplyTrotterCircuit)
		return nil
	}
	r.qasm.Comment("beginning of Trotter circuit (time %.14g, order %d, %d repetitions)", time, order, reps)
	dt := time / float64(reps)
	for i := 0; i < reps; i++ {
		r.trotterStep(h, dt, order)
	}
	r.qasm.Comment("end of Trotter circuit")
	r.done(opApplyTrotterCircuit)

	return nil
}

func (r *Register) trotterStep(h *pauli.Hamil, t float64, order int) {
	switch order {
	case 1:
		r.trotterTerms(h, t, false)
	case 2:
		r.trotterTerms(h, t/2, false)
		r.trotterTerms(h, t/2, true)
	default:
		p := 1 / (4 - math.Pow(4, 1/float64(order-1)))
		lower := order - 2
		r.trotterStep(h, p*t, lower)
		r.trotterStep(h, p*t, lower)
		r.trotterStep(h, (1-4*p)*t, lower)
		r.trotterStep(h, p*t, lower)
		r.trotterStep(h, p*t, lower)
	}
}

// trotterTerms applies every term once, optionally in reverse order.
func (r *Register) trotterTerms(h *pauli.Hamil, t float64, reverse bool) {
	n := h.NumQubits
	all := allQubits(n)
	for k := 0; k < h.NumTerms; k++ {
		term := k
		if reverse {
			term = h.NumTerms - 1 - k
		}
		codes := h.Codes[term*n : (term+1)*n]
		r.rotatePauli(0, 0, all, codes, 2*h.Coeffs[term]*t)
	}
}
