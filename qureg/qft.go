// SPDX-License-Identifier: MIT

package qureg

import (
	"math"

	"github.com/katalvlaran/qsim/qasm"
)

// ApplyQFT applies the quantum Fourier transform to qubits, qubits[0] being
// the least significant bit of the transformed value.
//
// Implementation:
//   - Stage 1: for q = n-1 … 0, Hadamard qubits[q], then merge all its
//     controlled phases into one ScaledProduct phase function with scale
//     π/2^q over the sub-registers {qubits[0..q-1]} and {qubits[q]}.
//   - Stage 2: reverse the qubit order with swaps.
//
// Complexity: O(n·2^N) amplitude updates instead of O(n²·2^N) gates.
func (r *Register) ApplyQFT(qubits []int) error {
	r.mustOpen()
	if err := r.validateQubits("target", qubits); err != nil {
		return r.fail(opApplyQFT, err)
	}
	r.qft(qubits)
	r.done(opApplyQFT)

	return nil
}

// ApplyFullQFT applies the quantum Fourier transform to every qubit.
func (r *Register) ApplyFullQFT() {
	r.mustOpen()
	r.qft(allQubits(r.numQubits))
	r.done(opApplyFullQFT)
}

func (r *Register) qft(qubits []int) {
	n := len(qubits)
	r.qasm.Comment("beginning of QFT circuit")
	for q := n - 1; q >= 0; q-- {
		r.applyGate(nil, nil, []int{qubits[q]}, matH)
		r.qasm.Gate(qasm.GateH, nil, []int{qubits[q]})
		if q == 0 {
			break
		}
		regs := [][]int{append([]int(nil), qubits[:q]...), {qubits[q]}}
		scale := math.Pi / float64(int(1)<<q)
		r.applyPhaseSpec(namedSpec(regs, Unsigned, ScaledProduct, []float64{scale}, nil))
	}
	for i := 0; i < n/2; i++ {
		a, b := qubits[i], qubits[n-1-i]
		r.applyGate(nil, nil, []int{a, b}, matSwap)
		r.qasm.Gate(qasm.GateSwap, nil, []int{a, b})
	}
	r.qasm.Comment("end of QFT circuit")
}
