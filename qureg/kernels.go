// SPDX-License-Identifier: MIT
// Package qureg - amplitude kernels.
//
// Kernels act on STORAGE qubits: bits 0..N-1 of a density-matrix index are
// the row, bits N..2N-1 the column. The gate layer (applyGate, applyDiag)
// maps a unitary U on register qubits to U on the row bits and conj(U) on the
// column bits, which realises ρ → UρU†.
//
// Conventions:
//   - Matrices are row-major []complex128 of side 2^len(targets); matrix index
//     bit b addresses targets[b] (least-significant target first).
//   - Controls are a (mask, value) pair: an index takes part when
//     index&mask == value.
//
// Complexity quicksheet (n = len(amps)):
//   - kernelNot, kernel2: O(n); kernelN: O(n·2^k) for k targets; applyDiagWith: O(n).

package qureg

import (
	"math"
	"math/cmplx"
	"slices"
)

// insertZeroBit inserts a 0 at bit position b of k.
func insertZeroBit(k, b int) int {
	low := k & (1<<b - 1)

	return (k>>b)<<(b+1) | low
}

// qubitMask returns Σ 1<<q.
func qubitMask(qs []int) int {
	m := 0
	for _, q := range qs {
		m |= 1 << q
	}

	return m
}

// controlMask builds (mask, value) for controls; nil states means all-ones.
func controlMask(ctrls, states []int) (mask, val int) {
	for i, c := range ctrls {
		mask |= 1 << c
		if states == nil || states[i] == 1 {
			val |= 1 << c
		}
	}

	return mask, val
}

// shifted returns qs + by.
func shifted(qs []int, by int) []int {
	out := make([]int, len(qs))
	for i, q := range qs {
		out[i] = q + by
	}

	return out
}

// conjAll returns the element-wise conjugate of m.
func conjAll(m []complex128) []complex128 {
	out := make([]complex128, len(m))
	for i, z := range m {
		out[i] = cmplx.Conj(z)
	}

	return out
}

// kernelNot swaps the partners of bit t on every index passing the controls.
func (r *Register) kernelNot(mask, val, t int) {
	amps := r.amps
	bit := 1 << t
	r.parallelFor(len(amps)>>1, func(_, lo, hi int) {
		for k := lo; k < hi; k++ {
			i0 := insertZeroBit(k, t)
			if i0&mask != val {
				continue
			}
			amps[i0], amps[i0|bit] = amps[i0|bit], amps[i0]
		}
	})
}

// kernel2 applies a 2×2 matrix m = {m00, m01, m10, m11} to storage bit t.
func (r *Register) kernel2(mask, val, t int, m [4]complex128) {
	amps := r.amps
	bit := 1 << t
	r.parallelFor(len(amps)>>1, func(_, lo, hi int) {
		var a0, a1 complex128
		for k := lo; k < hi; k++ {
			i0 := insertZeroBit(k, t)
			if i0&mask != val {
				continue
			}
			i1 := i0 | bit
			a0, a1 = amps[i0], amps[i1]
			amps[i0] = m[0]*a0 + m[1]*a1
			amps[i1] = m[2]*a0 + m[3]*a1
		}
	})
}

// kernelN applies a 2^k × 2^k matrix to storage bits targets.
//
// Implementation:
//   - Stage 1: Precompute the 2^k index offsets of the target sub-space.
//   - Stage 2: For every base index (targets cleared) passing the controls,
//     gather the sub-vector into a per-partition scratch buffer, multiply,
//     and scatter back.
func (r *Register) kernelN(mask, val int, targets []int, m []complex128) {
	k := len(targets)
	d := 1 << k
	offs := make([]int, d)
	for j := 1; j < d; j++ {
		for b := 0; b < k; b++ {
			if j>>b&1 == 1 {
				offs[j] |= 1 << targets[b]
			}
		}
	}
	sorted := slices.Clone(targets)
	slices.Sort(sorted)

	amps := r.amps
	r.parallelFor(len(amps)>>k, func(_, lo, hi int) {
		buf := make([]complex128, d)
		for n := lo; n < hi; n++ {
			base := n
			for _, b := range sorted {
				base = insertZeroBit(base, b)
			}
			if base&mask != val {
				continue
			}
			for j, o := range offs {
				buf[j] = amps[base|o]
			}
			for row, o := range offs {
				mr := m[row*d : row*d+d]
				var s complex128
				for col, v := range buf {
					s += mr[col] * v
				}
				amps[base|o] = s
			}
		}
	})
}

// applyStore dispatches a matrix on storage bits to the narrowest kernel.
func (r *Register) applyStore(mask, val int, targets []int, m []complex128) {
	if len(targets) == 1 {
		r.kernel2(mask, val, targets[0], [4]complex128{m[0], m[1], m[2], m[3]})
		return
	}
	r.kernelN(mask, val, targets, m)
}

// applyGate applies a unitary on register qubits: U to the rows and, for a
// density matrix, conj(U) to the columns. states == nil means "control on 1".
func (r *Register) applyGate(ctrls, states, targets []int, m []complex128) {
	mask, val := controlMask(ctrls, states)
	r.applyStore(mask, val, targets, m)
	if r.isDensity {
		n := r.numQubits
		r.applyStore(mask<<n, val<<n, shifted(targets, n), conjAll(m))
	}
}

// applyNot flips each target under the controls (and mirrors on columns).
func (r *Register) applyNot(ctrls, states, targets []int) {
	mask, val := controlMask(ctrls, states)
	for _, t := range targets {
		r.kernelNot(mask, val, t)
	}
	if r.isDensity {
		n := r.numQubits
		for _, t := range targets {
			r.kernelNot(mask<<n, val<<n, t+n)
		}
	}
}

// applyLeft multiplies the rows only: ψ → Mψ, or ρ → Mρ.
func (r *Register) applyLeft(ctrls, targets []int, m []complex128) {
	mask, val := controlMask(ctrls, nil)
	r.applyStore(mask, val, targets, m)
}

// applyDiag multiplies by a diagonal operator D = diag(g(i)) over register
// basis states i: ψ_i → g(i)ψ_i, or ρ[r,c] → g(r)·conj(g(c))·ρ[r,c].
func (r *Register) applyDiag(g func(i int) complex128) {
	r.applyDiagWith(func() func(i int) complex128 { return g })
}

// applyDiagWith is applyDiag where every partition builds its own g, so g may
// own scratch space.
func (r *Register) applyDiagWith(newG func() func(i int) complex128) {
	amps := r.amps
	if !r.isDensity {
		r.parallelFor(len(amps), func(_, lo, hi int) {
			g := newG()
			for i := lo; i < hi; i++ {
				amps[i] *= g(i)
			}
		})
		return
	}
	dim := 1 << r.numQubits
	tbl := make([]complex128, dim)
	r.parallelFor(dim, func(_, lo, hi int) {
		g := newG()
		for i := lo; i < hi; i++ {
			tbl[i] = g(i)
		}
	})
	n := r.numQubits
	r.parallelFor(len(amps), func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			amps[i] *= tbl[i&(dim-1)] * cmplx.Conj(tbl[i>>n])
		}
	})
}

// applyPhaseDiagWith is applyDiagWith for real phases: g(i) = exp(i·f(i)).
func (r *Register) applyPhaseDiagWith(newF func() func(i int) float64) {
	r.applyDiagWith(func() func(i int) complex128 {
		f := newF()
		return func(i int) complex128 {
			s, c := math.Sincos(f(i))
			return complex(c, s)
		}
	})
}

// scale multiplies every amplitude by f.
func (r *Register) scale(f complex128) {
	amps := r.amps
	r.parallelFor(len(amps), func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			amps[i] *= f
		}
	})
}
