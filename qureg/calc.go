// SPDX-License-Identifier: MIT
// Package qureg - derived quantities.
//
// CalcTotalProb is the serial Kahan-compensated reference path. The remaining
// reductions use per-partition partial sums added in partition order.
//
// Expectation values never allocate a register: the caller passes a workspace
// of the same size and kind, which is overwritten.

package qureg

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qsim/pauli"
)

// kahan is a compensated accumulator.
type kahan struct{ sum, c float64 }

func (k *kahan) add(x float64) {
	y := x - k.c
	t := k.sum + y
	k.c = (t - k.sum) - y
	k.sum = t
}

// CalcTotalProb returns Σ|ψ_i|² for a state-vector or Re Tr(ρ) for a density
// matrix, with compensated summation.
//
// Complexity: O(2^N), serial.
func (r *Register) CalcTotalProb() float64 {
	r.mustOpen()
	var k kahan
	if r.isDensity {
		dim := 1 << r.numQubits
		for i := 0; i < dim; i++ {
			k.add(real(r.amps[i+i*dim]))
		}
		return k.sum
	}
	for _, a := range r.amps {
		k.add(real(a) * real(a))
		k.add(imag(a) * imag(a))
	}

	return k.sum
}

// CalcPurity returns Σ|ρ_ij|², which equals Tr(ρ²) for Hermitian ρ.
//
// Errors: ErrNotDensityMatrix.
func (r *Register) CalcPurity() (float64, error) {
	r.mustOpen()
	if err := r.requireDensity(); err != nil {
		return 0, r.fail(opCalcPurity, err)
	}
	amps := r.amps
	s := r.parallelSum(len(amps), func(lo, hi int) complex128 {
		var acc float64
		for _, a := range amps[lo:hi] {
			acc += real(a)*real(a) + imag(a)*imag(a)
		}
		return complex(acc, 0)
	})
	r.done(opCalcPurity)

	return real(s), nil
}

// CalcFidelity returns |<pure|ψ>|² for a state-vector or <pure|ρ|pure> for a
// density matrix. pure must be a state-vector with as many qubits.
//
// Errors: ErrNotStateVector (pure is a density matrix), ErrDimensionMismatch.
func (r *Register) CalcFidelity(pure *Register) (float64, error) {
	r.mustOpen()
	if pure == nil {
		return 0, r.fail(opCalcFidelity, ErrNilArgument)
	}
	pure.mustOpen()
	if err := pure.requireStateVector(); err != nil {
		return 0, r.fail(opCalcFidelity, err)
	}
	if pure.numQubits != r.numQubits {
		return 0, r.fail(opCalcFidelity,
			fmt.Errorf("%s vs %s: %w", r.shape(), pure.shape(), ErrDimensionMismatch))
	}
	var f float64
	if r.isDensity {
		f = real(r.sandwich(pure.amps))
	} else {
		f = cmplx.Abs(r.innerProduct(pure.amps, r.amps))
		f *= f
	}
	r.done(opCalcFidelity)

	return f, nil
}

// innerProduct returns Σ conj(a_i)·b_i.
func (r *Register) innerProduct(a, b []complex128) complex128 {
	return r.parallelSum(len(a), func(lo, hi int) complex128 {
		var acc complex128
		for i := lo; i < hi; i++ {
			acc += cmplx.Conj(a[i]) * b[i]
		}
		return acc
	})
}

// sandwich returns <v|ρ|v> = Σ_rc conj(v_r)·ρ[r,c]·v_c.
func (r *Register) sandwich(v []complex128) complex128 {
	dim := 1 << r.numQubits
	amps := r.amps

	return r.parallelSum(dim, func(lo, hi int) complex128 {
		var acc complex128
		for c := lo; c < hi; c++ {
			var col complex128
			base := c * dim
			for row := 0; row < dim; row++ {
				col += cmplx.Conj(v[row]) * amps[base+row]
			}
			acc += col * v[c]
		}
		return acc
	})
}

// CalcInnerProduct returns <bra|ket> for two state-vectors of equal size.
func CalcInnerProduct(bra, ket *Register) (complex128, error) {
	if err := validateMatching(bra, ket); err != nil {
		return 0, failOn(bra, opCalcInnerProduct, err)
	}
	if err := bra.requireStateVector(); err != nil {
		return 0, bra.fail(opCalcInnerProduct, err)
	}
	v := bra.innerProduct(bra.amps, ket.amps)
	bra.done(opCalcInnerProduct)

	return v, nil
}

// CalcDensityInnerProduct returns Re Tr(ρ1†ρ2) for two density matrices of
// equal size; the trace is real for Hermitian inputs.
func CalcDensityInnerProduct(rho1, rho2 *Register) (float64, error) {
	if err := validateMatching(rho1, rho2); err != nil {
		return 0, failOn(rho1, opCalcDensityInnerProduct, err)
	}
	if err := rho1.requireDensity(); err != nil {
		return 0, rho1.fail(opCalcDensityInnerProduct, err)
	}
	v := rho1.innerProduct(rho1.amps, rho2.amps)
	rho1.done(opCalcDensityInnerProduct)

	return real(v), nil
}

// CalcHilbertSchmidtDistance returns the Frobenius norm of a - b for two
// density matrices of equal size.
func CalcHilbertSchmidtDistance(a, b *Register) (float64, error) {
	if err := validateMatching(a, b); err != nil {
		return 0, failOn(a, opCalcHilbertSchmidtDistance, err)
	}
	if err := a.requireDensity(); err != nil {
		return 0, a.fail(opCalcHilbertSchmidtDistance, err)
	}
	x, y := a.amps, b.amps
	s := a.parallelSum(len(x), func(lo, hi int) complex128 {
		var acc float64
		for i := lo; i < hi; i++ {
			d := x[i] - y[i]
			acc += real(d)*real(d) + imag(d)*imag(d)
		}
		return complex(acc, 0)
	})
	a.done(opCalcHilbertSchmidtDistance)

	return math.Sqrt(real(s)), nil
}

// applyPauliLeft multiplies the rows by a single Pauli on target.
func (r *Register) applyPauliLeft(target int, code pauli.OpType) {
	switch code {
	case pauli.X:
		r.kernelNot(0, 0, target)
	case pauli.Y:
		r.applyLeft(nil, []int{target}, matY)
	case pauli.Z:
		amps := r.amps
		r.parallelFor(len(amps), func(_, lo, hi int) {
			for i := lo; i < hi; i++ {
				if i>>target&1 == 1 {
					amps[i] = -amps[i]
				}
			}
		})
	}
}

// applyPauliProd left-multiplies by ⊗ codes[j] on targets[j].
func (r *Register) applyPauliProd(targets []int, codes []pauli.OpType) {
	for j, t := range targets {
		r.applyPauliLeft(t, codes[j])
	}
}

// expecFromWorkspace returns Re<ψ|ws> or Re Tr(ws).
func (r *Register) expecFromWorkspace(ws *Register) float64 {
	if !r.isDensity {
		return real(r.innerProduct(r.amps, ws.amps))
	}
	dim := 1 << r.numQubits
	amps := ws.amps
	s := r.parallelSum(dim, func(lo, hi int) complex128 {
		var acc complex128
		for i := lo; i < hi; i++ {
			acc += amps[i+i*dim]
		}
		return acc
	})

	return real(s)
}

// CalcExpecPauliProd returns <P> for P = ⊗ codes[j] on targets[j].
// workspace is overwritten.
//
// Errors: ErrArrayLength (codes/targets lengths), ErrInvalidPauliCode,
// ErrDimensionMismatch or ErrInvalidInput for a bad workspace.
func (r *Register) CalcExpecPauliProd(targets []int, codes []pauli.OpType, workspace *Register) (float64, error) {
	r.mustOpen()
	if err := r.validateQubits("target", targets); err != nil {
		return 0, r.fail(opCalcExpecPauliProd, err)
	}
	if len(codes) != len(targets) {
		return 0, r.fail(opCalcExpecPauliProd,
			fmt.Errorf("%d codes for %d targets: %w", len(codes), len(targets), ErrArrayLength))
	}
	if err := validatePauliCodes(codes); err != nil {
		return 0, r.fail(opCalcExpecPauliProd, err)
	}
	if err := r.validateWorkspace(workspace); err != nil {
		return 0, r.fail(opCalcExpecPauliProd, err)
	}
	copy(workspace.amps, r.amps)
	workspace.applyPauliProd(targets, codes)
	v := r.expecFromWorkspace(workspace)
	r.done(opCalcExpecPauliProd)

	return v, nil
}

// CalcExpecPauliSum returns Σ_t coeffs[t]·<P_t>. codes is term-major: term t
// occupies codes[t·N : (t+1)·N], codes[t·N+q] acting on qubit q.
func (r *Register) CalcExpecPauliSum(codes []pauli.OpType, coeffs []float64, workspace *Register) (float64, error) {
	r.mustOpen()
	if err := r.validatePauliSum(codes, coeffs); err != nil {
		return 0, r.fail(opCalcExpecPauliSum, err)
	}
	if err := r.validateWorkspace(workspace); err != nil {
		return 0, r.fail(opCalcExpecPauliSum, err)
	}
	v := r.expecPauliSum(codes, coeffs, workspace)
	r.done(opCalcExpecPauliSum)

	return v, nil
}

// CalcExpecPauliHamil returns <H> for a Hamiltonian on all N qubits.
func (r *Register) CalcExpecPauliHamil(h *pauli.Hamil, workspace *Register) (float64, error) {
	r.mustOpen()
	if err := r.validateHamil(h); err != nil {
		return 0, r.fail(opCalcExpecPauliHamil, err)
	}
	if err := r.validateWorkspace(workspace); err != nil {
		return 0, r.fail(opCalcExpecPauliHamil, err)
	}
	v := r.expecPauliSum(h.Codes, h.Coeffs, workspace)
	r.done(opCalcExpecPauliHamil)

	return v, nil
}

func (r *Register) expecPauliSum(codes []pauli.OpType, coeffs []float64, ws *Register) float64 {
	n := r.numQubits
	all := allQubits(n)
	var k kahan
	for t, c := range coeffs {
		copy(ws.amps, r.amps)
		ws.applyPauliProd(all, codes[t*n:(t+1)*n])
		k.add(c * r.expecFromWorkspace(ws))
	}

	return k.sum
}

// validatePauliSum checks a flat term-major code list against coeffs.
func (r *Register) validatePauliSum(codes []pauli.OpType, coeffs []float64) error {
	if len(coeffs) == 0 {
		return fmt.Errorf("no terms: %w", ErrInvalidInput)
	}
	if len(codes) != len(coeffs)*r.numQubits {
		return fmt.Errorf("%d codes for %d terms on %d qubits: %w",
			len(codes), len(coeffs), r.numQubits, ErrArrayLength)
	}
	if err := validatePauliCodes(codes); err != nil {
		return err
	}

	return validateFinite(coeffs...)
}

func allQubits(n int) []int {
	qs := make([]int, n)
	for i := range qs {
		qs[i] = i
	}

	return qs
}

// ApplyPauliSum sets out = Σ_t coeffs[t]·P_t·in. in is used as scratch and
// restored; out must be a different register of the same size and kind.
// On density matrices the Paulis multiply from the left only.
func ApplyPauliSum(in *Register, codes []pauli.OpType, coeffs []float64, out *Register) error {
	if err := validatePauliSumRegs(in, out); err != nil {
		return failOn(out, opApplyPauliSum, err)
	}
	if err := in.validatePauliSum(codes, coeffs); err != nil {
		return out.fail(opApplyPauliSum, err)
	}
	in.pauliSumInto(codes, coeffs, out)
	out.qasm.Comment("state overwritten by a weighted sum of Pauli products")
	out.done(opApplyPauliSum)

	return nil
}

// ApplyPauliHamil is ApplyPauliSum with the terms of h.
func ApplyPauliHamil(in *Register, h *pauli.Hamil, out *Register) error {
	if err := validatePauliSumRegs(in, out); err != nil {
		return failOn(out, opApplyPauliHamil, err)
	}
	if err := in.validateHamil(h); err != nil {
		return out.fail(opApplyPauliHamil, err)
	}
	in.pauliSumInto(h.Codes, h.Coeffs, out)
	out.qasm.Comment("state overwritten by a Hamiltonian product")
	out.done(opApplyPauliHamil)

	return nil
}

func validatePauliSumRegs(in, out *Register) error {
	if err := validateMatching(in, out); err != nil {
		return err
	}
	if in == out {
		return fmt.Errorf("input and output alias: %w", ErrInvalidInput)
	}

	return nil
}

// pauliSumInto accumulates into out; every product is undone on r afterwards
// since Paulis are self-inverse.
func (r *Register) pauliSumInto(codes []pauli.OpType, coeffs []float64, out *Register) {
	n := r.numQubits
	all := allQubits(n)
	clear(out.amps)
	src, dst := r.amps, out.amps
	for t, c := range coeffs {
		term := codes[t*n : (t+1)*n]
		r.applyPauliProd(all, term)
		f := complex(c, 0)
		out.parallelFor(len(dst), func(_, lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] += f * src[i]
			}
		})
		r.applyPauliProd(all, term)
	}
}
