// SPDX-License-Identifier: MIT
// Package matrix provides the small set of complex linear-algebra kernels the
// register engine needs on top of Operator: product, adjoint, conjugate,
// tensor product, scaling, sum and the Kraus superoperator.
//
// Purpose:
//   - Keep operator algebra out of the register engine.
//   - Accept any Operator; always return a fresh *ComplexMatrixN.
//
// Notes:
//   - All kernels validate through validators.go and wrap failures via matrixErrorf.
//   - Tensor products keep the "least-significant target first" convention:
//     in Kron(hi, lo) the lo factor acts on the low bits of the index.

package matrix

import (
	"fmt"
	"math/cmplx"
)

// Operation name constants for unified error wrapping.
const (
	opAdd           = "Add"
	opMul           = "Mul"
	opAdjoint       = "Adjoint"
	opConj          = "Conj"
	opKron          = "Kron"
	opScale         = "Scale"
	opSuperoperator = "Superoperator"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product a·b.
//
// Implementation:
//   - Stage 1: Validate both operands and equal widths.
//   - Stage 2: Triple loop in i-k-j order over row-major buffers.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(d³), Space O(d²).
func Mul(a, b Operator) (*ComplexMatrixN, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	d := a.Dim()
	ae, be := a.Elements(), b.Elements()
	out := make([]complex128, d*d)
	var i, j, k int
	var aik complex128
	for i = 0; i < d; i++ {
		for k = 0; k < d; k++ {
			aik = ae[i*d+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < d; j++ {
				out[i*d+j] += aik * be[k*d+j]
			}
		}
	}

	return fromElements(a.NumQubits(), out), nil
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(d²).
func Add(a, b Operator) (*ComplexMatrixN, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := a.Elements()
	for i, z := range b.Elements() {
		out[i] += z
	}

	return fromElements(a.NumQubits(), out), nil
}

// Scale returns alpha·op.
func Scale(op Operator, alpha complex128) (*ComplexMatrixN, error) {
	if err := ValidateNotNil(op); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := op.Elements()
	for i := range out {
		out[i] *= alpha
	}

	return fromElements(op.NumQubits(), out), nil
}

// Adjoint returns the conjugate transpose op†.
func Adjoint(op Operator) (*ComplexMatrixN, error) {
	if err := ValidateNotNil(op); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	d := op.Dim()
	in := op.Elements()
	out := make([]complex128, d*d)
	var i, j int
	for i = 0; i < d; i++ {
		for j = 0; j < d; j++ {
			out[j*d+i] = cmplx.Conj(in[i*d+j])
		}
	}

	return fromElements(op.NumQubits(), out), nil
}

// Conj returns the element-wise complex conjugate of op (no transpose).
func Conj(op Operator) (*ComplexMatrixN, error) {
	if err := ValidateNotNil(op); err != nil {
		return nil, matrixErrorf(opConj, err)
	}
	out := op.Elements()
	for i := range out {
		out[i] = cmplx.Conj(out[i])
	}

	return fromElements(op.NumQubits(), out), nil
}

// Kron returns the tensor product hi ⊗ lo acting on hi.NumQubits()+lo.NumQubits()
// qubits, with lo on the low-order bits:
//
//	(hi ⊗ lo)[(rh<<nl)|rl, (ch<<nl)|cl] = hi[rh,ch] · lo[rl,cl]
//
// Errors: ErrNilMatrix, ErrInvalidDimensions (combined width > MaxOperatorQubits).
// Complexity: Time O(dh²·dl²).
func Kron(hi, lo Operator) (*ComplexMatrixN, error) {
	if err := ValidateNotNil(hi); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(lo); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	nl := lo.NumQubits()
	n := hi.NumQubits() + nl
	if n > MaxOperatorQubits {
		return nil, matrixErrorf(opKron, ErrInvalidDimensions)
	}
	dh, dl, d := hi.Dim(), lo.Dim(), 1<<n
	he, le := hi.Elements(), lo.Elements()
	out := make([]complex128, d*d)
	var rh, ch, rl, cl int
	var h complex128
	for rh = 0; rh < dh; rh++ {
		for ch = 0; ch < dh; ch++ {
			h = he[rh*dh+ch]
			if h == 0 {
				continue
			}
			for rl = 0; rl < dl; rl++ {
				row := (rh<<nl | rl) * d
				for cl = 0; cl < dl; cl++ {
					out[row+(ch<<nl|cl)] = h * le[rl*dl+cl]
				}
			}
		}
	}

	return fromElements(n, out), nil
}

// Superoperator returns Σ_k conj(K_k) ⊗ K_k, the matrix that applies the
// channel ρ → Σ K ρ K† to a column-stacked density matrix when K acts on the
// row qubits (low bits) and conj(K) on the column qubits (high bits).
//
// Errors: ErrEmptyOperatorList, ErrNilMatrix, ErrDimensionMismatch,
// ErrInvalidDimensions (2n > MaxOperatorQubits).
// Complexity: O(k·d⁴).
func Superoperator[T Operator](ops []T) (*ComplexMatrixN, error) {
	if err := ValidateKrausList(ops); err != nil {
		return nil, matrixErrorf(opSuperoperator, err)
	}
	var acc *ComplexMatrixN
	for i := range ops {
		c, err := Conj(ops[i])
		if err != nil {
			return nil, matrixErrorf(opSuperoperator, err)
		}
		term, err := Kron(c, ops[i])
		if err != nil {
			return nil, matrixErrorf(opSuperoperator, err)
		}
		if acc == nil {
			acc = term
			continue
		}
		for j := range acc.data {
			acc.data[j] += term.data[j]
		}
	}

	return acc, nil
}

// validateBinary enforces NotNil on both operands and equal widths.
func validateBinary(a, b Operator) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameDim(a, b)
}
