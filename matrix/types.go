// SPDX-License-Identifier: MIT

// Package matrix: descriptor types.
// This file contains ONLY the operator interface and the fixed-size value
// types. The variable-size ComplexMatrixN lives in dense.go; errors and
// options live in dedicated files (errors.go, options.go).
package matrix

import (
	"fmt"
	"math"
)

// Operator is a square complex matrix acting on NumQubits qubits
// (Dim() == 1 << NumQubits()). Implementations are read-only from the
// point of view of the register engine.
//
// Complexity notes: all methods are expected O(1) except Elements (O(dim²)).
type Operator interface {
	// NumQubits returns the number of qubits the operator acts on.
	NumQubits() int

	// Dim returns the side length 2^NumQubits.
	Dim() int

	// At retrieves the element at (row, col).
	// Returns ErrOutOfRange if either index is outside [0, Dim()).
	At(row, col int) (complex128, error)

	// Elements returns a row-major copy of all entries (len == Dim()*Dim()).
	Elements() []complex128
}

// Compile-time assertions for interface conformance.
var (
	_ Operator = ComplexMatrix2{}
	_ Operator = ComplexMatrix4{}
	_ Operator = (*ComplexMatrixN)(nil)
)

// ComplexMatrix2 is a 2×2 complex matrix with split real and imaginary parts,
// Real[r][c] + i·Imag[r][c].
type ComplexMatrix2 struct {
	Real [2][2]float64
	Imag [2][2]float64
}

// NewComplexMatrix2 builds a 2×2 matrix from its real and imaginary grids.
func NewComplexMatrix2(re, im [2][2]float64) ComplexMatrix2 {
	return ComplexMatrix2{Real: re, Imag: im}
}

// ComplexMatrix2From builds a 2×2 matrix from complex entries.
func ComplexMatrix2From(m [2][2]complex128) ComplexMatrix2 {
	var out ComplexMatrix2
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			out.Real[r][c] = real(m[r][c])
			out.Imag[r][c] = imag(m[r][c])
		}
	}

	return out
}

// NumQubits returns 1.
func (m ComplexMatrix2) NumQubits() int { return 1 }

// Dim returns 2.
func (m ComplexMatrix2) Dim() int { return 2 }

// At retrieves entry (row, col) or ErrOutOfRange.
func (m ComplexMatrix2) At(row, col int) (complex128, error) {
	if row < 0 || row >= 2 || col < 0 || col >= 2 {
		return 0, fmt.Errorf("ComplexMatrix2.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return complex(m.Real[row][col], m.Imag[row][col]), nil
}

// Entries returns the matrix as a complex grid.
func (m ComplexMatrix2) Entries() [2][2]complex128 {
	var out [2][2]complex128
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			out[r][c] = complex(m.Real[r][c], m.Imag[r][c])
		}
	}

	return out
}

// Elements returns a row-major copy of the four entries.
func (m ComplexMatrix2) Elements() []complex128 {
	e := m.Entries()

	return []complex128{e[0][0], e[0][1], e[1][0], e[1][1]}
}

// ComplexMatrix4 is a 4×4 complex matrix with split real and imaginary parts.
// Row/column bit 0 addresses the first target qubit, bit 1 the second.
type ComplexMatrix4 struct {
	Real [4][4]float64
	Imag [4][4]float64
}

// NewComplexMatrix4 builds a 4×4 matrix from its real and imaginary grids.
func NewComplexMatrix4(re, im [4][4]float64) ComplexMatrix4 {
	return ComplexMatrix4{Real: re, Imag: im}
}

// ComplexMatrix4From builds a 4×4 matrix from complex entries.
func ComplexMatrix4From(m [4][4]complex128) ComplexMatrix4 {
	var out ComplexMatrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.Real[r][c] = real(m[r][c])
			out.Imag[r][c] = imag(m[r][c])
		}
	}

	return out
}

// NumQubits returns 2.
func (m ComplexMatrix4) NumQubits() int { return 2 }

// Dim returns 4.
func (m ComplexMatrix4) Dim() int { return 4 }

// At retrieves entry (row, col) or ErrOutOfRange.
func (m ComplexMatrix4) At(row, col int) (complex128, error) {
	if row < 0 || row >= 4 || col < 0 || col >= 4 {
		return 0, fmt.Errorf("ComplexMatrix4.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return complex(m.Real[row][col], m.Imag[row][col]), nil
}

// Elements returns a row-major copy of the sixteen entries.
func (m ComplexMatrix4) Elements() []complex128 {
	out := make([]complex128, 16)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = complex(m.Real[r][c], m.Imag[r][c])
		}
	}

	return out
}

// Vector is a real 3-vector, used as a Bloch-sphere rotation axis.
type Vector struct {
	X, Y, Z float64
}

// Norm returns the Euclidean length.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Unit returns v scaled to unit length, or ErrZeroVector when |v| == 0.
// Returns ErrNaNInf for non-finite components.
func (v Vector) Unit() (Vector, error) {
	if isNonFinite(v.X) || isNonFinite(v.Y) || isNonFinite(v.Z) {
		return Vector{}, fmt.Errorf("Vector.Unit: %w", ErrNaNInf)
	}
	n := v.Norm()
	if n == 0 {
		return Vector{}, fmt.Errorf("Vector.Unit: %w", ErrZeroVector)
	}

	return Vector{X: v.X / n, Y: v.Y / n, Z: v.Z / n}, nil
}
