// SPDX-License-Identifier: MIT

// Package matrix - ComplexMatrixN storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*dim + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewComplexMatrixN: O(4^n) zero-init; At/Set: O(1); Clone/Elements: O(4^n).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxSet  = "Set"  // method tag used in error wrappers
	ctxInit = "Init" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform ComplexMatrixN context and callsite indices.
// Keeps the sentinel reachable through %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("ComplexMatrixN.%s(%d,%d): %w", method, row, col, err)
}

// ComplexMatrixN is a 2^n × 2^n complex operator.
//   - numQubits is n, dim is 2^n.
//   - data is a flat buffer of length dim*dim in row-major order (offset = i*dim + j).
//   - validateNaNInf enables NaN/Inf rejection in Set and Init.
type ComplexMatrixN struct {
	numQubits      int
	dim            int
	data           []complex128
	validateNaNInf bool
}

// NewComplexMatrixN creates a zero operator on numQubits qubits.
//
// Implementation:
//   - Stage 1: validate 1 <= numQubits <= MaxOperatorQubits; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy from opts.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(4^n), Space O(4^n).
func NewComplexMatrixN(numQubits int, opts ...Option) (*ComplexMatrixN, error) {
	if numQubits < 1 || numQubits > MaxOperatorQubits {
		return nil, fmt.Errorf("NewComplexMatrixN(%d): %w", numQubits, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	dim := 1 << numQubits

	return &ComplexMatrixN{
		numQubits:      numQubits,
		dim:            dim,
		data:           make([]complex128, dim*dim),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewComplexMatrixNFrom builds an operator from literal real and imaginary
// grids. Both grids must be square with a power-of-two side ≥ 2 and agree in
// shape; a nil imags means "purely real".
//
// Errors: ErrBadShape, ErrInvalidDimensions, ErrNaNInf.
// Complexity: O(4^n).
func NewComplexMatrixNFrom(reals, imags [][]float64, opts ...Option) (*ComplexMatrixN, error) {
	side := len(reals)
	n := 0
	for (1 << n) < side {
		n++
	}
	if side < 2 || (1<<n) != side {
		return nil, fmt.Errorf("NewComplexMatrixNFrom: side %d: %w", side, ErrBadShape)
	}
	m, err := NewComplexMatrixN(n, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.Init(reals, imags); err != nil {
		return nil, err
	}

	return m, nil
}

// Identity returns I on numQubits qubits.
func Identity(numQubits int) (*ComplexMatrixN, error) {
	m, err := NewComplexMatrixN(numQubits)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.dim; i++ {
		m.data[i*m.dim+i] = 1
	}

	return m, nil
}

// NumQubits returns n.
func (m *ComplexMatrixN) NumQubits() int { return m.numQubits }

// Dim returns 2^n.
func (m *ComplexMatrixN) Dim() int { return m.dim }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *ComplexMatrixN) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.dim {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.dim {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.dim + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *ComplexMatrixN) At(row, col int) (complex128, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col). Rejects NaN/Inf when the policy is active.
// Complexity: O(1).
func (m *ComplexMatrixN) Set(row, col int, v complex128) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if m.validateNaNInf && isNonFiniteComplex(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Init overwrites every entry from split real/imaginary grids, the
// counterpart of the C-style "initComplexMatrixN". A nil imags leaves all
// imaginary parts at zero. Validation completes before any write.
//
// Errors: ErrBadShape on ragged or mis-sized grids, ErrNaNInf under policy.
// Complexity: O(4^n).
func (m *ComplexMatrixN) Init(reals, imags [][]float64) error {
	if len(reals) != m.dim || (imags != nil && len(imags) != m.dim) {
		return denseErrorf(ctxInit, len(reals), len(imags), ErrBadShape)
	}
	var i, j int
	for i = 0; i < m.dim; i++ {
		if len(reals[i]) != m.dim || (imags != nil && len(imags[i]) != m.dim) {
			return denseErrorf(ctxInit, i, len(reals[i]), ErrBadShape)
		}
		if !m.validateNaNInf {
			continue
		}
		for j = 0; j < m.dim; j++ {
			if isNonFinite(reals[i][j]) || (imags != nil && isNonFinite(imags[i][j])) {
				return denseErrorf(ctxInit, i, j, ErrNaNInf)
			}
		}
	}
	for i = 0; i < m.dim; i++ {
		for j = 0; j < m.dim; j++ {
			im := 0.0
			if imags != nil {
				im = imags[i][j]
			}
			m.data[i*m.dim+j] = complex(reals[i][j], im)
		}
	}

	return nil
}

// Elements returns a row-major copy of the entries.
func (m *ComplexMatrixN) Elements() []complex128 {
	out := make([]complex128, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy. Complexity: O(4^n).
func (m *ComplexMatrixN) Clone() *ComplexMatrixN {
	buf := make([]complex128, len(m.data))
	copy(buf, m.data)

	return &ComplexMatrixN{numQubits: m.numQubits, dim: m.dim, data: buf, validateNaNInf: m.validateNaNInf}
}

// String implements fmt.Stringer for easy debugging.
func (m *ComplexMatrixN) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.dim; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.dim; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.dim+j])
			if j < m.dim-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// fromElements wraps a row-major buffer without copying. Internal only;
// callers guarantee len(data) == dim*dim with dim a power of two.
func fromElements(numQubits int, data []complex128) *ComplexMatrixN {
	return &ComplexMatrixN{
		numQubits:      numQubits,
		dim:            1 << numQubits,
		data:           data,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// ToN converts any Operator into a ComplexMatrixN copy.
func ToN(op Operator) (*ComplexMatrixN, error) {
	if op == nil {
		return nil, fmt.Errorf("ToN: %w", ErrNilMatrix)
	}
	if m, ok := op.(*ComplexMatrixN); ok {
		if m == nil {
			return nil, fmt.Errorf("ToN: %w", ErrNilMatrix)
		}
		return m.Clone(), nil
	}

	return fromElements(op.NumQubits(), op.Elements()), nil
}
