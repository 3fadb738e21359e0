// SPDX-License-Identifier: MIT
// Package pauli: Hamil storage and validation.
//
// Purpose:
//   - Keep coefficients and codes in flat, term-major slices.
//   - Validate completely before writing (Init is all-or-nothing).

package pauli

import (
	"fmt"
	"math"
)

// Hamil is a real-weighted sum of Pauli tensor products.
type Hamil struct {
	NumQubits int
	NumTerms  int
	// Coeffs holds one real weight per term.
	Coeffs []float64
	// Codes holds NumTerms*NumQubits codes, term-major.
	Codes []OpType
}

// NewHamil allocates a Hamiltonian of numTerms all-identity terms with zero
// coefficients.
//
// Errors: ErrInvalidSize when either count is non-positive.
func NewHamil(numQubits, numTerms int) (*Hamil, error) {
	if numQubits <= 0 || numTerms <= 0 {
		return nil, fmt.Errorf("NewHamil(%d,%d): %w", numQubits, numTerms, ErrInvalidSize)
	}

	return &Hamil{
		NumQubits: numQubits,
		NumTerms:  numTerms,
		Coeffs:    make([]float64, numTerms),
		Codes:     make([]OpType, numTerms*numQubits),
	}, nil
}

// Init overwrites all coefficients and codes.
//
// Implementation:
//   - Stage 1: Validate lengths, finiteness and codes.
//   - Stage 2: Copy both slices.
//
// Errors: ErrLengthMismatch, ErrNaNInf, ErrInvalidCode.
func (h *Hamil) Init(coeffs []float64, codes []OpType) error {
	if err := validateTerms(h.NumQubits, h.NumTerms, coeffs, codes); err != nil {
		return fmt.Errorf("Hamil.Init: %w", err)
	}
	copy(h.Coeffs, coeffs)
	copy(h.Codes, codes)

	return nil
}

// Term returns the coefficient and the code slice of term t. The slice
// aliases the Hamiltonian storage.
func (h *Hamil) Term(t int) (float64, []OpType, error) {
	if t < 0 || t >= h.NumTerms {
		return 0, nil, fmt.Errorf("Hamil.Term(%d): %w", t, ErrTermOutOfRange)
	}
	lo := t * h.NumQubits

	return h.Coeffs[t], h.Codes[lo : lo+h.NumQubits], nil
}

// Validate checks the structural invariants of h.
func (h *Hamil) Validate() error {
	if h == nil {
		return ErrNilHamil
	}
	if h.NumQubits <= 0 || h.NumTerms <= 0 {
		return fmt.Errorf("Hamil.Validate: %w", ErrInvalidSize)
	}
	if err := validateTerms(h.NumQubits, h.NumTerms, h.Coeffs, h.Codes); err != nil {
		return fmt.Errorf("Hamil.Validate: %w", err)
	}

	return nil
}

// String renders one term per line, e.g. "0.5 XIZ".
func (h *Hamil) String() string {
	out := make([]byte, 0, h.NumTerms*(h.NumQubits+16))
	for t := 0; t < h.NumTerms; t++ {
		out = fmt.Appendf(out, "%g ", h.Coeffs[t])
		for _, c := range h.Codes[t*h.NumQubits : (t+1)*h.NumQubits] {
			out = append(out, c.String()...)
		}
		out = append(out, '\n')
	}

	return string(out)
}

func validateTerms(numQubits, numTerms int, coeffs []float64, codes []OpType) error {
	if len(coeffs) != numTerms || len(codes) != numTerms*numQubits {
		return ErrLengthMismatch
	}
	for _, c := range coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return ErrNaNInf
		}
	}

	return ValidateCodes(codes)
}
