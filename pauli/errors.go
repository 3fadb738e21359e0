// SPDX-License-Identifier: MIT
// Package pauli: sentinel error set.
// Callers match with errors.Is; context is attached with fmt.Errorf("%w").

package pauli

import "errors"

var (
	// ErrInvalidCode indicates a Pauli code outside 0..3.
	ErrInvalidCode = errors.New("pauli: invalid Pauli code")

	// ErrInvalidSize indicates a non-positive qubit or term count.
	ErrInvalidSize = errors.New("pauli: qubit and term counts must be > 0")

	// ErrLengthMismatch indicates coefficient or code slices that disagree
	// with the declared term and qubit counts.
	ErrLengthMismatch = errors.New("pauli: coefficient/code length mismatch")

	// ErrTermOutOfRange indicates a term index outside [0, NumTerms).
	ErrTermOutOfRange = errors.New("pauli: term index out of range")

	// ErrNaNInf signals a non-finite coefficient.
	ErrNaNInf = errors.New("pauli: NaN or Inf coefficient")

	// ErrParse indicates a malformed Hamiltonian text document.
	ErrParse = errors.New("pauli: malformed Hamiltonian text")

	// ErrNilHamil indicates a nil *Hamil.
	ErrNilHamil = errors.New("pauli: nil Hamiltonian")
)
