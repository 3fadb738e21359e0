// SPDX-License-Identifier: MIT

// Package pauli describes weighted sums of Pauli tensor products.
//
// A Hamil holds NumTerms terms over NumQubits qubits. Codes are stored flat
// and term-major: code j of term t lives at Codes[t*NumQubits+j] and acts on
// qubit j. Coefficients are real.
//
// What's inside:
//   - OpType: the four single-qubit Pauli codes I, X, Y, Z (0..3).
//   - Hamil: construction, initialization, term access and validation.
//   - ParseHamil / LoadHamil: the line-oriented text format
//     "coeff c_0 c_1 ... c_{N-1}", one term per line, codes as integers 0..3.
//
// Hamil values are plain data; the register engine reads them but never
// mutates them.
package pauli
