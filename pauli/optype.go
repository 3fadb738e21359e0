// SPDX-License-Identifier: MIT

package pauli

import "fmt"

// OpType is a single-qubit Pauli operator code.
type OpType int

// Pauli codes; the numeric values are part of the text format.
const (
	I OpType = iota
	X
	Y
	Z
)

// Valid reports whether o is one of I, X, Y, Z.
func (o OpType) Valid() bool { return o >= I && o <= Z }

// String returns "I", "X", "Y" or "Z".
func (o OpType) String() string {
	switch o {
	case I:
		return "I"
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return fmt.Sprintf("OpType(%d)", int(o))
	}
}

// ValidateCodes checks every code is in 0..3.
// Complexity: O(len(codes)).
func ValidateCodes(codes []OpType) error {
	for i, c := range codes {
		if !c.Valid() {
			return fmt.Errorf("ValidateCodes: code[%d]=%d: %w", i, int(c), ErrInvalidCode)
		}
	}

	return nil
}
