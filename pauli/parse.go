// SPDX-License-Identifier: MIT

package pauli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseHamil reads a Hamiltonian in the text format
//
//	coeff c_0 c_1 ... c_{N-1}
//
// one term per non-blank line, codes as integers 0..3. The qubit count is the
// number of codes on the first term line; every later line must agree.
//
// Errors: ErrParse (wrapped with the line number), ErrInvalidCode, ErrNaNInf.
func ParseHamil(r io.Reader) (*Hamil, error) {
	var (
		coeffs []float64
		codes  []OpType
		nq     = -1
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if nq < 0 {
			nq = len(fields) - 1
			if nq < 1 {
				return nil, fmt.Errorf("ParseHamil: line %d: no Pauli codes: %w", lineNo, ErrParse)
			}
		}
		if len(fields)-1 != nq {
			return nil, fmt.Errorf("ParseHamil: line %d: want %d codes, got %d: %w",
				lineNo, nq, len(fields)-1, ErrParse)
		}
		c, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("ParseHamil: line %d: coefficient %q: %w", lineNo, fields[0], ErrParse)
		}
		coeffs = append(coeffs, c)
		for _, f := range fields[1:] {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("ParseHamil: line %d: code %q: %w", lineNo, f, ErrParse)
			}
			codes = append(codes, OpType(v))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ParseHamil: %w", err)
	}
	if nq < 0 {
		return nil, fmt.Errorf("ParseHamil: no terms: %w", ErrParse)
	}
	h, err := NewHamil(nq, len(coeffs))
	if err != nil {
		return nil, err
	}
	if err = h.Init(coeffs, codes); err != nil {
		return nil, fmt.Errorf("ParseHamil: %w", err)
	}

	return h, nil
}

// LoadHamil opens path and parses it with ParseHamil.
func LoadHamil(path string) (*Hamil, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadHamil: %w", err)
	}
	defer f.Close()

	return ParseHamil(f)
}
