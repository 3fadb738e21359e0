// SPDX-License-Identifier: MIT
package pauli_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsim/pauli"
)

func TestNewHamilAndInit(t *testing.T) {
	h, err := pauli.NewHamil(2, 2)
	require.NoError(t, err)
	require.NoError(t, h.Validate())

	err = h.Init([]float64{0.5, -1}, []pauli.OpType{pauli.X, pauli.I, pauli.Z, pauli.Z})
	require.NoError(t, err)
	c, codes, err := h.Term(1)
	require.NoError(t, err)
	require.Equal(t, -1.0, c)
	require.Equal(t, []pauli.OpType{pauli.Z, pauli.Z}, codes)
	require.Equal(t, "0.5 XI\n-1 ZZ\n", h.String())

	_, _, err = h.Term(2)
	require.ErrorIs(t, err, pauli.ErrTermOutOfRange)
}

func TestHamilInitIsAllOrNothing(t *testing.T) {
	h, err := pauli.NewHamil(1, 2)
	require.NoError(t, err)
	require.NoError(t, h.Init([]float64{1, 2}, []pauli.OpType{pauli.X, pauli.Y}))

	cases := []struct {
		name   string
		coeffs []float64
		codes  []pauli.OpType
		want   error
	}{
		{"short coeffs", []float64{1}, []pauli.OpType{pauli.X, pauli.Y}, pauli.ErrLengthMismatch},
		{"long codes", []float64{1, 2}, []pauli.OpType{pauli.X, pauli.Y, pauli.Z}, pauli.ErrLengthMismatch},
		{"bad code", []float64{1, 2}, []pauli.OpType{pauli.X, 4}, pauli.ErrInvalidCode},
		{"nan", []float64{math.NaN(), 2}, []pauli.OpType{pauli.X, pauli.Y}, pauli.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, h.Init(tc.coeffs, tc.codes), tc.want)
			require.Equal(t, []float64{1, 2}, h.Coeffs)
			require.Equal(t, []pauli.OpType{pauli.X, pauli.Y}, h.Codes)
		})
	}
}

func TestNewHamilInvalid(t *testing.T) {
	_, err := pauli.NewHamil(0, 1)
	require.ErrorIs(t, err, pauli.ErrInvalidSize)
	_, err = pauli.NewHamil(1, -1)
	require.ErrorIs(t, err, pauli.ErrInvalidSize)

	var h *pauli.Hamil
	require.ErrorIs(t, h.Validate(), pauli.ErrNilHamil)
}

func TestOpType(t *testing.T) {
	require.Equal(t, "Y", pauli.Y.String())
	require.Equal(t, "OpType(7)", pauli.OpType(7).String())
	require.ErrorIs(t, pauli.ValidateCodes([]pauli.OpType{pauli.I, -1}), pauli.ErrInvalidCode)
}

func TestParseHamil(t *testing.T) {
	src := "0.25 1 0 3\n\n-1.5 0 2 2\n"
	h, err := pauli.ParseHamil(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, h.NumQubits)
	require.Equal(t, 2, h.NumTerms)
	require.Equal(t, []float64{0.25, -1.5}, h.Coeffs)
	require.Equal(t, []pauli.OpType{pauli.X, pauli.I, pauli.Z, pauli.I, pauli.Y, pauli.Y}, h.Codes)
}

func TestParseHamilErrors(t *testing.T) {
	for _, tc := range []struct {
		name, src string
		want      error
	}{
		{"empty", "\n\n", pauli.ErrParse},
		{"no codes", "1.0\n", pauli.ErrParse},
		{"ragged", "1 0 1\n2 3\n", pauli.ErrParse},
		{"bad coeff", "x 0\n", pauli.ErrParse},
		{"bad code token", "1 q\n", pauli.ErrParse},
		{"code out of range", "1 4\n", pauli.ErrInvalidCode},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pauli.ParseHamil(strings.NewReader(tc.src))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoadHamil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 3 3\n"), 0o600))
	h, err := pauli.LoadHamil(path)
	require.NoError(t, err)
	require.Equal(t, 2, h.NumQubits)

	_, err = pauli.LoadHamil(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
