// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic operator fixtures for kernels and validators.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsim/matrix"
)

// tol is the comparison tolerance for results of floating-point kernels.
const tol = 1e-12

// hide wraps any Operator to hide its concrete type from type assertions,
// forcing the generic Elements() path in code under test.
type hide struct{ matrix.Operator }

// hadamard returns H as a ComplexMatrix2.
func hadamard() matrix.ComplexMatrix2 {
	s := 1 / math.Sqrt2

	return matrix.NewComplexMatrix2([2][2]float64{{s, s}, {s, -s}}, [2][2]float64{})
}

// pauliY returns Y as a ComplexMatrix2.
func pauliY() matrix.ComplexMatrix2 {
	return matrix.ComplexMatrix2From([2][2]complex128{{0, -1i}, {1i, 0}})
}

// MustN allocates an n-qubit zero operator or fails the test.
func MustN(tb testing.TB, n int) *matrix.ComplexMatrixN {
	tb.Helper()
	m, err := matrix.NewComplexMatrixN(n)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m matrix.Operator, i, j int) complex128 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// MustClose asserts element-wise closeness within tol.
func MustClose(tb testing.TB, want, got matrix.Operator) {
	tb.Helper()
	ok, err := matrix.AllClose(got, want, 0, tol)
	require.NoError(tb, err)
	require.Truef(tb, ok, "want:\n%v\ngot:\n%v", want, got)
}

// randomUnitary builds a deterministic n-qubit unitary by Gram-Schmidt over
// random complex columns.
func randomUnitary(tb testing.TB, n int, seed int64) *matrix.ComplexMatrixN {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	d := 1 << n
	cols := make([][]complex128, d)
	var i, j, k int
	for j = 0; j < d; j++ {
		v := make([]complex128, d)
		for i = range v {
			v[i] = complex(rng.NormFloat64(), rng.NormFloat64())
		}
		for k = 0; k < j; k++ {
			var dot complex128
			for i = range v {
				dot += complex(real(cols[k][i]), -imag(cols[k][i])) * v[i]
			}
			for i = range v {
				v[i] -= dot * cols[k][i]
			}
		}
		var norm float64
		for i = range v {
			norm += real(v[i])*real(v[i]) + imag(v[i])*imag(v[i])
		}
		norm = math.Sqrt(norm)
		for i = range v {
			v[i] /= complex(norm, 0)
		}
		cols[j] = v
	}
	m := MustN(tb, n)
	for i = 0; i < d; i++ {
		for j = 0; j < d; j++ {
			require.NoError(tb, m.Set(i, j, cols[j][i]))
		}
	}

	return m
}
