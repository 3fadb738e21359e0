// SPDX-License-Identifier: MIT
package qureg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsim/qureg"
)

// requirePhases checks a register prepared in |+...+> now holds exp(i·f(i))/√N.
func requirePhases(t *testing.T, q *qureg.Register, f func(i int) float64) {
	t.Helper()
	n := 1 << q.NumQubits()
	want := make([]complex128, n)
	for i := range want {
		want[i] = expiPhase(f(i)) / complex(math.Sqrt(float64(n)), 0)
	}
	requireAmps(t, want, q.Amplitudes())
}

// field extracts the integer held by qubits (least significant first).
func field(i int, qubits []int, signed bool) float64 {
	v := 0
	for b, q := range qubits {
		v |= (i >> q & 1) << b
	}
	if signed && v>>(len(qubits)-1)&1 == 1 {
		v -= 1 << len(qubits)
	}

	return float64(v)
}

func TestApplyPhaseFuncUnsigned(t *testing.T) {
	e := parallelEnv(t)
	q := newSV(t, e, 3)
	q.InitPlusState()
	qubits := []int{2, 0}
	require.NoError(t, q.ApplyPhaseFunc(qubits, qureg.Unsigned, []float64{0.5, 0.1}, []float64{2, 1}))
	requirePhases(t, q, func(i int) float64 {
		r := field(i, qubits, false)
		return 0.5*r*r + 0.1*r
	})
}

func TestApplyPhaseFuncTwosComplement(t *testing.T) {
	e := newEnv(t)
	q := newSV(t, e, 3)
	q.InitPlusState()
	qubits := []int{0, 1, 2}
	require.NoError(t, q.ApplyPhaseFunc(qubits, qureg.TwosComplement, []float64{0.3}, []float64{3}))
	requirePhases(t, q, func(i int) float64 {
		r := field(i, qubits, true)
		return 0.3 * r * r * r
	})
	// index 7 reads as -1
	require.InDelta(t, -1, field(7, qubits, true), 0)
}

func TestApplyPhaseFuncDomainChecks(t *testing.T) {
	e := newEnv(t)
	q := newSV(t, e, 2)
	qubits := []int{0, 1}

	err := q.ApplyPhaseFunc(qubits, qureg.Unsigned, []float64{1}, []float64{-1})
	require.ErrorIs(t, err, qureg.ErrPhaseFuncNegativeExp)
	require.ErrorIs(t, err, qureg.ErrPhaseFunc)
	require.ErrorIs(t, err, qureg.ErrInvalidInput)

	q.InitPlusState()
	require.NoError(t, q.ApplyPhaseFuncOverrides(qubits, qureg.Unsigned, []float64{1}, []float64{-1},
		[]int64{0}, []float64{0.25}))
	requirePhases(t, q, func(i int) float64 {
		if i == 0 {
			return 0.25
		}
		return 1 / float64(i)
	})

	err = q.ApplyPhaseFunc(qubits, qureg.TwosComplement, []float64{1}, []float64{0.5})
	require.ErrorIs(t, err, qureg.ErrPhaseFuncFractionalExp)
	err = q.ApplyPhaseFuncOverrides(qubits, qureg.TwosComplement, []float64{1}, []float64{0.5},
		[]int64{-2}, []float64{0})
	require.ErrorIs(t, err, qureg.ErrPhaseFuncFractionalExp)
	require.NoError(t, q.ApplyPhaseFuncOverrides(qubits, qureg.TwosComplement, []float64{1}, []float64{0.5},
		[]int64{-2, -1}, []float64{0, 0}))
}

func TestApplyPhaseFuncOverridesFirstWins(t *testing.T) {
	e := newEnv(t)
	q := newSV(t, e, 2)
	q.InitPlusState()
	require.NoError(t, q.ApplyPhaseFuncOverrides([]int{0, 1}, qureg.Unsigned, []float64{1}, []float64{1},
		[]int64{3, 3, 1}, []float64{0.5, 0.9, -0.2}))
	requirePhases(t, q, func(i int) float64 {
		switch i {
		case 3:
			return 0.5
		case 1:
			return -0.2
		}
		return float64(i)
	})
}

func TestApplyPhaseFuncValidation(t *testing.T) {
	e := newEnv(t)
	q := newSV(t, e, 3)
	cases := []struct {
		name string
		err  error
		want error
		kind error
	}{
		{"term mismatch", q.ApplyPhaseFunc([]int{0}, qureg.Unsigned, []float64{1, 2}, []float64{1}), qureg.ErrPhaseFuncTerms, nil},
		{"no terms", q.ApplyPhaseFunc([]int{0}, qureg.Unsigned, nil, nil), qureg.ErrPhaseFuncTerms, nil},
		{"sign-only register", q.ApplyPhaseFunc([]int{0}, qureg.TwosComplement, []float64{1}, []float64{1}), qureg.ErrPhaseFuncRegisterSize, nil},
		{"bad encoding", q.ApplyPhaseFunc([]int{0}, qureg.BitEncoding(5), []float64{1}, []float64{1}), qureg.ErrPhaseFuncName, nil},
		{"repeated qubit", q.ApplyPhaseFunc([]int{0, 0}, qureg.Unsigned, []float64{1}, []float64{1}), qureg.ErrRepeatedQubit, nil},
		{"override out of range", q.ApplyPhaseFuncOverrides([]int{0, 1}, qureg.Unsigned, []float64{1}, []float64{1},
			[]int64{4}, []float64{0}), qureg.ErrPhaseFuncOverrideIndex, nil},
		{"override count", q.ApplyPhaseFuncOverrides([]int{0, 1}, qureg.Unsigned, []float64{1}, []float64{1},
			[]int64{1, 2}, []float64{0}), qureg.ErrPhaseFuncOverrideCount, nil},
		{"qubit count", q.ApplyMultiVarPhaseFunc([]int{0, 1}, []int{1, 2}, qureg.Unsigned,
			[]float64{1, 1}, []float64{1, 1}, []int{1, 1}), qureg.ErrArrayLength, qureg.ErrArrayLength},
		{"no sub-registers", q.ApplyNamedPhaseFunc(nil, nil, qureg.Unsigned, qureg.Norm), qureg.ErrPhaseFuncNumRegs, nil},
		{"term groups", q.ApplyMultiVarPhaseFunc([]int{0, 1}, []int{1, 1}, qureg.Unsigned,
			[]float64{1, 1}, []float64{1, 1}, []int{2}), qureg.ErrPhaseFuncTerms, nil},
		{"multi negative", q.ApplyMultiVarPhaseFunc([]int{0, 1}, []int{1, 1}, qureg.Unsigned,
			[]float64{1, 1}, []float64{1, -1}, []int{1, 1}), qureg.ErrPhaseFuncNegativeExp, nil},
		{"multi fractional", q.ApplyMultiVarPhaseFunc([]int{0, 1, 2}, []int{3}, qureg.TwosComplement,
			[]float64{1}, []float64{0.5}, []int{1}), qureg.ErrPhaseFuncFractionalExp, nil},
		{"unknown name", q.ApplyNamedPhaseFunc([]int{0, 1}, []int{1, 1}, qureg.Unsigned, qureg.PhaseFunc(99)), qureg.ErrPhaseFuncName, nil},
		{"odd distance", q.ApplyNamedPhaseFunc([]int{0, 1, 2}, []int{1, 1, 1}, qureg.Unsigned, qureg.Distance), qureg.ErrPhaseFuncOddRegs, nil},
		{"missing params", q.ApplyNamedPhaseFunc([]int{0, 1}, []int{1, 1}, qureg.Unsigned, qureg.ScaledNorm), qureg.ErrPhaseFuncParams, nil},
		{"extra params", q.ApplyParamNamedPhaseFunc([]int{0, 1}, []int{1, 1}, qureg.Unsigned, qureg.Norm, []float64{1}), qureg.ErrPhaseFuncParams, nil},
		{"non-finite param", q.ApplyParamNamedPhaseFunc([]int{0, 1}, []int{1, 1}, qureg.Unsigned, qureg.ScaledNorm,
			[]float64{math.Inf(1)}), qureg.ErrNonFinite, nil},
	}
	for _, tc := range cases {
		require.ErrorIs(t, tc.err, tc.want, tc.name)
		kind := tc.kind
		if kind == nil {
			kind = qureg.ErrInvalidInput
		}
		require.ErrorIs(t, tc.err, kind, tc.name)
	}
}

func TestApplyMultiVarPhaseFunc(t *testing.T) {
	e := newEnv(t)
	q := newSV(t, e, 4)
	q.InitPlusState()
	a, b := []int{0, 1}, []int{3, 2}
	require.NoError(t, q.ApplyMultiVarPhaseFuncOverrides([]int{0, 1, 3, 2}, []int{2, 2}, qureg.Unsigned,
		[]float64{1, 0.5, 2}, []float64{1, 2, 2}, []int{2, 1},
		[]int64{3, 3}, []float64{-1}))
	requirePhases(t, q, func(i int) float64 {
		x, y := field(i, a, false), field(i, b, false)
		if x == 3 && y == 3 {
			return -1
		}
		return x + 0.5*x*x + 2*y*y
	})
}

func TestApplyNamedPhaseFunc(t *testing.T) {
	a, b := []int{0, 1}, []int{2, 3}
	qubits, sizes := []int{0, 1, 2, 3}, []int{2, 2}
	cases := []struct {
		fn     qureg.PhaseFunc
		params []float64
		f      func(x, y float64) float64
	}{
		{qureg.Norm, nil, func(x, y float64) float64 { return math.Hypot(x, y) }},
		{qureg.ScaledNorm, []float64{0.7}, func(x, y float64) float64 { return 0.7 * math.Hypot(x, y) }},
		{qureg.InverseNorm, nil, func(x, y float64) float64 {
			if x == 0 && y == 0 {
				return 0
			}
			return 1 / math.Hypot(x, y)
		}},
		{qureg.ScaledInverseNorm, []float64{2, 0.4}, func(x, y float64) float64 {
			if x == 0 && y == 0 {
				return 0.4
			}
			return 2 / math.Hypot(x, y)
		}},
		{qureg.ScaledInverseShiftedNorm, []float64{2, 0.4, 1, -0.5}, func(x, y float64) float64 {
			return 2 / math.Hypot(x-1, y+0.5)
		}},
		{qureg.Product, nil, func(x, y float64) float64 { return x * y }},
		{qureg.ScaledInverseProduct, []float64{3, 0.1}, func(x, y float64) float64 {
			if x*y == 0 {
				return 0.1
			}
			return 3 / (x * y)
		}},
		{qureg.Distance, nil, func(x, y float64) float64 { return math.Abs(y - x) }},
		{qureg.ScaledInverseShiftedDistance, []float64{1.5, 0.2, 0.5}, func(x, y float64) float64 {
			return 1.5 / math.Abs(x-y-0.5)
		}},
		{qureg.ScaledInverseShiftedWeightedDistance, []float64{1.5, 0.2, 2, 0.5}, func(x, y float64) float64 {
			return 1.5 / math.Sqrt(2*(x-y-0.5)*(x-y-0.5))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.fn.String(), func(t *testing.T) {
			e := newEnv(t)
			q := newSV(t, e, 4)
			q.InitPlusState()
			var err error
			if tc.params == nil {
				err = q.ApplyNamedPhaseFunc(qubits, sizes, qureg.Unsigned, tc.fn)
			} else {
				err = q.ApplyParamNamedPhaseFunc(qubits, sizes, qureg.Unsigned, tc.fn, tc.params)
			}
			require.NoError(t, err)
			requirePhases(t, q, func(i int) float64 {
				return tc.f(field(i, a, false), field(i, b, false))
			})
		})
	}
}

func TestApplyNamedPhaseFuncOverrides(t *testing.T) {
	e := newEnv(t)
	q := newSV(t, e, 4)
	q.InitPlusState()
	require.NoError(t, q.ApplyNamedPhaseFuncOverrides([]int{0, 1, 2, 3}, []int{2, 2}, qureg.TwosComplement,
		qureg.Product, []int64{-1, -2}, []float64{0.3}))
	requirePhases(t, q, func(i int) float64 {
		x, y := field(i, []int{0, 1}, true), field(i, []int{2, 3}, true)
		if x == -1 && y == -2 {
			return 0.3
		}
		return x * y
	})

	// a shifted norm whose divergence is overridden
	p := newSV(t, e, 4)
	p.InitPlusState()
	require.NoError(t, p.ApplyParamNamedPhaseFuncOverrides([]int{0, 1, 2, 3}, []int{2, 2}, qureg.Unsigned,
		qureg.ScaledInverseShiftedNorm, []float64{1, 0, 1, 2}, []int64{1, 2}, []float64{0.6}))
	requirePhases(t, p, func(i int) float64 {
		x, y := field(i, []int{0, 1}, false), field(i, []int{2, 3}, false)
		if x == 1 && y == 2 {
			return 0.6
		}
		return 1 / math.Hypot(x-1, y-2)
	})

	require.Equal(t, "Product", qureg.Product.String())
	require.Equal(t, "twos-complement", qureg.TwosComplement.String())
}

func TestPhaseFuncOnDensityMatrix(t *testing.T) {
	e := parallelEnv(t)
	q := newDM(t, e, 2)
	q.InitPlusState()
	f := func(i int) float64 { return 0.4 * float64(i*i) }
	require.NoError(t, q.ApplyPhaseFunc([]int{0, 1}, qureg.Unsigned, []float64{0.4}, []float64{2}))
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := expiPhase(f(r)-f(c)) / 4
			got := densityAt(t, q, r, c)
			require.InDelta(t, real(want), real(got), tol)
			require.InDelta(t, imag(want), imag(got), tol)
		}
	}
}
