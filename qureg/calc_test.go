// SPDX-License-Identifier: MIT
package qureg_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsim/env"
	"github.com/katalvlaran/qsim/pauli"
	"github.com/katalvlaran/qsim/qureg"
)

func bell(t *testing.T, q *qureg.Register) {
	t.Helper()
	q.InitZeroState()
	require.NoError(t, q.Hadamard(0))
	require.NoError(t, q.ControlledNot(0, 1))
}

func TestCalcPurity(t *testing.T) {
	e := newEnv(t)
	q := newDM(t, e, 2)
	prepareRandom(t, q)
	p, err := q.CalcPurity()
	require.NoError(t, err)
	require.InDelta(t, 1, p, tol)

	require.NoError(t, q.MixDepolarising(0, qureg.MaxDepolarisingProb))
	require.NoError(t, q.MixDepolarising(1, qureg.MaxDepolarisingProb))
	p, err = q.CalcPurity()
	require.NoError(t, err)
	require.InDelta(t, 0.25, p, tol)

	_, err = newSV(t, e, 2).CalcPurity()
	require.ErrorIs(t, err, qureg.ErrNotDensityMatrix)
}

func TestCalcFidelity(t *testing.T) {
	e := newEnv(t)
	zero := newSV(t, e, 1)
	plus := newSV(t, e, 1)
	plus.InitPlusState()

	f, err := zero.CalcFidelity(plus)
	require.NoError(t, err)
	require.InDelta(t, 0.5, f, tol)

	dm := newDM(t, e, 1)
	require.NoError(t, dm.InitPureState(plus))
	f, err = dm.CalcFidelity(plus)
	require.NoError(t, err)
	require.InDelta(t, 1, f, tol)
	f, err = dm.CalcFidelity(zero)
	require.NoError(t, err)
	require.InDelta(t, 0.5, f, tol)

	_, err = zero.CalcFidelity(dm)
	require.ErrorIs(t, err, qureg.ErrNotStateVector)
	_, err = zero.CalcFidelity(newSV(t, e, 2))
	require.ErrorIs(t, err, qureg.ErrDimensionMismatch)
	_, err = zero.CalcFidelity(nil)
	require.ErrorIs(t, err, qureg.ErrNilArgument)
}

func TestCalcInnerProducts(t *testing.T) {
	e := parallelEnv(t)
	zero := newSV(t, e, 3)
	plus := newSV(t, e, 3)
	plus.InitPlusState()
	v, err := qureg.CalcInnerProduct(zero, plus)
	require.NoError(t, err)
	require.InDelta(t, 0, cmplx.Abs(v-complex(1/math.Sqrt(8), 0)), tol)

	// <ψ|e^{iθ}ψ> picks up the phase
	a := newSV(t, e, 1)
	b := newSV(t, e, 1)
	require.NoError(t, a.InitClassicalState(1))
	require.NoError(t, b.InitClassicalState(1))
	require.NoError(t, b.PhaseShift(0, 0.7))
	v, err = qureg.CalcInnerProduct(a, b)
	require.NoError(t, err)
	require.InDelta(t, 0, cmplx.Abs(v-expiPhase(0.7)), tol)

	r0 := newDM(t, e, 3)
	rp := newDM(t, e, 3)
	rp.InitPlusState()
	d, err := qureg.CalcDensityInnerProduct(r0, rp)
	require.NoError(t, err)
	require.InDelta(t, 1.0/8, d, tol)

	_, err = qureg.CalcInnerProduct(r0, rp)
	require.ErrorIs(t, err, qureg.ErrNotStateVector)
	_, err = qureg.CalcDensityInnerProduct(zero, plus)
	require.ErrorIs(t, err, qureg.ErrNotDensityMatrix)
	_, err = qureg.CalcInnerProduct(zero, a)
	require.ErrorIs(t, err, qureg.ErrDimensionMismatch)
}

func TestCalcHilbertSchmidtDistance(t *testing.T) {
	e := newEnv(t)
	a := newDM(t, e, 1)
	b := newDM(t, e, 1)
	require.NoError(t, b.InitClassicalState(1))
	d, err := qureg.CalcHilbertSchmidtDistance(a, b)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt2, d, tol)

	d, err = qureg.CalcHilbertSchmidtDistance(a, a)
	require.NoError(t, err)
	require.Zero(t, d)

	_, err = qureg.CalcHilbertSchmidtDistance(newSV(t, e, 1), newSV(t, e, 1))
	require.ErrorIs(t, err, qureg.ErrNotDensityMatrix)
}

func TestCalcExpecPauliProdOnBellState(t *testing.T) {
	e := newEnv(t)
	cases := []struct {
		codes []pauli.OpType
		want  float64
	}{
		{[]pauli.OpType{pauli.Z, pauli.Z}, 1},
		{[]pauli.OpType{pauli.X, pauli.X}, 1},
		{[]pauli.OpType{pauli.Y, pauli.Y}, -1},
		{[]pauli.OpType{pauli.Z, pauli.I}, 0},
		{[]pauli.OpType{pauli.I, pauli.I}, 1},
	}
	for _, mk := range []func(testing.TB, *env.Env, int) *qureg.Register{newSV, newDM} {
		q := mk(t, e, 2)
		ws := mk(t, e, 2)
		bell(t, q)
		before := q.Amplitudes()
		for _, tc := range cases {
			got, err := q.CalcExpecPauliProd([]int{0, 1}, tc.codes, ws)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, tol, "%v", tc.codes)
		}
		requireAmps(t, before, q.Amplitudes())
	}
}

func TestCalcExpecPauliSumAndHamil(t *testing.T) {
	e := newEnv(t)
	codes := []pauli.OpType{
		pauli.Z, pauli.Z,
		pauli.X, pauli.I,
		pauli.Y, pauli.Y,
	}
	coeffs := []float64{0.5, 2, -1.5}
	h, err := pauli.NewHamil(2, 3)
	require.NoError(t, err)
	require.NoError(t, h.Init(coeffs, codes))

	for _, mk := range []func(testing.TB, *env.Env, int) *qureg.Register{newSV, newDM} {
		q := mk(t, e, 2)
		ws := mk(t, e, 2)
		bell(t, q)
		got, err := q.CalcExpecPauliSum(codes, coeffs, ws)
		require.NoError(t, err)
		require.InDelta(t, 2.0, got, tol)

		got, err = q.CalcExpecPauliHamil(h, ws)
		require.NoError(t, err)
		require.InDelta(t, 2.0, got, tol)
	}
}

func TestCalcExpecValidation(t *testing.T) {
	e := newEnv(t)
	q := newSV(t, e, 2)
	ws := newSV(t, e, 2)
	_, err := q.CalcExpecPauliProd([]int{0}, []pauli.OpType{pauli.X, pauli.Z}, ws)
	require.ErrorIs(t, err, qureg.ErrArrayLength)
	_, err = q.CalcExpecPauliProd([]int{0}, []pauli.OpType{pauli.OpType(7)}, ws)
	require.ErrorIs(t, err, qureg.ErrInvalidPauliCode)
	_, err = q.CalcExpecPauliProd([]int{0}, []pauli.OpType{pauli.X}, q)
	require.ErrorIs(t, err, qureg.ErrInvalidInput)
	_, err = q.CalcExpecPauliProd([]int{0}, []pauli.OpType{pauli.X}, newDM(t, e, 2))
	require.ErrorIs(t, err, qureg.ErrDimensionMismatch)
	_, err = q.CalcExpecPauliSum([]pauli.OpType{pauli.X}, []float64{1}, ws)
	require.ErrorIs(t, err, qureg.ErrArrayLength)

	h, err := pauli.NewHamil(3, 1)
	require.NoError(t, err)
	_, err = q.CalcExpecPauliHamil(h, ws)
	require.ErrorIs(t, err, qureg.ErrDimensionMismatch)
}

func TestApplyPauliSum(t *testing.T) {
	e := newEnv(t)
	in := newSV(t, e, 1)
	out := newSV(t, e, 1)
	// (X + Z)|0> = |0> + |1>
	require.NoError(t, qureg.ApplyPauliSum(in, []pauli.OpType{pauli.X, pauli.Z}, []float64{1, 1}, out))
	requireAmps(t, []complex128{1, 1}, out.Amplitudes())
	requireAmps(t, []complex128{1, 0}, in.Amplitudes())

	h, err := pauli.NewHamil(1, 2)
	require.NoError(t, err)
	require.NoError(t, h.Init([]float64{2, -1}, []pauli.OpType{pauli.Y, pauli.I}))
	require.NoError(t, qureg.ApplyPauliHamil(in, h, out))
	requireAmps(t, []complex128{-1, 2i}, out.Amplitudes())

	require.ErrorIs(t, qureg.ApplyPauliSum(in, []pauli.OpType{pauli.X}, []float64{1}, in), qureg.ErrInvalidInput)
	require.ErrorIs(t, qureg.ApplyPauliSum(in, nil, nil, out), qureg.ErrInvalidInput)
	require.ErrorIs(t, qureg.ApplyPauliSum(in, []pauli.OpType{pauli.X}, []float64{1}, newSV(t, e, 2)),
		qureg.ErrDimensionMismatch)
}
