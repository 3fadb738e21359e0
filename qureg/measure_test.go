// SPDX-License-Identifier: MIT
package qureg_test

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsim/env"
	"github.com/katalvlaran/qsim/qureg"
)

func TestCollapseIdempotence(t *testing.T) {
	e := newEnv(t)
	for _, q := range []*qureg.Register{newSV(t, e, 3), newDM(t, e, 3)} {
		for qubit := 0; qubit < 3; qubit++ {
			for outcome := 0; outcome < 2; outcome++ {
				q.InitPlusState()
				prepareRandom(t, q)
				p, err := q.CollapseToOutcome(qubit, outcome)
				require.NoError(t, err)
				require.Greater(t, p, 0.0)

				same, err := q.CalcProbOfOutcome(qubit, outcome)
				require.NoError(t, err)
				other, err := q.CalcProbOfOutcome(qubit, 1-outcome)
				require.NoError(t, err)
				require.InDelta(t, 1, same, tol)
				require.InDelta(t, 0, other, tol)
				require.InDelta(t, 1, q.CalcTotalProb(), tol)
			}
		}
	}
}

func TestCollapseOntoZeroProbability(t *testing.T) {
	e := newEnv(t)
	q := newSV(t, e, 2)
	before := q.Amplitudes()
	_, err := q.CollapseToOutcome(1, 1)
	require.ErrorIs(t, err, qureg.ErrZeroProbability)
	require.NotErrorIs(t, err, qureg.ErrInvalidInput)
	requireAmps(t, before, q.Amplitudes())

	_, err = q.CollapseToOutcome(0, 2)
	require.ErrorIs(t, err, qureg.ErrInvalidOutcome)
}

func TestApplyProjectorDoesNotRenormalise(t *testing.T) {
	e := newEnv(t)
	q := newSV(t, e, 1)
	q.InitPlusState()
	require.NoError(t, q.ApplyProjector(0, 1))
	require.InDelta(t, 0.5, q.CalcTotalProb(), tol)
	require.NoError(t, q.ApplyProjector(0, 0))
	require.Zero(t, q.CalcTotalProb())

	dm := newDM(t, e, 1)
	dm.InitPlusState()
	require.NoError(t, dm.ApplyProjector(0, 0))
	require.InDelta(t, 0.5, real(densityAt(t, dm, 0, 0)), tol)
	require.Zero(t, densityAt(t, dm, 0, 1))
	require.Zero(t, densityAt(t, dm, 1, 1))
}

func TestEntangledMeasurementsAgree(t *testing.T) {
	e := newEnv(t)
	q := newSV(t, e, 2)
	seen := map[int]int{}
	for trial := 0; trial < 200; trial++ {
		q.InitZeroState()
		require.NoError(t, q.Hadamard(0))
		require.NoError(t, q.ControlledNot(0, 1))
		m0, err := q.Measure(0)
		require.NoError(t, err)
		m1, p, err := q.MeasureWithStats(1)
		require.NoError(t, err)
		require.Equal(t, m0, m1)
		require.InDelta(t, 1, p, tol)
		seen[m0]++
	}
	// both outcomes occur with a fair coin
	require.Greater(t, seen[0], 50)
	require.Greater(t, seen[1], 50)
}

func TestMeasureIsDeterministicPerSeed(t *testing.T) {
	run := func() []int {
		e := newEnv(t, env.WithSeed(99))
		q := newSV(t, e, 4)
		q.InitPlusState()
		out := make([]int, 4)
		for k := range out {
			var err error
			out[k], err = q.Measure(k)
			require.NoError(t, err)
		}
		return out
	}
	require.Equal(t, run(), run())
}

func TestMeasureCertainOutcomes(t *testing.T) {
	e := newEnv(t)
	q := newDM(t, e, 2)
	require.NoError(t, q.InitClassicalState(0b10))
	for i := 0; i < 10; i++ {
		m, p, err := q.MeasureWithStats(1)
		require.NoError(t, err)
		require.Equal(t, 1, m)
		require.InDelta(t, 1, p, tol)
		m, err = q.Measure(0)
		require.NoError(t, err)
		require.Zero(t, m)
	}
	want := `
# HELP qsim_measurements_total Measurement outcomes, by outcome.
# TYPE qsim_measurements_total counter
qsim_measurements_total{outcome="0"} 10
qsim_measurements_total{outcome="1"} 10
`
	require.NoError(t, testutil.GatherAndCompare(e.Gatherer(), bytes.NewBufferString(want), "qsim_measurements_total"))
}

func TestCalcProbOfAllOutcomes(t *testing.T) {
	e := parallelEnv(t)
	for _, q := range []*qureg.Register{newSV(t, e, 3), newDM(t, e, 3)} {
		prepareRandom(t, q)
		probs := make([]float64, 4)
		require.NoError(t, q.CalcProbOfAllOutcomes(probs, []int{2, 0}))
		var sum float64
		for _, p := range probs {
			sum += p
		}
		require.InDelta(t, 1, sum, tol)

		// marginal on qubit 2 (the low bit of the outcome)
		p2, err := q.CalcProbOfOutcome(2, 1)
		require.NoError(t, err)
		require.InDelta(t, p2, probs[1]+probs[3], tol)
		p0, err := q.CalcProbOfOutcome(0, 1)
		require.NoError(t, err)
		require.InDelta(t, p0, probs[2]+probs[3], tol)

		require.ErrorIs(t, q.CalcProbOfAllOutcomes(make([]float64, 3), []int{2, 0}), qureg.ErrArrayLength)
		require.ErrorIs(t, q.CalcProbOfAllOutcomes(probs, []int{1, 1}), qureg.ErrRepeatedQubit)
	}
}
