// SPDX-License-Identifier: MIT
// Package qureg_test - shared fixtures.
//
// Purpose:
//   - Build environments with a fixed seed; the parallel variant forces every
//     loop through the errgroup path.
//   - Compare amplitude snapshots with a tolerance and dump both on failure.

package qureg_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsim/env"
	"github.com/katalvlaran/qsim/qureg"
)

// tol is the comparison tolerance for amplitudes and probabilities.
const tol = 1e-10

func newEnv(t testing.TB, opts ...env.Option) *env.Env {
	t.Helper()
	e, err := env.New(append([]env.Option{env.WithSeed(7, 11)}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })

	return e
}

// parallelEnv runs every loop on 4 partitions.
func parallelEnv(t testing.TB) *env.Env {
	return newEnv(t, env.WithWorkers(4), env.WithParallelThreshold(1))
}

func newSV(t testing.TB, e *env.Env, n int) *qureg.Register {
	t.Helper()
	q, err := qureg.New(e, n)
	require.NoError(t, err)
	t.Cleanup(func() { _ = q.Close() })

	return q
}

func newDM(t testing.TB, e *env.Env, n int) *qureg.Register {
	t.Helper()
	q, err := qureg.NewDensity(e, n)
	require.NoError(t, err)
	t.Cleanup(func() { _ = q.Close() })

	return q
}

// requireAmps checks got against want element-wise within tol.
func requireAmps(t testing.TB, want, got []complex128) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if cmplx.Abs(want[i]-got[i]) > tol {
			require.Failf(t, "amplitudes differ", "index %d: want %v got %v\nwant: %s\ngot: %s",
				i, want[i], got[i], spew.Sdump(want), spew.Sdump(got))
		}
	}
}

// densityAt returns ρ[r,c] or fails.
func densityAt(t testing.TB, q *qureg.Register, r, c int) complex128 {
	t.Helper()
	v, err := q.GetDensityAmp(r, c)
	require.NoError(t, err)

	return v
}

// prepareRandom applies a fixed mixed circuit so tests start from a generic state.
func prepareRandom(t testing.TB, q *qureg.Register) {
	t.Helper()
	n := q.NumQubits()
	for k := 0; k < n; k++ {
		require.NoError(t, q.Hadamard(k))
		require.NoError(t, q.RotateY(k, 0.3+0.17*float64(k)))
		require.NoError(t, q.RotateZ(k, 0.9-0.21*float64(k)))
	}
	for k := 0; k+1 < n; k++ {
		require.NoError(t, q.ControlledNot(k, k+1))
		require.NoError(t, q.ControlledPhaseShift(k, k+1, 0.4))
	}
	require.NoError(t, q.TGate(n-1))
}

// expiPhase returns e^{iθ}.
func expiPhase(theta float64) complex128 {
	return complex(math.Cos(theta), math.Sin(theta))
}
