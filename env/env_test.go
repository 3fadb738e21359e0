// SPDX-License-Identifier: MIT
package env_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/qsim/env"
)

func mustEnv(t *testing.T, opts ...env.Option) *env.Env {
	t.Helper()
	e, err := env.New(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })

	return e
}

func TestDefaults(t *testing.T) {
	e := mustEnv(t)
	require.Equal(t, env.DefaultEpsilon, e.Epsilon())
	require.Equal(t, env.DefaultParallelThreshold, e.ParallelThreshold())
	require.Equal(t, env.DefaultMaxQubits, e.MaxQubits())
	require.GreaterOrEqual(t, e.Workers(), 1)
	require.Len(t, e.Seeds(), 2)
	require.NotNil(t, e.Logger())
	require.NotNil(t, e.Gatherer())
}

func TestSeedIsDeterministic(t *testing.T) {
	a := mustEnv(t, env.WithSeed(1234, 5678))
	b := mustEnv(t, env.WithSeed(1234, 5678))
	c := mustEnv(t, env.WithSeed(1234, 5679))
	var same, differ bool = true, false
	for i := 0; i < 32; i++ {
		x, y, z := a.Float64(), b.Float64(), c.Float64()
		require.GreaterOrEqual(t, x, 0.0)
		require.Less(t, x, 1.0)
		same = same && x == y
		differ = differ || x != z
	}
	require.True(t, same)
	require.True(t, differ)
	require.Equal(t, []uint64{1234, 5678}, a.Seeds())

	// reseeding restarts the stream
	a.Seed(42)
	first := a.Float64()
	a.Seed(42)
	require.Equal(t, first, a.Float64())
}

func TestFloat64Concurrent(t *testing.T) {
	e := mustEnv(t, env.WithSeed(7))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = e.Float64()
			}
		}()
	}
	wg.Wait()
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { env.WithWorkers(0) })
	require.Panics(t, func() { env.WithParallelThreshold(0) })
	require.Panics(t, func() { env.WithEpsilon(-1) })
	require.Panics(t, func() { env.WithMaxQubits(0) })
	require.Panics(t, func() { env.WithMaxQubits(32) })
	require.Panics(t, func() { env.WithLogger(nil) })
	require.Panics(t, func() { env.WithRegisterer(nil) })
	require.Panics(t, func() { env.WithConfig(env.Config{Workers: -1}) })
}

func TestAcquireReleaseMetrics(t *testing.T) {
	e := mustEnv(t)
	e.Acquire(env.KindStateVector, 8)
	e.Acquire(env.KindDensityMatrix, 16)
	e.Release(8)
	e.Metrics().Operation("hadamard")
	e.Metrics().Measurement(1)
	require.EqualValues(t, 1, e.LiveRegisters())

	expected := `
# HELP qsim_registers_live Registers created and not yet closed.
# TYPE qsim_registers_live gauge
qsim_registers_live 1
# HELP qsim_amplitudes_allocated Complex amplitudes held by live registers.
# TYPE qsim_amplitudes_allocated gauge
qsim_amplitudes_allocated 16
# HELP qsim_registers_created_total Registers created, by kind.
# TYPE qsim_registers_created_total counter
qsim_registers_created_total{kind="density"} 1
qsim_registers_created_total{kind="statevector"} 1
`
	require.NoError(t, testutil.GatherAndCompare(e.Gatherer(), strings.NewReader(expected),
		"qsim_registers_live", "qsim_amplitudes_allocated", "qsim_registers_created_total"))
	e.Release(16)
}

func TestSharedRegistererCollides(t *testing.T) {
	reg := prometheus.NewRegistry()
	_ = mustEnv(t, env.WithRegisterer(reg))
	_, err := env.New(env.WithRegisterer(reg))
	require.ErrorIs(t, err, env.ErrMetrics)
}

func TestCloseWarnsOnLiveRegisters(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	e, err := env.New(env.WithLogger(zap.New(core)))
	require.NoError(t, err)
	e.Acquire(env.KindStateVector, 2)
	require.NoError(t, e.Close())
	require.NoError(t, e.Close())
	require.True(t, e.Closed())
	require.Equal(t, 1, logs.FilterMessage("environment closed with live registers").Len())
}

func TestReport(t *testing.T) {
	e := mustEnv(t, env.WithSeed(11, 22), env.WithWorkers(3))
	var buf bytes.Buffer
	require.NoError(t, e.Report(&buf))
	out := buf.String()
	require.Contains(t, out, "EXECUTION ENVIRONMENT:")
	require.Contains(t, out, "Number of workers")
	require.Contains(t, out, "11, 22")
}
