// SPDX-License-Identifier: MIT
package env_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsim/env"
)

func TestParseConfig(t *testing.T) {
	cfg, err := env.ParseConfig([]byte(`
seeds: [1, 2, 3]
workers: 4
parallel_threshold: 256
epsilon: 1e-10
max_qubits: 20
log_level: warn
`))
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2, 3}, cfg.Seeds)

	e := mustEnv(t, env.WithConfig(cfg))
	require.Equal(t, 4, e.Workers())
	require.Equal(t, 256, e.ParallelThreshold())
	require.Equal(t, 1e-10, e.Epsilon())
	require.Equal(t, 20, e.MaxQubits())
	require.Equal(t, []uint64{1, 2, 3}, e.Seeds())
}

func TestParseConfigEmptyKeepsDefaults(t *testing.T) {
	cfg, err := env.ParseConfig(nil)
	require.NoError(t, err)
	e := mustEnv(t, env.WithConfig(cfg))
	require.Equal(t, env.DefaultEpsilon, e.Epsilon())
}

func TestParseConfigErrors(t *testing.T) {
	_, err := env.ParseConfig([]byte("workrs: 3\n"))
	require.Error(t, err)

	_, err = env.ParseConfig([]byte("workers: -2\n"))
	require.ErrorIs(t, err, env.ErrInvalidConfig)

	_, err = env.ParseConfig([]byte("max_qubits: 64\n"))
	require.ErrorIs(t, err, env.ErrInvalidConfig)

	_, err = env.ParseConfig([]byte("log_level: chatty\n"))
	require.ErrorIs(t, err, env.ErrUnknownLogLevel)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 2\n"), 0o600))
	cfg, err := env.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Workers)

	_, err = env.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
