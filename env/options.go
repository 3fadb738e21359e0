// SPDX-License-Identifier: MIT
// Package env: functional options.
//
// Contract:
//   - Options are functional (type Option func(*settings)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     runtime operations never panic on user input.
//   - Later options override earlier ones.

package env

import (
	"math"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the validation tolerance for unitarity, trace
	// preservation and zero-probability checks.
	DefaultEpsilon = 1e-13

	// DefaultParallelThreshold is the loop length from which amplitude kernels
	// fan out over worker goroutines.
	DefaultParallelThreshold = 1 << 14

	// DefaultMaxQubits bounds state-vector registers (density registers need
	// twice the qubits in the same budget).
	DefaultMaxQubits = 30

	// maxQubitsLimit keeps 1<<(2*n) inside an int on 64-bit hosts.
	maxQubitsLimit = 31
)

// Option customizes an Env before construction.
type Option func(*settings)

// settings is the effective configuration after applying options.
type settings struct {
	seeds             []uint64
	workers           int
	parallelThreshold int
	eps               float64
	maxQubits         int
	logger            *zap.Logger
	registerer        prometheus.Registerer
}

func defaultSettings() settings {
	return settings{
		workers:           runtime.GOMAXPROCS(0),
		parallelThreshold: DefaultParallelThreshold,
		eps:               DefaultEpsilon,
		maxQubits:         DefaultMaxQubits,
	}
}

// WithSeed fixes the RNG seed sequence. An empty list means "default seeding".
func WithSeed(seeds ...uint64) Option {
	cp := append([]uint64(nil), seeds...)
	return func(s *settings) {
		s.seeds = cp
	}
}

// WithWorkers bounds the goroutines used by one amplitude loop.
// Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("env: WithWorkers(n<1)")
	}
	return func(s *settings) {
		s.workers = n
	}
}

// WithParallelThreshold sets the minimum loop length that fans out.
// Panics on amps < 1.
func WithParallelThreshold(amps int) Option {
	if amps < 1 {
		panic("env: WithParallelThreshold(amps<1)")
	}
	return func(s *settings) {
		s.parallelThreshold = amps
	}
}

// WithEpsilon sets the validation tolerance. Panics on NaN, ±Inf or eps < 0.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic("env: WithEpsilon: eps must be finite, non-negative")
	}
	return func(s *settings) {
		s.eps = eps
	}
}

// WithMaxQubits sets the register size ceiling. Panics outside [1, 31].
func WithMaxQubits(n int) Option {
	if n < 1 || n > maxQubitsLimit {
		panic("env: WithMaxQubits out of range")
	}
	return func(s *settings) {
		s.maxQubits = n
	}
}

// WithLogger attaches a zap logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("env: WithLogger(nil)")
	}
	return func(s *settings) {
		s.logger = l
	}
}

// WithRegisterer registers the environment collectors on r instead of a
// private registry. Panics on nil.
func WithRegisterer(r prometheus.Registerer) Option {
	if r == nil {
		panic("env: WithRegisterer(nil)")
	}
	return func(s *settings) {
		s.registerer = r
	}
}

// WithConfig applies a validated Config. Zero fields keep their defaults.
// Panics if cfg fails Validate; use Config.Validate first for user input.
func WithConfig(cfg Config) Option {
	if err := cfg.Validate(); err != nil {
		panic("env: WithConfig: " + err.Error())
	}
	return func(s *settings) {
		if len(cfg.Seeds) > 0 {
			s.seeds = append([]uint64(nil), cfg.Seeds...)
		}
		if cfg.Workers > 0 {
			s.workers = cfg.Workers
		}
		if cfg.ParallelThreshold > 0 {
			s.parallelThreshold = cfg.ParallelThreshold
		}
		if cfg.Epsilon > 0 {
			s.eps = cfg.Epsilon
		}
		if cfg.MaxQubits > 0 {
			s.maxQubits = cfg.MaxQubits
		}
		if cfg.LogLevel != "" {
			// Validate already proved the level parses.
			l, _ := cfg.buildLogger()
			s.logger = l
		}
	}
}
