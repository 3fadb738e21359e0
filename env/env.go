// SPDX-License-Identifier: MIT

package env

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Env is the execution environment. Create it with New, share it between
// registers, and Close it after every register created from it is closed.
type Env struct {
	id uuid.UUID

	mu    sync.Mutex
	rng   *rand.Rand
	seeds []uint64

	workers           int
	parallelThreshold int
	eps               float64
	maxQubits         int

	logger   *zap.Logger
	gatherer prometheus.Gatherer
	metrics  *Metrics

	live   atomic.Int64
	closed atomic.Bool
}

// New builds an environment.
//
// Implementation:
//   - Stage 1: Apply options over the defaults.
//   - Stage 2: Register collectors on the chosen registerer (private registry
//     by default).
//   - Stage 3: Seed the RNG from the option seeds, or from time and pid.
//
// Errors: ErrMetrics when collectors collide on a caller-supplied registerer.
func New(opts ...Option) (*Env, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}

	e := &Env{
		id:                uuid.New(),
		workers:           s.workers,
		parallelThreshold: s.parallelThreshold,
		eps:               s.eps,
		maxQubits:         s.maxQubits,
	}
	e.logger = s.logger.With(zap.String("env", e.id.String()))

	var reg prometheus.Registerer
	if s.registerer != nil {
		reg = s.registerer
		if g, ok := s.registerer.(prometheus.Gatherer); ok {
			e.gatherer = g
		}
	} else {
		r := prometheus.NewRegistry()
		reg, e.gatherer = r, r
	}
	m, err := newMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("env.New: %w", err)
	}
	e.metrics = m

	if len(s.seeds) > 0 {
		e.Seed(s.seeds...)
	} else {
		e.SeedDefault()
	}
	e.logger.Debug("environment created",
		zap.Int("workers", e.workers),
		zap.Int("parallel_threshold", e.parallelThreshold),
		zap.Float64("epsilon", e.eps),
		zap.Int("max_qubits", e.maxQubits),
	)

	return e, nil
}

// Close tears the environment down. It warns when registers are still alive
// and flushes the logger. Calling Close twice is a no-op.
func (e *Env) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return nil
	}
	if n := e.live.Load(); n > 0 {
		e.logger.Warn("environment closed with live registers", zap.Int64("live", n))
	}
	e.logger.Debug("environment closed")
	// Sync on a console sink reports EINVAL on some platforms; nothing to recover.
	_ = e.logger.Sync()

	return nil
}

// Float64 returns the next pseudo-random number in [0,1).
// Safe for concurrent use.
func (e *Env) Float64() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.rng.Float64()
}

// Seed reseeds the RNG from an arbitrary-length key.
func (e *Env) Seed(seeds ...uint64) {
	cp := append([]uint64(nil), seeds...)
	e.mu.Lock()
	e.seeds = cp
	e.rng = rngFromSeeds(cp)
	e.mu.Unlock()
	e.logger.Debug("rng seeded", zap.Uint64s("seeds", cp))
}

// SeedDefault reseeds from wall-clock time and the process id.
func (e *Env) SeedDefault() { e.Seed(defaultSeeds()...) }

// Seeds returns a copy of the current seed key.
func (e *Env) Seeds() []uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]uint64(nil), e.seeds...)
}

// ID returns the environment identity used in logs.
func (e *Env) ID() uuid.UUID { return e.id }

// Logger returns the environment logger (never nil).
func (e *Env) Logger() *zap.Logger { return e.logger }

// Gatherer exposes the environment collectors. Nil when a caller-supplied
// registerer is not also a Gatherer.
func (e *Env) Gatherer() prometheus.Gatherer { return e.gatherer }

// Metrics returns the collectors registers update.
func (e *Env) Metrics() *Metrics { return e.metrics }

// Epsilon returns the validation tolerance.
func (e *Env) Epsilon() float64 { return e.eps }

// Workers returns the per-loop goroutine bound.
func (e *Env) Workers() int { return e.workers }

// ParallelThreshold returns the loop length from which kernels fan out.
func (e *Env) ParallelThreshold() int { return e.parallelThreshold }

// MaxQubits returns the register size ceiling.
func (e *Env) MaxQubits() int { return e.maxQubits }

// LiveRegisters returns the number of registers created and not yet closed.
func (e *Env) LiveRegisters() int64 { return e.live.Load() }

// Closed reports whether Close has been called.
func (e *Env) Closed() bool { return e.closed.Load() }

// Acquire accounts for a new register of the given kind and size.
// Registers call it once on creation.
func (e *Env) Acquire(kind string, amps int) {
	e.live.Add(1)
	e.metrics.RegisterCreated(kind, amps)
}

// Release undoes Acquire. Registers call it once on Close.
func (e *Env) Release(amps int) {
	e.live.Add(-1)
	e.metrics.RegisterClosed(amps)
}
