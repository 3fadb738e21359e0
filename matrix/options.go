// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for operator construction and the
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by unitarity and trace-preservation
	// checks when the caller does not supply one. It matches the double
	// precision validation threshold of the register engine.
	DefaultEpsilon = 1e-13

	// DefaultValidateNaNInf toggles strict finite-value validation on Set and Init.
	DefaultValidateNaNInf = true

	// MaxOperatorQubits bounds ComplexMatrixN width; a 13-qubit operator already
	// holds 4^13 complex entries (1 GiB).
	MaxOperatorQubits = 13
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the numeric tolerance eps used by structural checks
// (unitarity, trace preservation) performed through an Options value.
//
// Panics with a stable message when eps is NaN, ±Inf or negative.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on Set/Init.
// Affects newly created operators only.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
// Nil entries are skipped so callers can build option lists conditionally.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// NewOptions resolves opts into an Options snapshot. Exposed so that callers
// outside the package (the register engine) share one numeric policy.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Epsilon reports the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidatesNaNInf reports whether finite-value validation is active.
func (o Options) ValidatesNaNInf() bool { return o.validateNaNInf }

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

// isNonFiniteComplex reports a NaN or ±Inf in either component.
func isNonFiniteComplex(z complex128) bool {
	return isNonFinite(real(z)) || isNonFinite(imag(z))
}
