// SPDX-License-Identifier: MIT

// Package env is the execution environment every register is created
// against.
//
// An *Env owns:
//   - the measurement RNG (seedable, goroutine-safe, Float64 in [0,1));
//   - numeric and scheduling settings (epsilon, workers, parallel threshold,
//     qubit ceiling);
//   - a structured logger (go.uber.org/zap, no-op by default);
//   - a private Prometheus registry with the register/operation collectors;
//   - a count of live registers, used to warn on early teardown.
//
// Settings come from functional options, or from a YAML document through
// LoadConfig / ParseConfig and WithConfig. Option constructors panic on
// nonsensical values; nothing else in the package panics.
//
// Registers must be closed before their Env. Close does not enforce this; it
// logs a warning when registers are still alive.
package env
