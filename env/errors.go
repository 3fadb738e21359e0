// SPDX-License-Identifier: MIT
// Package env: sentinel error set.

package env

import "errors"

var (
	// ErrInvalidConfig indicates a configuration value outside its domain
	// (negative workers, non-finite epsilon, qubit ceiling out of range).
	ErrInvalidConfig = errors.New("env: invalid configuration")

	// ErrUnknownLogLevel indicates a log_level that zap does not recognise.
	ErrUnknownLogLevel = errors.New("env: unknown log level")

	// ErrMetrics indicates that collectors could not be registered.
	ErrMetrics = errors.New("env: metrics registration failed")
)
